package router

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authmw "todo_backend/internal/feature/auth/transport/middleware"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	"todo_backend/internal/interface/handler"
)

func NewRouter(authHandler *authhandler.AuthHandler, todos *todohandler.TodoHandler,
	tokens authmw.TokenParser, users authmw.UserResolver, allowedOrigins string) *gin.Engine {
	r := gin.Default()

	// Cookie認証のため AllowCredentials を有効化
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// 認証不要
	// 導通確認用
	r.GET("/api/health", handler.Health)
	// 新規ユーザー登録
	r.POST("/auth/signup", authHandler.Signup)
	// ログイン（トークン発行 + Cookie設定）
	r.POST("/auth/signin", authHandler.Signin)

	// Todo CRUD（公開ルート）
	r.POST("/api/todos", todos.Create)
	r.GET("/api/todos", todos.List)
	r.GET("/api/todos/:id", todos.Get)
	r.PATCH("/api/todos/:id", todos.Update)
	r.DELETE("/api/todos/:id", todos.Delete)

	// 認証必須のルート
	// authmw.RequireAuth() がCookie/ヘッダーのトークンを検証し、
	// ユーザーを解決してコンテキストに格納する
	auth := r.Group("/")
	auth.Use(authmw.RequireAuth(tokens, users))
	{
		auth.GET("/auth/logout", authHandler.Logout)
		auth.GET("/users/me", authHandler.Me)
	}

	return r
}
