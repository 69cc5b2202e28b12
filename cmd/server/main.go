package main

import (
	"log"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todoadapters "todo_backend/internal/feature/todo/adapters"
	todohandler "todo_backend/internal/feature/todo/transport/handler"
	todousecase "todo_backend/internal/feature/todo/usecase"
	"todo_backend/internal/platform/cache"
	"todo_backend/internal/platform/config"
	platformdb "todo_backend/internal/platform/db"
	platformredis "todo_backend/internal/platform/redis"
	"todo_backend/internal/platform/token"
)

func main() {
	// 設定（秘密鍵・TTLは起動時に固定され、以後変更されない）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// db
	db := platformdb.Open(cfg.DatabaseURL)

	// Redis（未設定・接続不可の場合はキャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Token codec
	codec := token.NewCodec(cfg.JWTSecret, cfg.JWTExpiresIn)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	todoRepo := todoadapters.NewTodoPostgres(db)

	// Redisキャッシュでラップ
	cachedTodoRepo := cache.NewCachingTodoRepository(rdb, cfg.CacheTTL, todoRepo, "todos")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	todoUC := todousecase.NewTodoUsecase(cachedTodoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.JWTMaxAge)
	todoH := todohandler.NewTodoHandler(todoUC)

	// ルータ生成
	r := router.NewRouter(authH, todoH, codec, userRepo, cfg.CORSAllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
