// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/auth/domain"
	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/transport/middleware"
)

// cookieName はセッショントークンを格納するCookie名です。
const cookieName = "token"

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、作成されたユーザーを返します。
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にセッショントークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
	// cookieMaxAge はトークンCookieの有効期間（秒）です。トークンTTLと揃えます。
	cookieMaxAge int
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieMaxAge: cookieMaxAge}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時はパスワードハッシュを除いたユーザーを200で返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Mail, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "mail", req.Mail, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.GenericResponse{Status: api.StatusFail, Message: "User with that mail already exists"})
			return
		}
		// ハッシュ化やDB障害の詳細はクライアントに公開しない
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	slog.Info("user signup successful", "mail", user.Email, "remote_addr", c.ClientIP())
	// entity.UserのPasswordは json:"-" なのでハッシュは出力されない
	c.JSON(http.StatusOK, api.DataResponse{Status: api.StatusSuccess, Data: user})
}

// Signin はユーザーログインAPIエンドポイントを処理します。
// 成功時はトークンをレスポンスボディとHttpOnly Cookieの両方で返します。
// 認証失敗時はメール未登録・パスワード不一致を区別せず同一レスポンスを返します。
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "invalid request"})
		return
	}

	tok, err := h.auth.Login(c.Request.Context(), req.Mail, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、失敗理由を公開しない
			slog.Warn("signin failed", "mail", req.Mail, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "Invalid mail or password"})
			return
		}
		slog.Error("signin failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	h.setSessionCookie(c, tok, h.cookieMaxAge)
	slog.Info("user signin successful", "mail", req.Mail, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Status: api.StatusSuccess, Token: tok})
}

// Logout はセッションCookieを即時失効させます。
// トークン自体は無効化されないため、発行済みトークンは自然失効まで有効です
// （サーバー側に失効リストを持たない設計上の制約）。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"status": api.StatusSuccess})
}

// Me は認可ゲートが解決した現在のユーザーを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		// ゲートを通らずに到達した場合のみ起こる
		c.JSON(http.StatusUnauthorized, api.GenericResponse{Status: api.StatusFail, Message: "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, api.DataResponse{Status: api.StatusSuccess, Data: user})
}

// setSessionCookie はトークンCookieを設定します（HttpOnly, SameSite=Lax, path=/）。
func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, value, maxAge, "/", "", false, true)
}
