// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo_backend/internal/feature/auth/domain"
	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/password"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、domain.ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer はセッショントークン発行のインターフェースを定義します。
// 実装は platform/token が提供します。
type TokenIssuer interface {
	// Issue は指定されたサブジェクトの署名済みトークンを生成します。
	Issue(subject string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// normalizeEmail はメールアドレスを比較・保存用に正規化します。
// 大文字小文字を区別しない一意性はこの正規化が前提です。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、作成されたユーザーを返します。
// 事前の重複チェックに加え、同時登録のレースはストア側の一意制約違反を
// domain.ErrEmailAlreadyExists として受け取ることで解決します。
func (u *authUsecase) Register(ctx context.Context, name, email, plain string) (*entity.User, error) {
	email = normalizeEmail(email)

	// 既存ユーザーの事前チェック
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     "user",
		Verified: false,
	}
	// チェック後の挿入はアトミックではない。重複の最終判定はストアに委ねる
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にセッショントークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ストア障害は認証失敗と区別され、そのまま内部エラーとして返されます。
func (u *authUsecase) Login(ctx context.Context, email, plain string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// ユーザー未検出時のダミーハッシュ。検証が常に実行されることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	// 不一致・保存ハッシュ不正はいずれも false になる
	ok := password.Verify(plain, passwordHash)

	// 未検出またはパスワード不一致の場合、同一のエラーを返す
	if err != nil || !ok {
		return "", domain.ErrInvalidCredentials
	}

	tok, tokenErr := u.tokens.Issue(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return tok, nil
}
