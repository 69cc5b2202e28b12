// Package adapters はtodoフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"todo_backend/internal/feature/todo/domain"
	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// uniqueViolation はPostgresの一意制約違反のSQLSTATEです。
const uniqueViolation = "23505"

// todoPostgres はTodoRepositoryインターフェースのPostgres実装です。
type todoPostgres struct {
	db *gorm.DB
}

// todoPostgresがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*todoPostgres)(nil)

// NewTodoPostgres は指定されたgorm.DB接続でtodoPostgresの新しいインスタンスを生成します。
func NewTodoPostgres(db *gorm.DB) *todoPostgres {
	return &todoPostgres{db: db}
}

// Create はTodoをデータベースに追加します。
// 同じタイトルのTodoが既に存在する場合、domain.ErrTitleAlreadyExistsを返します。
func (r *todoPostgres) Create(ctx context.Context, t *entity.Todo) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTitleAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTitleAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID はIDでTodoを取得します。
func (r *todoPostgres) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var t entity.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List はID順でTodoをページング取得します。
func (r *todoPostgres) List(ctx context.Context, limit, offset int) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Update は既存のTodoを保存します。
func (r *todoPostgres) Update(ctx context.Context, t *entity.Todo) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTitleAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrTitleAlreadyExists
		}
		return err
	}
	return nil
}

// Delete はIDでTodoを削除します。
// 対象が存在しない場合、domain.ErrTodoNotFoundを返します。
func (r *todoPostgres) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
