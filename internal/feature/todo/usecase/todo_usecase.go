// Package usecase はtodoフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/todo/domain/entity"
)

const (
	// defaultLimit は1ページあたりのデフォルト件数です。
	defaultLimit = 10
	// maxLimit は1ページあたりの上限件数です。
	maxLimit = 100
)

// TodoRepository はTodoエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TodoRepository interface {
	// Create は新しいTodoをストレージに永続化します。
	// 同じタイトルのTodoが既に存在する場合、domain.ErrTitleAlreadyExistsを返します。
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID は指定されたIDに一致するTodoを取得します。
	FindByID(ctx context.Context, id string) (*entity.Todo, error)

	// List はID順でTodoをページング取得します。
	List(ctx context.Context, limit, offset int) ([]entity.Todo, error)

	// Update は既存のTodoを保存します。
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete は指定されたIDのTodoを削除します。
	// 対象が存在しない場合、domain.ErrTodoNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// UpdateTodoInput は部分更新の入力です。nilのフィールドは変更されません。
type UpdateTodoInput struct {
	Title    *string
	Content  *string
	Complete *bool
}

// todoUsecase はTodoのビジネスロジックを実装します。
type todoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase はtodoUsecaseの新しいインスタンスを生成します。
func NewTodoUsecase(todos TodoRepository) *todoUsecase {
	return &todoUsecase{todos: todos}
}

// Create は新しいTodoを作成して返します。
func (u *todoUsecase) Create(ctx context.Context, title, content string, complete bool) (*entity.Todo, error) {
	todo := &entity.Todo{
		Title:    title,
		Content:  content,
		Complete: complete,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Get はIDでTodoを取得します。
func (u *todoUsecase) Get(ctx context.Context, id string) (*entity.Todo, error) {
	return u.todos.FindByID(ctx, id)
}

// List はページ番号と件数でTodoを取得します。
// page・limitが未指定（0以下）の場合はそれぞれ1・10を使用します。
func (u *todoUsecase) List(ctx context.Context, page, limit int) ([]entity.Todo, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	return u.todos.List(ctx, limit, offset)
}

// Update はTodoを部分更新して返します。
func (u *todoUsecase) Update(ctx context.Context, id string, in UpdateTodoInput) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		todo.Title = *in.Title
	}
	if in.Content != nil {
		todo.Content = *in.Content
	}
	if in.Complete != nil {
		todo.Complete = *in.Complete
	}

	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete はIDでTodoを削除します。
func (u *todoUsecase) Delete(ctx context.Context, id string) error {
	return u.todos.Delete(ctx, id)
}
