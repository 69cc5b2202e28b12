package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todo_backend/internal/feature/todo/domain"
	"todo_backend/internal/feature/todo/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Todo{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestTodoPostgres_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		todo := &entity.Todo{Title: "buy milk", Content: "2 liters"}

		err := repo.Create(context.Background(), todo)

		assert.NoError(t, err)
		assert.NotEmpty(t, todo.ID, "ID is not set")
		assert.False(t, todo.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate title maps to domain conflict", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		require.NoError(t, repo.Create(context.Background(), &entity.Todo{Title: "dup", Content: "a"}))

		err := repo.Create(context.Background(), &entity.Todo{Title: "dup", Content: "b"})

		assert.ErrorIs(t, err, domain.ErrTitleAlreadyExists)
	})
}

func TestTodoPostgres_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		created := &entity.Todo{Title: "buy milk", Content: "2 liters"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByID(context.Background(), created.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.Title, found.Title)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		found, err := repo.FindByID(context.Background(), "missing-id")

		assert.ErrorIs(t, err, domain.ErrTodoNotFound)
		assert.Nil(t, found)
	})
}

func TestTodoPostgres_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoPostgres(db)

	for i := 0; i < 15; i++ {
		todo := &entity.Todo{Title: fmt.Sprintf("todo-%02d", i), Content: "c"}
		require.NoError(t, repo.Create(context.Background(), todo))
	}

	first, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.List(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 5)

	// ページをまたいで重複しないこと
	seen := map[string]bool{}
	for _, todo := range append(first, second...) {
		assert.False(t, seen[todo.ID], "todo %s returned twice", todo.ID)
		seen[todo.ID] = true
	}
}

func TestTodoPostgres_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoPostgres(db)

	created := &entity.Todo{Title: "before", Content: "c"}
	require.NoError(t, repo.Create(context.Background(), created))

	created.Title = "after"
	created.Complete = true
	require.NoError(t, repo.Update(context.Background(), created))

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Title)
	assert.True(t, found.Complete)
}

func TestTodoPostgres_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		created := &entity.Todo{Title: "to delete", Content: "c"}
		require.NoError(t, repo.Create(context.Background(), created))

		err := repo.Delete(context.Background(), created.ID)
		assert.NoError(t, err)

		_, err = repo.FindByID(context.Background(), created.ID)
		assert.ErrorIs(t, err, domain.ErrTodoNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTodoPostgres(db)

		err := repo.Delete(context.Background(), "missing-id")

		assert.ErrorIs(t, err, domain.ErrTodoNotFound)
	})
}
