package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/feature/todo/domain"
	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/usecase"
)

// mockTodoUsecase is a mock implementation of the TodoUsecase interface.
type mockTodoUsecase struct {
	CreateFunc func(ctx context.Context, title, content string, complete bool) (*entity.Todo, error)
	GetFunc    func(ctx context.Context, id string) (*entity.Todo, error)
	ListFunc   func(ctx context.Context, page, limit int) ([]entity.Todo, error)
	UpdateFunc func(ctx context.Context, id string, in usecase.UpdateTodoInput) (*entity.Todo, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockTodoUsecase) Create(ctx context.Context, title, content string, complete bool) (*entity.Todo, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, title, content, complete)
	}
	return &entity.Todo{ID: "id-1", Title: title, Content: content, Complete: complete}, nil
}

func (m *mockTodoUsecase) Get(ctx context.Context, id string) (*entity.Todo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrTodoNotFound
}

func (m *mockTodoUsecase) List(ctx context.Context, page, limit int) ([]entity.Todo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, limit)
	}
	return nil, nil
}

func (m *mockTodoUsecase) Update(ctx context.Context, id string, in usecase.UpdateTodoInput) (*entity.Todo, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return nil, domain.ErrTodoNotFound
}

func (m *mockTodoUsecase) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newTodoRouter(uc TodoUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTodoHandler(uc)

	r := gin.New()
	r.POST("/api/todos", h.Create)
	r.GET("/api/todos", h.List)
	r.GET("/api/todos/:id", h.Get)
	r.PATCH("/api/todos/:id", h.Update)
	r.DELETE("/api/todos/:id", h.Delete)
	return r
}

func TestTodoHandler_Create(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		router := newTodoRouter(&mockTodoUsecase{})

		body, _ := json.Marshal(gin.H{"title": "buy milk", "content": "2 liters"})
		req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp["status"])
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		router := newTodoRouter(&mockTodoUsecase{})

		body, _ := json.Marshal(gin.H{"content": "2 liters"})
		req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate title returns 409", func(t *testing.T) {
		uc := &mockTodoUsecase{
			CreateFunc: func(ctx context.Context, title, content string, complete bool) (*entity.Todo, error) {
				return nil, domain.ErrTitleAlreadyExists
			},
		}
		router := newTodoRouter(uc)

		body, _ := json.Marshal(gin.H{"title": "dup", "content": "c"})
		req, _ := http.NewRequest(http.MethodPost, "/api/todos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTodoHandler_List(t *testing.T) {
	uc := &mockTodoUsecase{
		ListFunc: func(ctx context.Context, page, limit int) ([]entity.Todo, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return []entity.Todo{{ID: "id-1"}, {ID: "id-2"}}, nil
		},
	}
	router := newTodoRouter(uc)

	req, _ := http.NewRequest(http.MethodGet, "/api/todos?page=2&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(2), resp["results"])
}

func TestTodoHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := &mockTodoUsecase{
			GetFunc: func(ctx context.Context, id string) (*entity.Todo, error) {
				return &entity.Todo{ID: id, Title: "buy milk"}, nil
			},
		}
		router := newTodoRouter(uc)

		req, _ := http.NewRequest(http.MethodGet, "/api/todos/id-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found returns 404 with id in message", func(t *testing.T) {
		router := newTodoRouter(&mockTodoUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/api/todos/missing-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ToDo with ID: missing-id not found")
	})
}

func TestTodoHandler_Update(t *testing.T) {
	uc := &mockTodoUsecase{
		UpdateFunc: func(ctx context.Context, id string, in usecase.UpdateTodoInput) (*entity.Todo, error) {
			require.NotNil(t, in.Complete)
			assert.True(t, *in.Complete)
			assert.Nil(t, in.Title, "unset fields must stay nil")
			return &entity.Todo{ID: id, Title: "buy milk", Complete: *in.Complete}, nil
		},
	}
	router := newTodoRouter(uc)

	body, _ := json.Marshal(gin.H{"complete": true})
	req, _ := http.NewRequest(http.MethodPatch, "/api/todos/id-1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTodoHandler_Delete(t *testing.T) {
	t.Run("success returns 204 with empty body", func(t *testing.T) {
		router := newTodoRouter(&mockTodoUsecase{})

		req, _ := http.NewRequest(http.MethodDelete, "/api/todos/id-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not found returns 404", func(t *testing.T) {
		uc := &mockTodoUsecase{
			DeleteFunc: func(ctx context.Context, id string) error {
				return domain.ErrTodoNotFound
			},
		}
		router := newTodoRouter(uc)

		req, _ := http.NewRequest(http.MethodDelete, "/api/todos/missing-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
