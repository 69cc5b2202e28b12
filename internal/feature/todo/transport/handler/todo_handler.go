// Package handler はtodoフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/todo/domain"
	"todo_backend/internal/feature/todo/domain/entity"
	"todo_backend/internal/feature/todo/transport/http/dto"
	"todo_backend/internal/feature/todo/usecase"
)

// TodoUsecase はTodo操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TodoUsecase interface {
	Create(ctx context.Context, title, content string, complete bool) (*entity.Todo, error)
	Get(ctx context.Context, id string) (*entity.Todo, error)
	List(ctx context.Context, page, limit int) ([]entity.Todo, error)
	Update(ctx context.Context, id string, in usecase.UpdateTodoInput) (*entity.Todo, error)
	Delete(ctx context.Context, id string) error
}

// TodoHandler はTodo操作のHTTPリクエストを処理します。
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler はTodoHandlerの新しいインスタンスを生成します。
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// Create はTodo作成APIエンドポイントを処理します。
// 成功時は201、タイトル重複時は409を返します。
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "invalid request"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), req.Title, req.Content, req.Complete)
	if err != nil {
		if errors.Is(err, domain.ErrTitleAlreadyExists) {
			c.JSON(http.StatusConflict, api.GenericResponse{Status: api.StatusFail, Message: "ToDo with that title already exists"})
			return
		}
		slog.Error("create todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, api.DataResponse{Status: api.StatusSuccess, Data: todo})
}

// Get は単一Todo取得APIエンドポイントを処理します。
func (h *TodoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	todo, err := h.todos.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, api.GenericResponse{Status: api.StatusFail, Message: notFoundMessage(id)})
			return
		}
		slog.Error("get todo failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, api.DataResponse{Status: api.StatusSuccess, Data: todo})
}

// List はTodo一覧取得APIエンドポイントを処理します。
// page・limitクエリでページングします（デフォルト: page=1, limit=10）。
func (h *TodoHandler) List(c *gin.Context) {
	var q dto.ListTodosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "invalid request"})
		return
	}

	todos, err := h.todos.List(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		slog.Error("list todos failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse{Status: api.StatusSuccess, Results: len(todos), Data: todos})
}

// Update はTodo部分更新APIエンドポイントを処理します。
func (h *TodoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.GenericResponse{Status: api.StatusFail, Message: "invalid request"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), id, usecase.UpdateTodoInput{
		Title:    req.Title,
		Content:  req.Content,
		Complete: req.Complete,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, api.GenericResponse{Status: api.StatusFail, Message: notFoundMessage(id)})
		case errors.Is(err, domain.ErrTitleAlreadyExists):
			c.JSON(http.StatusConflict, api.GenericResponse{Status: api.StatusFail, Message: "ToDo with that title already exists"})
		default:
			slog.Error("update todo failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, api.DataResponse{Status: api.StatusSuccess, Data: todo})
}

// Delete はTodo削除APIエンドポイントを処理します。成功時は204を返します。
func (h *TodoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.todos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, api.GenericResponse{Status: api.StatusFail, Message: notFoundMessage(id)})
			return
		}
		slog.Error("delete todo failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.GenericResponse{Status: api.StatusError, Message: "something went wrong"})
		return
	}

	c.Status(http.StatusNoContent)
}

// notFoundMessage は404レスポンスのメッセージを生成します。
func notFoundMessage(id string) string {
	return fmt.Sprintf("ToDo with ID: %s not found", id)
}
