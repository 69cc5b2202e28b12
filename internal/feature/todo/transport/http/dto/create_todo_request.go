// Package dto defines data transfer objects for the todo feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for POST /api/todos.
type CreateTodoReq struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Complete bool   `json:"complete"`
}
