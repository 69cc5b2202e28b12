package dto

// ListTodosQuery はGET /api/todos のクエリパラメータを表します。
type ListTodosQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
