package dto

// UpdateTodoReq はPATCH /api/todos/:id のリクエストボディを表します。
// nilのフィールドは更新されません。
type UpdateTodoReq struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Complete *bool   `json:"complete"`
}
