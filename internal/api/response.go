// Package api はHTTPレスポンスの共通エンベロープを定義します。
// 全エンドポイントが {status, ...} 形式で応答します。
package api

// ステータス文字列。クライアントはこの値で成否を判定します。
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// GenericResponse はメッセージのみを返すレスポンスです。
type GenericResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataResponse は単一リソースを返すレスポンスです。
type DataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// TokenResponse はログイン成功時のレスポンスです。
type TokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

// ListResponse は複数リソースを返すレスポンスです。
type ListResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    any    `json:"data"`
}
