package dto

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Stack      string      `json:"stack,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps a message (and optional data) in a success envelope.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList wraps a counted list in a success envelope.
func OKList(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

// OKPage wraps a paginated list in a success envelope.
func OKPage(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

// ErrorResponse is the swagger-documented shape of error envelopes.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"resource not found"`
}
