package models

// ErrorResponse is the body sent for every failed request
type ErrorResponse struct {
	Success   bool        `json:"success"`
	ErrorCode interface{} `json:"error_code"` // numeric status, or a string reason for auth failures
	Error     string      `json:"error"`      // short HTTP description
	Message   string      `json:"message"`    // human-readable message
}

// NewErrorResponse builds the response body for err
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		ErrorCode: err.ErrorCode(),
		Error:     err.StatusText(),
		Message:   err.Message,
	}
}

// NoChangeResponse is returned by updates that would not modify the record
type NoChangeResponse struct {
	Success bool   `json:"success"`
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

// NoChangeMessage is the message sent with a NoChangeResponse
const NoChangeMessage = "No information was changed on the request."

// Pagination holds optional list paging. A zero Limit means no paging.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
