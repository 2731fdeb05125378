package dto

// ErrorResponse cuerpo de error HTTP. El cliente solo depende de Message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
