package dto

// ErrorResponse describes a failure the page can show to the user.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
