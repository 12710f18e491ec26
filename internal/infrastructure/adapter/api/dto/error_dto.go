package dto

// ErrorResponse represents a runtime failure body. StackTrace is populated
// only outside production.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	StackTrace   string `json:"stackTrace,omitempty"`
}

// ValidationErrorResponse represents a request-shape failure body, with
// messages grouped by field name.
type ValidationErrorResponse struct {
	Title            string              `json:"title"`
	ValidationErrors map[string][]string `json:"validationErrors"`
}
