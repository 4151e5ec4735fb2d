package types

import "fmt"

// CustomError carries the HTTP status to respond with and a short tag naming
// the operation that failed. The app error handler renders it into the JSON
// error envelope; anything else falls through as a 500.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error formats the code, message, and tag for logs.
func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
