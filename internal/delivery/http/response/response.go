// Package response renders the wire shapes of the REST API. Success bodies
// are the bare records; rejection bodies carry a field to message map under
// "reasons"; everything else gets an error envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReasonsBody is the rejection body for validation and conflict responses.
type ReasonsBody struct {
	Reasons map[string]string `json:"reasons"`
}

// ErrorInfo is the envelope used for errors that are not field rejections.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorBody wraps an ErrorInfo for serialization.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// Record writes a single record or a list as a bare JSON body.
func Record(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Reasons writes a field to message rejection map, used for 400 and 409.
func Reasons(c echo.Context, statusCode int, reasons map[string]string) error {
	return c.JSON(statusCode, ReasonsBody{Reasons: reasons})
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Error: ErrorInfo{
			Code:    errorCode,
			Message: message,
		},
	})
}
