package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderError renders the shared error page with the given status.
// The code is attached to the gin error list so the request log carries it;
// raw internal errors never reach the user.
func RenderError(c *gin.Context, statusCode int, errorCode string, message string) {
	_ = c.Error(&pageError{code: errorCode, message: message})
	c.HTML(statusCode, "error.html", gin.H{
		"Code":    errorCode,
		"Message": message,
	})
}

type pageError struct {
	code    string
	message string
}

func (e *pageError) Error() string {
	return e.code + ": " + e.message
}

// Shortcuts for the common cases.

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "We could not find what you were looking for"
	}
	RenderError(c, http.StatusNotFound, ResourceNotFound, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RenderError(c, http.StatusBadRequest, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong on our side. Please try again later"
	}
	RenderError(c, http.StatusInternalServerError, InternalServerError, message)
}
