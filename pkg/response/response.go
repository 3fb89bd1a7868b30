package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the payload as-is. Endpoint payload field
// names are part of the wire contract, so no envelope is added.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with a detail message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Detail{Detail: err.Error()})
}

// NotFound sends 404 with a detail message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Detail{Detail: msg})
}

// InternalError sends 500 with a detail message.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Detail{Detail: err.Error()})
}

// TooManyRequests sends 429 with a detail message.
func TooManyRequests(c *gin.Context, msg string) {
	c.JSON(http.StatusTooManyRequests, Detail{Detail: msg})
}
