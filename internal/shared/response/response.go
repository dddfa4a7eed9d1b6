package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is deliberately plain: success bodies are the entity (or
// list) itself, everything else is {"message": "..."}.

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes an entity body.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageBody{Message: message})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}
