package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint answers with
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	write(c, code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	write(c, code, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func write(c *gin.Context, code int, body Response) {
	body.RequestID = c.GetString("RequestID")
	c.JSON(code, body)
}
