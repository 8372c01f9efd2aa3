package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

type HTTPFieldError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Fields  any    `json:"fields"`
}

// WriteFields devolve todos os erros de campo juntos, para o cliente
// mostrar tudo em uma única ida e volta.
func WriteFields(c *gin.Context, code, message string, fields any) {
	c.JSON(http.StatusBadRequest, HTTPFieldError{
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}
