package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	"service_not_found":      "Serviço não encontrado.",
	"missing_appointment_id": "ID do agendamento não fornecido.",
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

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError answers a business error with 422 and anything else with 500.
func FromError(c *gin.Context, err error) {
	code := Code(err)
	if code == "" {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg, ok := messages[code]
	if !ok {
		msg = code
	}
	Unprocessable(c, code, msg)
}
