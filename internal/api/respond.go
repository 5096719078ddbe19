package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/service"
)

// errorEnvelope is the wire shape for every failure leaving the API.
type errorEnvelope struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// respondError classifies err and writes the {error, message, retryable}
// envelope with the matching HTTP status.
func respondError(c *gin.Context, err error) {
	svcErr := service.AsError(err)

	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, errorEnvelope{
		Error:     string(svcErr.Kind),
		Message:   svcErr.Message,
		Retryable: svcErr.Retryable,
	})
}
