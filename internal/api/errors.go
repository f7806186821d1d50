package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Alp4ka/listpager"
	"github.com/Alp4ka/listpager/internal/repository"
)

// ErrorType is a machine-readable classification of API errors.
type ErrorType string

const (
	ErrorValidation ErrorType = "VALIDATION_ERROR"
	ErrorNotFound   ErrorType = "NOT_FOUND"
	ErrorInternal   ErrorType = "INTERNAL_ERROR"
)

// ErrorResponse is the error envelope returned by the API.
type ErrorResponse struct {
	Error   ErrorType `json:"error"`
	Message string    `json:"message,omitempty"`
}

// errBadRequest marks request binding failures.
var errBadRequest = errors.New("bad request")

// MapError converts a domain or infrastructure error into an HTTP status and payload.
func MapError(err error) (int, ErrorResponse) {
	var validationErrors validator.ValidationErrors

	switch {
	case errors.Is(err, listpager.ErrInvalidArgument),
		errors.Is(err, errBadRequest),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest, ErrorResponse{Error: ErrorValidation, Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrorNotFound, Message: "resource not found"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrorInternal, Message: "internal error"}
	}
}

// writeError writes an error response and aborts the context. Only server
// faults are logged; rejected requests are the client's problem.
func writeError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	}

	c.AbortWithStatusJSON(status, payload)
}
