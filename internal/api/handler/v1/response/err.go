package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.Int("status", err.statusCode),
			zap.String("message", err.Message),
		)

		// Internal details stay in the logs.
		err.Message = "internal server error"
	}

	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		ErrorType:  "bad_request",
		Message:    err.Error(),
	}
}

// ErrBadRequestWithDetails keeps the typed payload of a domain error, such
// as the balance breakdown of a rejected payment.
func ErrBadRequestWithDetails(err error, details interface{}) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		ErrorType:  "bad_request",
		Message:    err.Error(),
		Details:    details,
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		ErrorType:  "not_found",
		Message:    fmt.Sprintf("%v not found (%v = %v)", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		statusCode: http.StatusConflict,
		ErrorType:  "conflict",
		Message:    err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		statusCode: http.StatusInternalServerError,
		ErrorType:  "internal_error",
		Message:    err.Error(),
	}
}
