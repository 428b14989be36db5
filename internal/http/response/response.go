package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	"github.com/yungbote/catalog-backend/internal/validation"
)

type APIError struct {
	Message string                             `json:"message"`
	Code    string                             `json:"code,omitempty"`
	Fields  map[string][]validation.FieldError `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondAPIError writes err with the status its code maps to. Internal
// errors are not echoed to the client.
func RespondAPIError(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorEnvelope{
			Error: APIError{
				Message: verr.Message(),
				Code:    "validation_failed",
				Fields:  verr.Fields,
			},
		})
		return
	}

	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		msg := http.StatusText(status)
		RespondError(c, status, code, errors.New(msg))
		return
	}
	RespondError(c, status, code, err)
}

// StatusFor maps an error code onto its HTTP status and wire code.
func StatusFor(err error) (int, string) {
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation:
		return http.StatusUnprocessableEntity, "validation_failed"
	case domainagg.CodeNotFound:
		return http.StatusNotFound, "not_found"
	case domainagg.CodeConflict:
		return http.StatusConflict, "conflict"
	case domainagg.CodePreconditionFailed:
		return http.StatusConflict, "precondition_failed"
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable, "retryable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
