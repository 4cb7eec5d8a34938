package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/pkg/logger"
)

func errorResponse(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		validationErrorResponse(c, verr)
		return
	}

	status, message, known := statusFor(err)
	if !known {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func validationErrorResponse(c *gin.Context, verr *domain.ValidationError) {
	response := ErrorResponse{Message: verr.Message}
	for _, f := range verr.Fields {
		response.Errors = append(response.Errors, FieldError{Field: f.Field, Message: msgForTag(f.Tag, f.Param)})
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

// bindingErrorResponse reports malformed bodies and path parameters.
func bindingErrorResponse(c *gin.Context, err error) {
	response := ErrorResponse{Message: invalidBodyMessage}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		for _, ferr := range verr {
			response.Errors = append(response.Errors, FieldError{Field: ferr.Field(), Message: msgForTag(ferr.Tag(), ferr.Param())})
		}
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "gt":
		return fmt.Sprintf("Value must be greater than %v", value)
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "code":
		return "Must be exactly three uppercase latin letters"
	}
	return tag
}
