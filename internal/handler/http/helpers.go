package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natnael-haile/hireflow/internal/dataclient"
	"github.com/natnael-haile/hireflow/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DataErrorHandler maps a data layer error to its HTTP status. Transport
// failures are masked with a generic message so internals never leak.
func DataErrorHandler(c *gin.Context, err *dataclient.Error) {
	switch err.Kind {
	case dataclient.KindValidation, dataclient.KindUnscopedMutation:
		ErrorHandler(c, http.StatusBadRequest, err.Message)
	case dataclient.KindAuth:
		ErrorHandler(c, http.StatusUnauthorized, err.Message)
	case dataclient.KindNotFound:
		ErrorHandler(c, http.StatusNotFound, err.Message)
	case dataclient.KindConflict:
		ErrorHandler(c, http.StatusConflict, err.Message)
	case dataclient.KindUnknownEntity, dataclient.KindUnknownProcedure:
		ErrorHandler(c, http.StatusBadRequest, err.Message)
	default:
		ErrorHandler(c, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
