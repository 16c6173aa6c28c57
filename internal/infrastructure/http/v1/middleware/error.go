package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextperm/internal/core/apperror"
	appctx "nextperm/internal/core/context"
	"nextperm/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		writeError(c)
	}
}

// writeError renders the last registered error unless a response was already written.
func writeError(c *gin.Context) {
	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	ctx := c.Request.Context()
	err := c.Errors.Last().Err

	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil {
			// 4xx is bad client input; only 5xx is logged as an error
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(ctx, "request failed", "code", appErr.Code, "cause", appErr.Err)
			} else {
				logger.Warn(ctx, "request rejected", "code", appErr.Code, "cause", appErr.Err)
			}
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		})
		return
	}

	// Unknown error - log and return generic message
	logger.Error(ctx, "unhandled error", "error", err)

	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    apperror.CodeInternal,
		"message": "Internal server error",
		"details": map[string]any{
			"request_id": appctx.GetRequestID(ctx),
		},
	})
}
