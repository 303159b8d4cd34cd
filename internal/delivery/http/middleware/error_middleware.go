package middleware

import (
	"errors"
	"net/http"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed", "path", c.FullPath(), "error", appErr.Detail())
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Detail())
				return
			}

			// Unanticipated errors keep the raw text for diagnostics.
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusBadRequest, domain.MsgDefaultError, err.Error())
		}
	}
}
