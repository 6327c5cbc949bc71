package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline-backend/errors"
	"github.com/tripline/tripline-backend/logger"
)

// ErrorHandler translates errors registered on the gin context into JSON
// error bodies. AppErrors keep their type and status; anything else is
// reported as an opaque server error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			log.Warnw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", statusCode,
				"type", appError.Type,
				"error", appError.Message,
			)

			response := gin.H{
				"type":  string(appError.Type),
				"error": appError.Message,
			}
			if appError.Detail != "" {
				response["detail"] = appError.Detail
			}
			if appError.ValidRange != nil {
				response["valid_range"] = appError.ValidRange
			}
			c.JSON(statusCode, response)
			return
		}

		log.Errorw("Unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"type":  string(errors.ServerError),
			"error": "Internal server error",
		})
	}
}
