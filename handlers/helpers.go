package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tripline/tripline-backend/errors"
)

const dateLayout = "2006-01-02"

// bindJSONOrError binds the request body and registers a validation error
// for the error middleware on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

// parseIDParam reads a positive int64 path parameter or registers a
// validation error.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.ValidationFailed("invalid_path_parameter", name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD string or registers a validation error
// naming the offending field.
func parseDate(c *gin.Context, field, value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_date", field+" must be in YYYY-MM-DD form"))
		return time.Time{}, false
	}
	return t, true
}
