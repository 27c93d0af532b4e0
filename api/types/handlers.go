package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/jobscout-api/pkg/errors"
)

// Handler utility functions shared across handlers

// RespondError writes err as an ErrorResponse. AppErrors keep their own status
// and code; anything else is a 500 with a generic message.
func RespondError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Error: "Internal server error",
		Code:  string(apperrors.GetCode(err)),
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		resp.Details = appErr.Details
	}

	c.JSON(apperrors.GetHTTPCode(err), resp)
}

// BindJSONOrError binds the request body into target and writes a 400 (or 413
// for an oversized body) on failure
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "Request body too large",
				Code:  string(apperrors.ErrCodeValidation),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Code:    string(apperrors.ErrCodeValidation),
			Details: err.Error(),
		})
		return false
	}
	return true
}
