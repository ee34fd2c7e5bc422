package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter. It writes the 400
// response itself; callers just return when ok is false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithDetails("ID must be a positive number").
			WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindError writes the standard 400 for request binding failures.
func bindError(ctx *gin.Context, err error, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
