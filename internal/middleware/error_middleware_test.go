package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"protected user", apperrors.ErrProtectedUser, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict, dto.ErrorCodeAlreadyApplied},
		{"deadline passed", apperrors.ErrDeadlinePassed, http.StatusConflict, dto.ErrorCodeDeadlinePassed},
		{"cgpa below minimum", apperrors.ErrCGPABelowMinimum, http.StatusBadRequest, dto.ErrorCodeCGPABelowMinimum},
		{"username exists", apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"opportunity not found", apperrors.ErrOpportunityNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error *dto.ErrorDetail `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleAPIErrorWrappedCustomError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/", nil)

	err := apperrors.NewConflictError("opportunity has applications or assessments and cannot be deleted")
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, "cannot be deleted")
}
