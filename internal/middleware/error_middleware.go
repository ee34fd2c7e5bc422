package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers call
// this for every service error so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrProtectedUser):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "The built-in admin account cannot be deleted")
	case errors.Is(err, apperrors.ErrStudentNotLinked):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is not linked to a student record")

	case errors.Is(err, apperrors.ErrAlreadyApplied):
		respond(c, http.StatusConflict, dto.ErrorCodeAlreadyApplied, "You have already applied to this opportunity")
	case errors.Is(err, apperrors.ErrDeadlinePassed):
		respond(c, http.StatusConflict, dto.ErrorCodeDeadlinePassed, "The application deadline has passed")
	case errors.Is(err, apperrors.ErrCGPABelowMinimum):
		respond(c, http.StatusBadRequest, dto.ErrorCodeCGPABelowMinimum, "Your CGPA is below the minimum for this opportunity")

	case errors.Is(err, apperrors.ErrUsernameExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrRollNoAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Roll number already exists")
	case errors.Is(err, apperrors.ErrStudentHasApplications):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInUse, "Student has applications and cannot be deleted")
	case errors.Is(err, apperrors.ErrOfficeHasPostings):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInUse, "Placement office has opportunities and cannot be deleted")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceInUse, messageOr(err, "Resource is in use"))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")

	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrOpportunityNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Opportunity not found")
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found")
	case errors.Is(err, apperrors.ErrInterviewNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Interview not found")
	case errors.Is(err, apperrors.ErrAssessmentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Assessment not found")
	case errors.Is(err, apperrors.ErrAnnouncementNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Announcement not found")
	case errors.Is(err, apperrors.ErrOfficeNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Placement office not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, messageOr(err, "Resource not found"))

	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidResult),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))

	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// messageOr surfaces the wrapped error message when one was attached,
// falling back to a generic message for bare sentinels.
func messageOr(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if msg := err.Error(); msg != "" && msg != fallback {
		return msg
	}
	return fallback
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}
