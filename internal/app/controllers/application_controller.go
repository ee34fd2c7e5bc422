package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// ApplicationController handles admin-side application management
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// ListApplications retrieves applications, optionally filtered by status
// @Summary List applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(APPLIED, SHORTLISTED, INTERVIEW_SCHEDULED, OFFERED, REJECTED, WITHDRAWN)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var status *models.ApplicationStatus
	if statusParam := ctx.Query("status"); statusParam != "" {
		s := models.ApplicationStatus(statusParam)
		status = &s
	}

	applications, pagination, err := c.applicationService.ListApplications(ctx, status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      dto.FromApplications(applications),
		Pagination: pagination,
	}))
}

// ListByStudent retrieves all applications of one student
// @Summary List a student's applications
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/applications [get]
func (c *ApplicationController) ListByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	applications, err := c.applicationService.ListByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApplications(applications)))
}

// Withdraw moves an application to WITHDRAWN on behalf of the office
// @Summary Withdraw an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application withdrawn"
// @Failure 400 {object} dto.ErrorResponse "Already withdrawn"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/withdraw [post]
func (c *ApplicationController) Withdraw(ctx *gin.Context) {
	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.Withdraw(ctx, applicationID, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApplication(application)))
}

// GetApplicationByID retrieves an application
// @Summary Get application details
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.GetApplicationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApplication(application)))
}

// UpdateStatus transitions an application's status
// @Summary Update application status
// @Description Moves an application through the pipeline and records the change in the audit trail
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid status data")
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApplication(application)))
}

// DeleteApplication removes an application
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Application deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application is referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.DeleteApplication(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application deleted"))
}

// AuditTrail retrieves an application's audit history
// @Summary Get application audit trail
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.ApplicationAudit} "Audit trail retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/audit [get]
func (c *ApplicationController) AuditTrail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	trail, err := c.applicationService.AuditTrail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trail))
}
