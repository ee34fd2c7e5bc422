package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// AssessmentController handles assessment endpoints
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// CreateAssessment creates an assessment for an opportunity
// @Summary Create an assessment
// @Description Creates an assessment. Duration only applies to ONLINE assessments.
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssessmentRequest true "Assessment details"
// @Success 201 {object} dto.APIResponse{data=models.Assessment} "Assessment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid assessment data")
		return
	}

	assessment, err := c.assessmentService.CreateAssessment(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assessment))
}

// GetAssessmentByID retrieves an assessment
// @Summary Get assessment details
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Assessment} "Assessment retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assessment, err := c.assessmentService.GetAssessmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assessment))
}

// ListAssessments retrieves assessments with pagination
// @Summary List assessments
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Assessments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	assessments, pagination, err := c.assessmentService.ListAssessments(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      assessments,
		Pagination: pagination,
	}))
}

// DeleteAssessment removes an assessment
// @Summary Delete an assessment
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Assessment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid assessment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id} [delete]
func (c *AssessmentController) DeleteAssessment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assessmentService.DeleteAssessment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Assessment deleted"))
}
