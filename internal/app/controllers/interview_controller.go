package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// InterviewController handles interview endpoints
type InterviewController struct {
	interviewService services.InterviewService
}

// NewInterviewController creates a new InterviewController
func NewInterviewController(interviewService services.InterviewService) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
	}
}

// ScheduleInterview schedules an interview for an application
// @Summary Schedule an interview
// @Description Schedules an interview and advances the application to INTERVIEW_SCHEDULED
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleInterviewRequest true "Interview details"
// @Success 201 {object} dto.APIResponse{data=dto.InterviewResponse} "Interview scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [post]
func (c *InterviewController) ScheduleInterview(ctx *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid interview data")
		return
	}

	interview, err := c.interviewService.ScheduleInterview(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromInterview(interview)))
}

// GetInterviewByID retrieves an interview
// @Summary Get interview details
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InterviewResponse} "Interview retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid interview ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id} [get]
func (c *InterviewController) GetInterviewByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interview, err := c.interviewService.GetInterviewByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromInterview(interview)))
}

// ListInterviews retrieves interviews with pagination
// @Summary List interviews
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Interviews retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	interviews, pagination, err := c.interviewService.ListInterviews(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      dto.FromInterviews(interviews),
		Pagination: pagination,
	}))
}

// UpdateResult records an interview outcome
// @Summary Update interview result
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInterviewResultRequest true "Interview result"
// @Success 200 {object} dto.APIResponse{data=dto.InterviewResponse} "Result updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown result"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id}/result [put]
func (c *InterviewController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterviewResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid result data")
		return
	}

	interview, err := c.interviewService.UpdateResult(ctx, id, req.Result)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromInterview(interview)))
}

// DeleteInterview removes an interview
// @Summary Delete an interview
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Interview deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid interview ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id} [delete]
func (c *InterviewController) DeleteInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.interviewService.DeleteInterview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Interview deleted"))
}
