package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
)

// ReportController serves the reporting views and scalar functions
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// OpportunityStats reports application volume per posting
// @Summary Opportunity statistics
// @Description Per-opportunity application volume and average applicant CGPA, from vw_opportunity_stats
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.OpportunityStats} "Statistics retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/opportunity-stats [get]
func (c *ReportController) OpportunityStats(ctx *gin.Context) {
	stats, err := c.reportService.OpportunityStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// StudentAppCounts reports application totals per student
// @Summary Student application counts
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentAppCount} "Counts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/student-app-counts [get]
func (c *ReportController) StudentAppCounts(ctx *gin.Context) {
	counts, err := c.reportService.StudentAppCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counts))
}

// AboveAverageApplicants reports students applying more than average
// @Summary Above-average applicants
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AboveAverageApplicant} "Applicants retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/above-average-applicants [get]
func (c *ReportController) AboveAverageApplicants(ctx *gin.Context) {
	applicants, err := c.reportService.AboveAverageApplicants(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applicants))
}

// StudentFullname evaluates fn_get_student_fullname
// @Summary Student full name
// @Description Demonstrates the fn_get_student_fullname database function
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentFullnameResponse} "Name retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/students/{id}/fullname [get]
func (c *ReportController) StudentFullname(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.reportService.StudentFullname(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DaysLeft evaluates fn_days_left_for_opportunity
// @Summary Days until an opportunity's deadline
// @Description Returns the days left before an opportunity's deadline with its display badge
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DaysLeftResponse} "Days left retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid opportunity ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/opportunities/{id}/days-left [get]
func (c *ReportController) DaysLeft(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.reportService.DaysLeft(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
