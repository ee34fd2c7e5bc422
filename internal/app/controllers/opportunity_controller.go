package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// OpportunityController handles opportunity endpoints
type OpportunityController struct {
	opportunityService services.OpportunityService
	studentService     services.StudentService
}

// NewOpportunityController creates a new OpportunityController
func NewOpportunityController(opportunityService services.OpportunityService, studentService services.StudentService) *OpportunityController {
	return &OpportunityController{
		opportunityService: opportunityService,
		studentService:     studentService,
	}
}

// CreateOpportunity posts a new opportunity
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOpportunityRequest true "Opportunity information"
// @Success 201 {object} dto.APIResponse{data=dto.OpportunityResponse} "Opportunity created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement office not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities [post]
func (c *OpportunityController) CreateOpportunity(ctx *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid opportunity data")
		return
	}

	opportunity, err := c.opportunityService.CreateOpportunity(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromOpportunity(opportunity)))
}

// GetOpportunityByID retrieves an opportunity with its deadline badge
// @Summary Get opportunity details
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.OpportunityResponse} "Opportunity retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid opportunity ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id} [get]
func (c *OpportunityController) GetOpportunityByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	opportunity, err := c.opportunityService.GetOpportunityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromOpportunity(opportunity)))
}

// ListOpportunities retrieves opportunities. Student callers get applied
// and eligible hints on each row.
// @Summary List opportunities
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Opportunities retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities [get]
func (c *OpportunityController) ListOpportunities(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	if studentID, isStudent := middleware.GetStudentID(ctx); isStudent {
		student, err := c.studentService.GetStudentByID(ctx, studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		responses, pagination, err := c.opportunityService.ListForStudent(ctx, student, page, size)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
			Items:      responses,
			Pagination: pagination,
		}))
		return
	}

	opportunities, pagination, err := c.opportunityService.ListOpportunities(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.OpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		responses = append(responses, dto.FromOpportunity(o))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      responses,
		Pagination: pagination,
	}))
}

// UpdateOpportunity modifies an opportunity
// @Summary Update an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID" Format(int64) minimum(1)
// @Param request body dto.UpdateOpportunityRequest true "Opportunity information"
// @Success 200 {object} dto.APIResponse{data=dto.OpportunityResponse} "Opportunity updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id} [put]
func (c *OpportunityController) UpdateOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOpportunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid opportunity data")
		return
	}

	opportunity, err := c.opportunityService.UpdateOpportunity(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromOpportunity(opportunity)))
}

// DeleteOpportunity removes an opportunity
// @Summary Delete an opportunity
// @Description Deletes an opportunity. Postings with applications or assessments are protected.
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Opportunity deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid opportunity ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 409 {object} dto.ErrorResponse "Opportunity is referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id} [delete]
func (c *OpportunityController) DeleteOpportunity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.opportunityService.DeleteOpportunity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Opportunity deleted"))
}
