package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
)

// OfficeController handles placement office endpoints
type OfficeController struct {
	officeService *services.OfficeService
}

// NewOfficeController creates a new OfficeController
func NewOfficeController(officeService *services.OfficeService) *OfficeController {
	return &OfficeController{
		officeService: officeService,
	}
}

// CreateOffice creates a placement office
// @Summary Create a placement office
// @Tags offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfficeRequest true "Office information"
// @Success 201 {object} dto.APIResponse{data=models.PlacementOffice} "Office created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Office already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offices [post]
func (c *OfficeController) CreateOffice(ctx *gin.Context) {
	var req dto.CreateOfficeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid office data")
		return
	}

	office := &models.PlacementOffice{
		Name:         req.Name,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
	}

	id, err := c.officeService.CreateOffice(ctx, office)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	office.ID = id
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(office))
}

// GetOfficeByID retrieves a placement office
// @Summary Get placement office details
// @Tags offices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Office ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.PlacementOffice} "Office retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid office ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Office not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offices/{id} [get]
func (c *OfficeController) GetOfficeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	office, err := c.officeService.GetOfficeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(office))
}

// GetAllOffices retrieves all placement offices
// @Summary List placement offices
// @Tags offices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementOffice} "Offices retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offices [get]
func (c *OfficeController) GetAllOffices(ctx *gin.Context) {
	offices, err := c.officeService.GetAllOffices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offices))
}

// UpdateOffice updates a placement office
// @Summary Update a placement office
// @Tags offices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Office ID" Format(int64) minimum(1)
// @Param request body dto.UpdateOfficeRequest true "Office information"
// @Success 200 {object} dto.APIResponse{data=models.PlacementOffice} "Office updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Office not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offices/{id} [put]
func (c *OfficeController) UpdateOffice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOfficeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid office data")
		return
	}

	office := &models.PlacementOffice{
		ID:           id,
		Name:         req.Name,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
	}

	if err := c.officeService.UpdateOffice(ctx, office); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(office))
}

// DeleteOffice deletes a placement office
// @Summary Delete a placement office
// @Description Deletes an office. Offices with opportunities are protected.
// @Tags offices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Office ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Office deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid office ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Office not found"
// @Failure 409 {object} dto.ErrorResponse "Office has opportunities"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offices/{id} [delete]
func (c *OfficeController) DeleteOffice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.officeService.DeleteOffice(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Office deleted"))
}
