package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/helpers"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// CreateAnnouncement posts an announcement
// @Summary Create an announcement
// @Description Posts an announcement and pushes it to live subscribers. Omitting officeId makes it global.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement office not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid announcement data")
		return
	}

	announcement, err := c.announcementService.CreateAnnouncement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(announcement))
}

// GetAnnouncementByID retrieves an announcement
// @Summary Get announcement details
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Announcement} "Announcement retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid announcement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) GetAnnouncementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	announcement, err := c.announcementService.GetAnnouncementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(announcement))
}

// ListAnnouncements retrieves announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only announcements still valid today" default(false)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Announcements retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [get]
func (c *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	activeOnly := ctx.Query("active") == "true"

	announcements, pagination, err := c.announcementService.ListAnnouncements(ctx, activeOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      announcements,
		Pagination: pagination,
	}))
}

// DeleteAnnouncement removes an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Announcement deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid announcement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Announcement deleted"))
}
