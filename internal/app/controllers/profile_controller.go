package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/middleware"
)

// ProfileController handles the student self-service endpoints. Every
// handler requires a STUDENT account linked to a student record.
type ProfileController struct {
	studentService     services.StudentService
	applicationService services.ApplicationService
	interviewService   services.InterviewService
}

// NewProfileController creates a new ProfileController
func NewProfileController(studentService services.StudentService, applicationService services.ApplicationService, interviewService services.InterviewService) *ProfileController {
	return &ProfileController{
		studentService:     studentService,
		applicationService: applicationService,
		interviewService:   interviewService,
	}
}

// studentID reads the linked student ID, writing the 403 itself when
// the link is missing.
func (c *ProfileController) studentID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("Account is not linked to a student record")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// Dashboard returns the student landing payload
// @Summary Student dashboard
// @Description Upcoming interviews and assessments for the authenticated student
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/dashboard [get]
func (c *ProfileController) Dashboard(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.studentService.Dashboard(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// GetProfile returns the student's own record
// @Summary Get my profile
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateContact updates the student-owned contact fields
// @Summary Update my contact details
// @Description Students may only change their email and phone. Academic fields stay admin-owned.
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateContactRequest true "Contact details"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/profile [put]
func (c *ProfileController) UpdateContact(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err, "Invalid contact data")
		return
	}

	if err := c.studentService.UpdateContact(ctx, studentID, req.Email, req.Phone); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// MyApplications lists the student's applications
// @Summary List my applications
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/applications [get]
func (c *ProfileController) MyApplications(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
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

// MyInterviews lists all of the student's interviews with result badges
// @Summary List my interviews
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewResponse} "Interviews retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/interviews [get]
func (c *ProfileController) MyInterviews(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	interviews, err := c.interviewService.ListByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromInterviews(interviews)))
}

// Apply submits an application to an opportunity
// @Summary Apply to an opportunity
// @Description Submits an application. Eligibility, the deadline and the one-application rule are enforced server-side.
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID" Format(int64) minimum(1)
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid opportunity ID or CGPA below minimum"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied or deadline passed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /opportunities/{id}/apply [post]
func (c *ProfileController) Apply(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	opportunityID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.Apply(ctx, studentID, opportunityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromApplication(application)))
}

// Withdraw withdraws one of the student's applications
// @Summary Withdraw an application
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application withdrawn"
// @Failure 400 {object} dto.ErrorResponse "Already withdrawn"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not your application"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/applications/{id}/withdraw [put]
func (c *ProfileController) Withdraw(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.applicationService.Withdraw(ctx, applicationID, &studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromApplication(application)))
}

// UploadResume stores the student's resume
// @Summary Upload my resume
// @Description Accepts a single PDF up to 5 MB, replacing any previous resume
// @Tags me
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume PDF"
// @Success 200 {object} dto.APIResponse "Resume stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/resume [post]
func (c *ProfileController) UploadResume(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		bindError(ctx, err, "Resume file is required")
		return
	}

	url, err := c.studentService.SaveResume(ctx, studentID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"resumeUrl": url}))
}

// DeleteResume removes the student's resume
// @Summary Delete my resume
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Resume removed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not a student account"
// @Failure 404 {object} dto.ErrorResponse "No resume on file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/resume [delete]
func (c *ProfileController) DeleteResume(ctx *gin.Context) {
	studentID, ok := c.studentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteResume(ctx, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resume removed"))
}
