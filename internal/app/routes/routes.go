package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusplacement/portal/internal/app/controllers"
	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/websocket"
)

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Profile      *controllers.ProfileController
	Opportunity  *controllers.OpportunityController
	Application  *controllers.ApplicationController
	Interview    *controllers.InterviewController
	Assessment   *controllers.AssessmentController
	Announcement *controllers.AnnouncementController
	Office       *controllers.OfficeController
	User         *controllers.UserController
	Report       *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	hub *websocket.Hub,
	logger zerolog.Logger,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.GET("/auth/me", ctrl.Auth.Me)

		// Live announcement feed
		authenticated.GET("/ws/announcements", func(c *gin.Context) {
			userID, _ := middleware.GetUserID(c)
			if err := websocket.ServeWS(hub, c.Writer, c.Request, userID, logger); err != nil {
				logger.Warn().Err(err).Int64("userID", userID).Msg("Websocket upgrade failed")
			}
		})

		// Shared read endpoints, role-aware where it matters
		authenticated.GET("/opportunities", ctrl.Opportunity.ListOpportunities)
		authenticated.GET("/opportunities/:id", ctrl.Opportunity.GetOpportunityByID)
		authenticated.GET("/announcements", ctrl.Announcement.ListAnnouncements)
		authenticated.GET("/announcements/:id", ctrl.Announcement.GetAnnouncementByID)
		authenticated.GET("/offices", ctrl.Office.GetAllOffices)
		authenticated.GET("/offices/:id", ctrl.Office.GetOfficeByID)
		authenticated.GET("/assessments", ctrl.Assessment.ListAssessments)
		authenticated.GET("/assessments/:id", ctrl.Assessment.GetAssessmentByID)

		reports := authenticated.Group("/reports")
		{
			reports.GET("/opportunity-stats", ctrl.Report.OpportunityStats)
			reports.GET("/student-app-counts", ctrl.Report.StudentAppCounts)
			reports.GET("/above-average-applicants", ctrl.Report.AboveAverageApplicants)
			reports.GET("/students/:id/fullname", ctrl.Report.StudentFullname)
			reports.GET("/opportunities/:id/days-left", ctrl.Report.DaysLeft)
		}

		// Student self-service
		me := authenticated.Group("/me")
		me.Use(authMiddleware.RoleRequired(models.RoleStudent), authMiddleware.StudentLinkRequired())
		{
			me.GET("/dashboard", ctrl.Profile.Dashboard)
			me.GET("/profile", ctrl.Profile.GetProfile)
			me.PUT("/profile", ctrl.Profile.UpdateContact)
			me.GET("/applications", ctrl.Profile.MyApplications)
			me.PUT("/applications/:id/withdraw", ctrl.Profile.Withdraw)
			me.GET("/interviews", ctrl.Profile.MyInterviews)
			me.POST("/resume", ctrl.Profile.UploadResume)
			me.DELETE("/resume", ctrl.Profile.DeleteResume)
		}

		studentOnly := authenticated.Group("")
		studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent), authMiddleware.StudentLinkRequired())
		{
			studentOnly.POST("/opportunities/:id/apply", ctrl.Profile.Apply)
		}

		// Admin routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			students := admin.Group("/students")
			{
				students.POST("", ctrl.Student.CreateStudent)
				students.GET("", ctrl.Student.ListStudents)
				students.GET("/:id", ctrl.Student.GetStudentByID)
				students.PUT("/:id", ctrl.Student.UpdateStudent)
				students.DELETE("/:id", ctrl.Student.DeleteStudent)
				students.GET("/:id/applications", ctrl.Application.ListByStudent)
			}

			opportunities := admin.Group("/opportunities")
			{
				opportunities.POST("", ctrl.Opportunity.CreateOpportunity)
				opportunities.PUT("/:id", ctrl.Opportunity.UpdateOpportunity)
				opportunities.DELETE("/:id", ctrl.Opportunity.DeleteOpportunity)
			}

			applications := admin.Group("/applications")
			{
				applications.GET("", ctrl.Application.ListApplications)
				applications.GET("/:id", ctrl.Application.GetApplicationByID)
				applications.PUT("/:id/status", ctrl.Application.UpdateStatus)
				applications.POST("/:id/withdraw", ctrl.Application.Withdraw)
				applications.DELETE("/:id", ctrl.Application.DeleteApplication)
				applications.GET("/:id/audit", ctrl.Application.AuditTrail)
			}

			interviews := admin.Group("/interviews")
			{
				interviews.POST("", ctrl.Interview.ScheduleInterview)
				interviews.GET("", ctrl.Interview.ListInterviews)
				interviews.GET("/:id", ctrl.Interview.GetInterviewByID)
				interviews.PUT("/:id/result", ctrl.Interview.UpdateResult)
				interviews.DELETE("/:id", ctrl.Interview.DeleteInterview)
			}

			assessments := admin.Group("/assessments")
			{
				assessments.POST("", ctrl.Assessment.CreateAssessment)
				assessments.DELETE("/:id", ctrl.Assessment.DeleteAssessment)
			}

			announcements := admin.Group("/announcements")
			{
				announcements.POST("", ctrl.Announcement.CreateAnnouncement)
				announcements.DELETE("/:id", ctrl.Announcement.DeleteAnnouncement)
			}

			offices := admin.Group("/offices")
			{
				offices.POST("", ctrl.Office.CreateOffice)
				offices.PUT("/:id", ctrl.Office.UpdateOffice)
				offices.DELETE("/:id", ctrl.Office.DeleteOffice)
			}

			users := admin.Group("/users")
			{
				users.POST("", ctrl.User.CreateUser)
				users.GET("", ctrl.User.GetAllUsers)
				users.DELETE("/:id", ctrl.User.DeleteUser)
			}
		}
	}
}
