package routes

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/campusplacement/portal/internal/app/controllers"
	"github.com/campusplacement/portal/internal/middleware"
	"github.com/campusplacement/portal/internal/pkg/auth"
	"github.com/campusplacement/portal/internal/pkg/websocket"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})

	ctrl := Controllers{
		Auth:         controllers.NewAuthController(nil),
		Student:      controllers.NewStudentController(nil),
		Profile:      controllers.NewProfileController(nil, nil, nil),
		Opportunity:  controllers.NewOpportunityController(nil, nil),
		Application:  controllers.NewApplicationController(nil),
		Interview:    controllers.NewInterviewController(nil),
		Assessment:   controllers.NewAssessmentController(nil),
		Announcement: controllers.NewAnnouncementController(nil),
		Office:       controllers.NewOfficeController(nil),
		User:         controllers.NewUserController(nil),
		Report:       controllers.NewReportController(nil),
	}

	router := gin.New()
	SetupRouter(router, ctrl, middleware.NewAuthMiddleware(jwtService), websocket.NewHub(zerolog.Nop()), zerolog.Nop())

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetupRouterRegistersStudentSelfService(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["GET /api/v1/me/dashboard"])
	assert.True(t, routes["GET /api/v1/me/profile"])
	assert.True(t, routes["GET /api/v1/me/applications"])
	assert.True(t, routes["GET /api/v1/me/interviews"])
	assert.True(t, routes["PUT /api/v1/me/applications/:id/withdraw"])
	assert.True(t, routes["POST /api/v1/opportunities/:id/apply"])
}

func TestSetupRouterRegistersAdminAndSharedEndpoints(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["GET /api/v1/students/:id/applications"])
	assert.True(t, routes["POST /api/v1/applications/:id/withdraw"])
	assert.True(t, routes["PUT /api/v1/applications/:id/status"])
	assert.True(t, routes["POST /api/v1/interviews"])
	assert.True(t, routes["GET /api/v1/reports/opportunity-stats"])
	assert.True(t, routes["GET /api/v1/reports/above-average-applicants"])
	assert.True(t, routes["GET /api/v1/reports/opportunities/:id/days-left"])
}
