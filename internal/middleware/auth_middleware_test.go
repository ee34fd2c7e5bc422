package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement-portal-test",
	})

	return gin.New(), jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	return access
}

func TestJWTAuthSetsContext(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	studentID := int64(9)
	user := &models.User{ID: 3, Username: "21cs101", Role: models.RoleStudent, StudentID: &studentID}

	var gotUserID, gotStudentID int64
	var userOK, studentOK bool
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		gotUserID, userOK = GetUserID(c)
		gotStudentID, studentOK = GetStudentID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, user))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, userOK)
	assert.Equal(t, int64(3), gotUserID)
	assert.True(t, studentOK)
	assert.Equal(t, int64(9), gotStudentID)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.validtoken")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthQueryTokenFallback(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	user := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}

	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest("GET", "/protected?token="+tokenFor(t, jwtService, user), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	admin := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}
	studentID := int64(4)
	student := &models.User{ID: 2, Username: "21cs102", Role: models.RoleStudent, StudentID: &studentID}

	router.GET("/admin-only", m.JWTAuth(), m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, admin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, student))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStudentLinkRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)

	// STUDENT role but no linked student record.
	unlinked := &models.User{ID: 5, Username: "orphan", Role: models.RoleStudent}

	router.GET("/me", m.JWTAuth(), m.StudentLinkRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, unlinked))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	studentID := int64(8)
	linked := &models.User{ID: 6, Username: "21cs103", Role: models.RoleStudent, StudentID: &studentID}

	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, linked))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
