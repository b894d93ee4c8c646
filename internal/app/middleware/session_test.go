package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret",
		SessionTTLHours: 1,
	}
}

func TestDecide(t *testing.T) {
	userSession := &services.Session{AccountID: 1, IsAdmin: false}
	adminSession := &services.Session{AccountID: 2, IsAdmin: true}

	tests := []struct {
		name     string
		session  *services.Session
		level    AccessLevel
		allowed  bool
		redirect string
	}{
		{"公开访问无会话", nil, LevelPublic, true, ""},
		{"公开访问有会话", userSession, LevelPublic, true, ""},
		{"用户级别无会话", nil, LevelUser, false, PathLogin},
		{"用户级别普通会话", userSession, LevelUser, true, ""},
		{"用户级别管理员会话", adminSession, LevelUser, true, ""},
		{"管理员级别无会话", nil, LevelAdmin, false, PathAdminLogin},
		{"管理员级别普通会话", userSession, LevelAdmin, false, PathAdminLogin},
		{"管理员级别管理员会话", adminSession, LevelAdmin, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.session, tt.level)
			assert.Equal(t, tt.allowed, decision.Allowed)
			assert.Equal(t, tt.redirect, decision.RedirectTarget)
		})
	}
}

func issueTestToken(t *testing.T, cfg *config.Config, accountID uint, isAdmin bool) string {
	t.Helper()
	svc := services.NewSessionService(cfg, nil)
	account := &models.Account{IsAdmin: isAdmin}
	account.ID = accountID
	token, err := svc.IssueToken(account)
	require.NoError(t, err)
	return token
}

func setupTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitSessionMiddleware(cfg, nil)

	r := gin.New()
	user := r.Group("/")
	user.Use(RequireUser())
	user.GET("/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"account_id": c.GetUint("accountID")})
	})

	admin := r.Group("/admin")
	admin.Use(RequireAdmin())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	r := setupTestRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	// 未登录访问受保护页面跳转到登录页，不泄露数据
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))
}

func TestRequireUserAllowsValidSession(t *testing.T) {
	cfg := testConfig()
	r := setupTestRouter(cfg)
	token := issueTestToken(t, cfg, 9, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"account_id":9`)
}

func TestRequireUserAcceptsBearerHeader(t *testing.T) {
	cfg := testConfig()
	r := setupTestRouter(cfg)
	token := issueTestToken(t, cfg, 4, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsRegularSession(t *testing.T) {
	cfg := testConfig()
	r := setupTestRouter(cfg)
	token := issueTestToken(t, cfg, 9, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	// 普通用户会话访问管理员页面跳转到管理员登录页
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathAdminLogin, w.Header().Get("Location"))
}

func TestRequireAdminAllowsAdminSession(t *testing.T) {
	cfg := testConfig()
	r := setupTestRouter(cfg)
	token := issueTestToken(t, cfg, 1, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUserRejectsTamperedToken(t *testing.T) {
	cfg := testConfig()
	r := setupTestRouter(cfg)
	token := issueTestToken(t, cfg, 9, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token + "x"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, PathLogin, w.Header().Get("Location"))
}
