package controller

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edumanage_backend/internals/configs"
	model "edumanage_backend/internals/features/users/model"
	authMw "edumanage_backend/internals/middlewares/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctl := NewAuthController(db)
	app.Post("/api/auth/register", ctl.Register)
	app.Post("/api/auth/login", ctl.Login)
	app.Get("/api/auth/me", authMw.AuthMiddleware(db), ctl.Me)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &parsed))
	}
	return resp.StatusCode, parsed
}

const registerBody = `{
	"username": "jsmith",
	"email": "jsmith@example.com",
	"name": "Jane Smith",
	"password": "secret123",
	"role": "teacher"
}`

func TestRegisterLoginMe(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/auth/register", registerBody, "")
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jsmith", data["username"])
	assert.NotContains(t, data, "password_hash")

	status, body = doJSON(t, app, "POST", "/api/auth/login",
		`{"username": "jsmith", "password": "secret123"}`, "")
	require.Equal(t, fiber.StatusOK, status)
	tokenData := body["data"].(map[string]interface{})
	token, _ := tokenData["access_token"].(string)
	require.NotEmpty(t, token)

	status, body = doJSON(t, app, "GET", "/api/auth/me", "", token)
	require.Equal(t, fiber.StatusOK, status)
	me := body["data"].(map[string]interface{})
	assert.Equal(t, "jsmith@example.com", me["email"])
	assert.Equal(t, "teacher", me["role"])
}

func TestRegisterDuplicate(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/auth/register", registerBody, "")
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/auth/register", registerBody, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "already registered")
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/auth/register", registerBody, "")
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "POST", "/api/auth/login",
		`{"username": "jsmith", "password": "wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginInactiveUser(t *testing.T) {
	app, db := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/auth/register", registerBody, "")
	require.Equal(t, fiber.StatusCreated, status)

	require.NoError(t, db.Model(&model.User{}).
		Where("username = ?", "jsmith").
		Update("is_active", false).Error)

	status, _ = doJSON(t, app, "POST", "/api/auth/login",
		`{"username": "jsmith", "password": "secret123"}`, "")
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/auth/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "GET", "/api/auth/me", "", "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
