package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "edumanage_backend/internals/features/attendance/model"
)

func newStatsApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Attendance{}))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	ctl := NewAttendanceController(db)
	app.Get("/api/attendance", ctl.List)
	app.Get("/api/attendance/stats", ctl.Stats)
	return app, db
}

func seedAttendance(t *testing.T, db *gorm.DB, studentID uuid.UUID, day time.Time, status model.AttendanceStatus) {
	t.Helper()
	require.NoError(t, db.Create(&model.Attendance{
		StudentID: studentID,
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		Date:      day,
		Status:    status,
		MarkedBy:  uuid.New(),
	}).Error)
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestAttendanceStats(t *testing.T) {
	app, db := newStatsApp(t)
	studentID := uuid.New()
	day := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	statuses := []model.AttendanceStatus{
		model.StatusPresent, model.StatusPresent, model.StatusAbsent,
	}
	for i, status := range statuses {
		seedAttendance(t, db, studentID, day.AddDate(0, 0, i), status)
	}
	seedAttendance(t, db, uuid.New(), day, model.StatusPresent) // other student

	status, body := getJSON(t, app, "/api/attendance/stats?student_id="+studentID.String())
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_days"])
	assert.Equal(t, float64(2), data["present"])
	assert.Equal(t, float64(1), data["absent"])
	assert.Equal(t, float64(0), data["late"])
	assert.Equal(t, 66.67, data["percentage"])
}

func TestAttendanceStatsEmpty(t *testing.T) {
	app, _ := newStatsApp(t)

	status, body := getJSON(t, app, "/api/attendance/stats?student_id="+uuid.NewString())
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_days"])
	assert.Equal(t, float64(0), data["percentage"])
}

func TestAttendanceListDateRange(t *testing.T) {
	app, db := newStatsApp(t)
	studentID := uuid.New()

	for i := 0; i < 5; i++ {
		day := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		seedAttendance(t, db, studentID, day, model.StatusPresent)
	}

	path := fmt.Sprintf("/api/attendance?student_id=%s&date_from=2024-09-02&date_to=2024-09-04", studentID)
	status, body := getJSON(t, app, path)
	require.Equal(t, fiber.StatusOK, status)

	records := body["data"].([]interface{})
	require.Len(t, records, 3)

	// sorted date desc
	first := records[0].(map[string]interface{})
	last := records[2].(map[string]interface{})
	assert.Greater(t, first["date"].(string), last["date"].(string))
}
