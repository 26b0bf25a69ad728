package dashboardController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dashboardController "github.com/ehacking12/Ehacking-School-Website/controllers/dashboard"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	"github.com/ehacking12/Ehacking-School-Website/models"
	dashboardRoutes "github.com/ehacking12/Ehacking-School-Website/routers/dashboardRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTKey = "test-secret"

type apiResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.UserCourse{}))

	app := fiber.New()
	dashboardRoutes.SetupDashboardRoutes(app, dashboardController.NewController(db), testJWTKey)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	user := models.User{FirstName: "Test", LastName: "User", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(testJWTKey, user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestEnroll(t *testing.T) {
	app, db := setup(t)
	_, token := createUser(t, db, "a@b.com")

	resp, body := doRequest(t, app, http.MethodPost, "/api/dashboard/enroll", token, map[string]interface{}{
		"course_name": "intro",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body.Data["course_id"])

	// enrolling twice in the same course must conflict and leave one row
	resp, _ = doRequest(t, app, http.MethodPost, "/api/dashboard/enroll", token, map[string]interface{}{
		"course_name": "intro",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.UserCourse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollSameCourseDifferentUsers(t *testing.T) {
	app, db := setup(t)
	_, tokenA := createUser(t, db, "a@b.com")
	_, tokenB := createUser(t, db, "b@b.com")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/dashboard/enroll", tokenA, map[string]interface{}{"course_name": "intro"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodPost, "/api/dashboard/enroll", tokenB, map[string]interface{}{"course_name": "intro"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetCoursesOrdering(t *testing.T) {
	app, db := setup(t)
	user, token := createUser(t, db, "a@b.com")

	older := models.UserCourse{UserID: user.ID, CourseName: "first", Status: "enrolled", EnrolledAt: time.Now().Add(-time.Hour)}
	newer := models.UserCourse{UserID: user.ID, CourseName: "second", Status: "enrolled", EnrolledAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	resp, body := doRequest(t, app, http.MethodGet, "/api/dashboard/courses", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	courses, ok := body.Data["courses"].([]interface{})
	require.True(t, ok)
	require.Len(t, courses, 2)
	first := courses[0].(map[string]interface{})
	assert.Equal(t, "second", first["course_name"])
}

func TestGetCoursesOnlyOwn(t *testing.T) {
	app, db := setup(t)
	userA, tokenA := createUser(t, db, "a@b.com")
	userB, _ := createUser(t, db, "b@b.com")

	require.NoError(t, db.Create(&models.UserCourse{UserID: userA.ID, CourseName: "mine", Status: "enrolled", EnrolledAt: time.Now()}).Error)
	require.NoError(t, db.Create(&models.UserCourse{UserID: userB.ID, CourseName: "theirs", Status: "enrolled", EnrolledAt: time.Now()}).Error)

	_, body := doRequest(t, app, http.MethodGet, "/api/dashboard/courses", tokenA, nil)
	courses := body.Data["courses"].([]interface{})
	require.Len(t, courses, 1)
	assert.Equal(t, "mine", courses[0].(map[string]interface{})["course_name"])
}

func TestUpdateProgress(t *testing.T) {
	app, db := setup(t)
	user, token := createUser(t, db, "a@b.com")

	enrollment := models.UserCourse{UserID: user.ID, CourseName: "intro", Status: "enrolled", EnrolledAt: time.Now()}
	require.NoError(t, db.Create(&enrollment).Error)
	path := "/api/dashboard/progress/" + jsonNumber(enrollment.ID)

	// out of range is rejected before any write
	resp, _ := doRequest(t, app, http.MethodPut, path, token, map[string]interface{}{"progress": 150})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodPut, path, token, map[string]interface{}{"progress": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var unchanged models.UserCourse
	require.NoError(t, db.First(&unchanged, enrollment.ID).Error)
	assert.Equal(t, 0, unchanged.Progress)

	for _, p := range []int{0, 75, 100} {
		resp, body := doRequest(t, app, http.MethodPut, path, token, map[string]interface{}{"progress": p})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, p, body.Data["progress"])
	}

	var updated models.UserCourse
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, 100, updated.Progress)
	// progress hitting 100 transitions neither status nor completed_at
	assert.Equal(t, "enrolled", updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateProgressNotOwned(t *testing.T) {
	app, db := setup(t)
	userA, _ := createUser(t, db, "a@b.com")
	_, tokenB := createUser(t, db, "b@b.com")

	enrollment := models.UserCourse{UserID: userA.ID, CourseName: "intro", Status: "enrolled", EnrolledAt: time.Now()}
	require.NoError(t, db.Create(&enrollment).Error)

	// another user's row looks exactly like a missing one
	resp, _ := doRequest(t, app, http.MethodPut, "/api/dashboard/progress/"+jsonNumber(enrollment.ID), tokenB, map[string]interface{}{"progress": 50})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var unchanged models.UserCourse
	require.NoError(t, db.First(&unchanged, enrollment.ID).Error)
	assert.Equal(t, 0, unchanged.Progress)
}

func TestUpdateProgressMissingRow(t *testing.T) {
	app, db := setup(t)
	_, token := createUser(t, db, "a@b.com")

	resp, _ := doRequest(t, app, http.MethodPut, "/api/dashboard/progress/9999", token, map[string]interface{}{"progress": 50})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStats(t *testing.T) {
	app, db := setup(t)
	user, token := createUser(t, db, "a@b.com")

	first := models.UserCourse{UserID: user.ID, CourseName: "intro", Status: "enrolled", EnrolledAt: time.Now()}
	second := models.UserCourse{UserID: user.ID, CourseName: "advanced", Status: "enrolled", EnrolledAt: time.Now()}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, db.Model(&first).Update("progress", 100).Error)
	require.NoError(t, db.Model(&second).Update("progress", 40).Error)

	resp, body := doRequest(t, app, http.MethodGet, "/api/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stats, ok := body.Data["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, stats["total_courses"])
	assert.EqualValues(t, 140, stats["total_progress"])
	assert.EqualValues(t, 1, stats["completed_courses"])
}

func TestGetStatsEmpty(t *testing.T) {
	app, db := setup(t)
	_, token := createUser(t, db, "a@b.com")

	resp, body := doRequest(t, app, http.MethodGet, "/api/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stats := body.Data["stats"].(map[string]interface{})
	assert.EqualValues(t, 0, stats["total_courses"])
	assert.EqualValues(t, 0, stats["total_progress"])
	assert.EqualValues(t, 0, stats["completed_courses"])
}

func TestUnauthorized(t *testing.T) {
	app, _ := setup(t)

	for _, token := range []string{"", "not-a-token"} {
		resp, _ := doRequest(t, app, http.MethodGet, "/api/dashboard/courses", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
