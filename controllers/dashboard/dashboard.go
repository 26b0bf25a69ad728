package dashboardController

import (
	"log"
	"time"

	"github.com/ehacking12/Ehacking-School-Website/database"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	"github.com/ehacking12/Ehacking-School-Website/models"
	dashboardValidator "github.com/ehacking12/Ehacking-School-Website/validators/dashboard"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{DB: db}
}

// GetCourses lists the user's enrollments, most recently enrolled first.
func (ctrl *Controller) GetCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courses := []models.UserCourse{}
	if err := ctrl.DB.Where("user_id = ?", userID).Order("enrolled_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses": courses,
	})
}

// Enroll creates the (user, course) ledger row. The composite unique index
// resolves races between two identical enroll requests; the violation is
// mapped to a conflict here.
func (ctrl *Controller) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*dashboardValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment := models.UserCourse{
		UserID:     userID,
		CourseName: reqData.CourseName,
		Status:     "enrolled",
		EnrolledAt: time.Now(),
	}

	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		log.Printf("Error enrolling in course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error enrolling in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully.", fiber.Map{
		"course_id": enrollment.ID,
	})
}

// UpdateProgress writes a validated progress value. The update is scoped by
// both enrollment id and user id; zero affected rows means "not found",
// whether the row is missing or belongs to someone else. Callers cannot
// tell the two apart.
func (ctrl *Controller) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedProgress").(*dashboardValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	progress := *reqData.Progress

	tx := ctrl.DB.Model(&models.UserCourse{}).
		Where("id = ? AND user_id = ?", courseID, userID).
		Update("progress", progress)
	if tx.Error != nil {
		log.Printf("Error updating progress: %v", tx.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating progress!", nil)
	}
	if tx.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated.", fiber.Map{
		"progress": progress,
	})
}

type userStats struct {
	TotalCourses     int64 `json:"total_courses"`
	TotalProgress    int64 `json:"total_progress"`
	CompletedCourses int64 `json:"completed_courses"`
}

// GetStats recomputes the aggregate on every call. A course counts as
// completed only at exactly 100 percent.
func (ctrl *Controller) GetStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var stats userStats
	err := ctrl.DB.Model(&models.UserCourse{}).
		Select("COUNT(*) as total_courses, COALESCE(SUM(progress), 0) as total_progress, COALESCE(SUM(CASE WHEN progress = 100 THEN 1 ELSE 0 END), 0) as completed_courses").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully.", fiber.Map{
		"stats": stats,
	})
}
