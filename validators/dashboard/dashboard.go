package dashboardValidator

import (
	"strings"

	"github.com/ehacking12/Ehacking-School-Website/middleware"

	"github.com/gofiber/fiber/v2"
)

type EnrollRequest struct {
	CourseName string `json:"course_name"`
}

type ProgressRequest struct {
	Progress *int `json:"progress"`
}

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.CourseName = strings.TrimSpace(reqData.CourseName)
		if reqData.CourseName == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_name": "Course name is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// UpdateProgress validator middleware. Rejects out-of-range values before
// any write happens.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("courseId")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Progress == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"progress": "Progress is required!",
			})
		}
		if *reqData.Progress < 0 || *reqData.Progress > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Progress must be between 0-100", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
