package dashboardRoutes

import (
	dashboardControllers "github.com/ehacking12/Ehacking-School-Website/controllers/dashboard"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	dashboardValidators "github.com/ehacking12/Ehacking-School-Website/validators/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, ctrl *dashboardControllers.Controller, jwtKey string) {
	dashboardGroup := app.Group("/api/dashboard", middleware.JWTMiddleware(jwtKey))

	dashboardGroup.Get("/courses", ctrl.GetCourses)
	dashboardGroup.Post("/enroll", dashboardValidators.Enroll(), ctrl.Enroll)
	dashboardGroup.Put("/progress/:courseId", dashboardValidators.UpdateProgress(), ctrl.UpdateProgress)
	dashboardGroup.Get("/stats", ctrl.GetStats)
}
