package authRoutes

import (
	authControllers "github.com/ehacking12/Ehacking-School-Website/controllers/auth"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	authValidators "github.com/ehacking12/Ehacking-School-Website/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authControllers.Controller, captcha middleware.CaptchaVerifier) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidators.Signup(), middleware.CaptchaGate(captcha), ctrl.Signup)
	authGroup.Post("/signin", authValidators.Signin(), middleware.CaptchaGate(captcha), ctrl.Signin)
}
