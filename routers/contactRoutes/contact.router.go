package contactRoutes

import (
	contactControllers "github.com/ehacking12/Ehacking-School-Website/controllers/contact"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	contactValidators "github.com/ehacking12/Ehacking-School-Website/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App, ctrl *contactControllers.Controller, captcha middleware.CaptchaVerifier) {
	app.Post("/api/contact", contactValidators.Submit(), middleware.CaptchaGate(captcha), ctrl.Submit)
}
