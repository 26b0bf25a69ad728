package contactValidator

import (
	"strings"

	"github.com/ehacking12/Ehacking-School-Website/middleware"
	authValidator "github.com/ehacking12/Ehacking-School-Website/validators/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SubmitRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Subject        string `json:"subject"`
	Category       string `json:"category"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		reqData.Email = authValidator.NormalizeEmail(reqData.Email)
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email!"
		}

		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
