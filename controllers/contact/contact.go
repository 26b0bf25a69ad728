package contactController

import (
	"log"

	"github.com/ehacking12/Ehacking-School-Website/middleware"
	"github.com/ehacking12/Ehacking-School-Website/models"
	"github.com/ehacking12/Ehacking-School-Website/utils"
	contactValidator "github.com/ehacking12/Ehacking-School-Website/validators/contact"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Controller struct {
	DB         *gorm.DB
	Mailer     utils.Mailer
	AdminEmail string
}

func NewController(db *gorm.DB, mailer utils.Mailer, adminEmail string) *Controller {
	return &Controller{DB: db, Mailer: mailer, AdminEmail: adminEmail}
}

// Submit persists the contact form and fires the two notification emails.
// Email delivery never affects the response; the submission is already
// committed by the time the sends start.
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	contact := models.Contact{
		Reference: uuid.NewString(),
		Name:      reqData.Name,
		Email:     reqData.Email,
		Phone:     reqData.Phone,
		Subject:   reqData.Subject,
		Category:  reqData.Category,
		Message:   reqData.Message,
		Status:    "new",
	}

	if err := ctrl.DB.Create(&contact).Error; err != nil {
		log.Printf("Error saving contact to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error saving contact!", nil)
	}

	// Confirmation to the submitter, alert to the admin (fire-and-forget)
	utils.SendContactConfirmationEmail(ctrl.Mailer, contact.Email, contact.Name, contact.Message, contact.Reference)
	utils.SendContactAlertEmail(ctrl.Mailer, ctrl.AdminEmail, contact.Name, contact.Email, contact.Phone, contact.Category, contact.Subject, contact.Message, contact.Reference)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact form submitted successfully. We'll respond within 24 hours.", fiber.Map{
		"id":        contact.ID,
		"reference": contact.Reference,
	})
}
