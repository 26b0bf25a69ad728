package authController

import (
	"errors"
	"log"

	"github.com/ehacking12/Ehacking-School-Website/database"
	"github.com/ehacking12/Ehacking-School-Website/middleware"
	"github.com/ehacking12/Ehacking-School-Website/models"
	"github.com/ehacking12/Ehacking-School-Website/utils"
	authValidator "github.com/ehacking12/Ehacking-School-Website/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Controller handles signup and signin. Dependencies are injected so tests
// can run against an in-memory database and a console mailer.
type Controller struct {
	DB        *gorm.DB
	Mailer    utils.Mailer
	JWTKey    string
	SaltRound int
}

func NewController(db *gorm.DB, mailer utils.Mailer, jwtKey string, saltRound int) *Controller {
	return &Controller{DB: db, Mailer: mailer, JWTKey: jwtKey, SaltRound: saltRound}
}

func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
	}

	// Create User; the unique constraint on email resolves races between
	// two concurrent signups with the same address.
	if err := ctrl.DB.Create(&newUser).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	token, err := middleware.GenerateJWT(ctrl.JWTKey, newUser.ID, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	// Send welcome email (fire-and-forget)
	utils.SendWelcomeEmail(ctrl.Mailer, newUser.Email, newUser.FirstName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account created successfully.", fiber.Map{
		"token": token,
		"user":  userResponse(newUser),
	})
}

func (ctrl *Controller) Signin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignin").(*authValidator.SigninRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(ctrl.JWTKey, user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed in successfully.", fiber.Map{
		"token": token,
		"user":  userResponse(user),
	})
}

// userResponse strips the password hash from the user payload
func userResponse(user models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}
}
