package main

import (
	"log"

	"github.com/ehacking12/Ehacking-School-Website/config"
	authControllers "github.com/ehacking12/Ehacking-School-Website/controllers/auth"
	contactControllers "github.com/ehacking12/Ehacking-School-Website/controllers/contact"
	dashboardControllers "github.com/ehacking12/Ehacking-School-Website/controllers/dashboard"
	"github.com/ehacking12/Ehacking-School-Website/database"
	authRoutes "github.com/ehacking12/Ehacking-School-Website/routers/authRoutes"
	contactRoutes "github.com/ehacking12/Ehacking-School-Website/routers/contactRoutes"
	dashboardRoutes "github.com/ehacking12/Ehacking-School-Website/routers/dashboardRoutes"
	"github.com/ehacking12/Ehacking-School-Website/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()
	db := database.ConnectDb(cfg.DBName)

	var mailer utils.Mailer
	if cfg.SendgridApiKey != "" {
		mailer = utils.NewSendgridMailer(cfg.SendgridApiKey, cfg.EmailSender)
	} else {
		mailer = &utils.ConsoleMailer{}
	}

	captcha := utils.NewRecaptchaVerifier(cfg.RecaptchaSecretKey)

	authCtrl := authControllers.NewController(db, mailer, cfg.JWTKey, cfg.SaltRound)
	contactCtrl := contactControllers.NewController(db, mailer, cfg.AdminEmail)
	dashboardCtrl := dashboardControllers.NewController(db)

	app := fiber.New()

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtrl, captcha)
	contactRoutes.SetupContactRoutes(app, contactCtrl, captcha)
	dashboardRoutes.SetupDashboardRoutes(app, dashboardCtrl, cfg.JWTKey)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  true,
			"message": "Backend is running",
		})
	})

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
