package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wearsaintpaul/admin-backend-go/config"
	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/handlers"
	"github.com/wearsaintpaul/admin-backend-go/mailer"
	customMiddleware "github.com/wearsaintpaul/admin-backend-go/middleware"
	"github.com/wearsaintpaul/admin-backend-go/routes"
	"github.com/wearsaintpaul/admin-backend-go/services"
)

func main() {
	config.LoadEnv()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(customMiddleware.Metrics)

	store, err := database.Connect(
		config.GetEnv("MONGODB_URI", "mongodb://localhost:27017"),
		config.GetEnv("MONGODB_DB", "saintpaul"),
	)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	userService := services.NewUserService(store)

	var m *mailer.Mailer
	if host := config.GetEnv("SMTP_HOST", ""); host != "" {
		m = mailer.New(mailer.Options{
			Host:     host,
			Port:     config.GetEnvInt("SMTP_PORT", 587),
			Username: config.GetEnv("SMTP_USER", ""),
			Password: config.GetEnv("SMTP_PASS", ""),
			From:     config.GetEnv("EMAIL_FROM", ""),
		}, store)
	} else {
		log.Println("SMTP not configured, newsletter sending disabled")
	}

	h := handlers.New(store, userService, m)
	routes.SetupRoutes(e, h)

	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
