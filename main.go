package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"ticketing-webapp/config"
	"ticketing-webapp/database"
	"ticketing-webapp/handlers"
	"ticketing-webapp/notify"
	"ticketing-webapp/router"
	"ticketing-webapp/storage"
)

func main() {
	godotenv.Load()
	rand.Seed(time.Now().UnixNano())

	connString, err := config.GetSecret("MONGODB_CONNSTRING")
	if err != nil {
		log.Fatal("cannot find connection string for DB in the environment")
	}
	db, err := database.Connect(connString, config.GetEnv("DB_NAME", config.DEFAULT_DB_NAME))
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	cloudinaryURL, err := config.GetSecret("CLOUDINARY_URL")
	if err != nil {
		log.Fatal("cannot find media store credentials in the environment")
	}
	media, err := storage.NewCloudinaryStore(cloudinaryURL)
	if err != nil {
		log.Fatalf("media store init failed: %v", err)
	}

	secret, err := config.GetSecret("SIGN")
	if err != nil {
		log.Fatal("cannot find JWT signing secret in the environment")
	}

	h := handlers.New(
		database.NewEventRepo(db),
		database.NewBookingRepo(db),
		database.NewUserRepo(db),
		media,
		notify.NewSMTPSender(notify.SMTPConfigFromEnv()),
		secret,
		config.VerifyBaseURL(),
	)

	app := fiber.New()
	router.SetupRoutes(app, h, router.Config{
		JWTSecret:      secret,
		AllowedOrigins: config.AllowedOrigins(),
		StaticDir:      config.GetEnv("STATIC_DIR", config.DEFAULT_STATIC_DIR),
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8080")))
}
