package main

import (
	"log"
	"os"

	"github.com/Tufail-188/SkinAI-Hub/authentication"
	"github.com/Tufail-188/SkinAI-Hub/classifier"
	"github.com/Tufail-188/SkinAI-Hub/configuration"
	"github.com/Tufail-188/SkinAI-Hub/controllers"
	"github.com/Tufail-188/SkinAI-Hub/notification"
	"github.com/Tufail-188/SkinAI-Hub/payment"
	"github.com/Tufail-188/SkinAI-Hub/routes"
	"github.com/Tufail-188/SkinAI-Hub/storage"
)

func main() {
	cfg := configuration.Load()

	db, err := configuration.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to the database: ", err)
	}

	redisClient, err := configuration.InitRedis(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// The artifact is loaded once and shared read-only by every request.
	// A missing artifact is reported here, not as a crash later.
	scorer, inputSize, err := classifier.LoadModel(cfg.ModelPath)
	if err != nil {
		log.Println("classifier artifact not loaded, predictions disabled:", err)
		inputSize = classifier.DefaultInputSize
	}
	pipeline := classifier.NewPipeline(scorer, inputSize)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("failed to create upload directory: ", err)
	}

	users := storage.NewUserStore(db)
	appointments := storage.NewAppointmentStore(db)
	sessions := authentication.NewSessionStore(redisClient, cfg.SessionTTL)
	auth := authentication.NewService(users, sessions, cfg.SessionSecret, cfg.SessionTTL)

	payments := payment.NewService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	if !payments.Configured() {
		log.Println("payment provider not configured, bookings will be free of charge")
	}

	sender := notification.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUsername, cfg.MailPassword)

	ctrl := routes.Controllers{
		Users:       controllers.NewUserController(auth, int(cfg.SessionTTL.Seconds())),
		Predictions: controllers.NewPredictionController(pipeline, cfg.UploadDir),
		Payments:    controllers.NewPaymentController(payments),
		Bookings:    controllers.NewBookingController(appointments, payments, sender),
		Admin:       controllers.NewAdminController(appointments, users),
	}

	r := routes.SetupRouter(auth, ctrl, cfg.UploadDir)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
