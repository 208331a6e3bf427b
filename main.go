package main

import (
	"log"

	"github.com/joho/godotenv"

	"go-ignis/config"
	"go-ignis/cronjobs"
	"go-ignis/db"
	"go-ignis/firms"
	"go-ignis/geocode"
	"go-ignis/notifier"
	"go-ignis/pipeline"
	"go-ignis/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	store := &db.Store{Client: firestoreClient}
	feed := firms.NewClient(cfg.FirmsMapKey, cfg.FeedProduct, cfg.CountryCode, cfg.DayRange)
	sender := notifier.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)

	alerts := &notifier.Notifier{Directory: store, Sender: sender}
	if geocode.Enabled() {
		log.Println("Reverse geocoding enabled for alert bodies")
		alerts.Geocoder = geocode.ReverseGeocoder{}
	}

	p := pipeline.New(feed, store, alerts)
	runner := cronjobs.NewRunner(p)

	// Initialize cron jobs: one cycle now, then every 30 minutes.
	cronjobs.InitCronJobs(runner)

	r := routes.SetupRouter(firestoreClient, runner)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
