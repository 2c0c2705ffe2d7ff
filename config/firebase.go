package config

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// FirebaseApp is a global variable for the Firebase app instance
var FirebaseApp *firebase.App

// InitializeFirebase initializes the Firebase app used for push
// notifications. When no credentials file is present the app stays
// nil and push sends are skipped.
func InitializeFirebase() {
	credFile := os.Getenv("FIREBASE_CREDENTIALS")
	if credFile == "" {
		credFile = "config/service-account.json"
	}
	if _, err := os.Stat(credFile); err != nil {
		log.Println("Firebase credentials not found, push notifications disabled")
		return
	}

	opt := option.WithCredentialsFile(credFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	FirebaseApp = app
	log.Println("Firebase initialized successfully!")
}
