package controller

import (
	"context"
	"fmt"
	"log"

	"staffmis_backend/config"

	"firebase.google.com/go/messaging"
)

// SendPushNotification sends a notification to a staff member's device.
func SendPushNotification(token string, title string, body string) error {
	if config.FirebaseApp == nil {
		return fmt.Errorf("firebase is not initialized")
	}

	client, err := config.FirebaseApp.Messaging(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Messaging client: %w", err)
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Token: token,
	}

	response, err := client.Send(context.Background(), message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	log.Printf("Successfully sent notification: %s\n", response)
	return nil
}
