package db

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"go-ignis/types"
)

// FirestoreClient is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
)

// InitFirestore initializes and returns a Firestore client.
func InitFirestore() (*firestore.Client, error) {
	var err error

	clientOnce.Do(func() {
		// Decode credentials
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			log.Fatalf("Failed to decode Firestore credentials: %v", err)
		}

		// Initialize Firebase App
		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			log.Fatalf("Error initializing Firestore: %v", err)
		}

		// Get Firestore Client
		client, err = app.Firestore(context.Background())
		if err != nil {
			log.Fatalf("Error getting Firestore client: %v", err)
		}
	})

	return client, err
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// Store bundles the collection operations behind one value so the pipeline
// can take them as an interface and tests can swap in a fake.
type Store struct {
	Client *firestore.Client
}

func (s *Store) ReplaceFires(ctx context.Context, fires []types.FirePoint) error {
	return ReplaceFires(ctx, s.Client, fires)
}

func (s *Store) GetInterestPoints(ctx context.Context) ([]types.InterestPoint, error) {
	return GetInterestPoints(ctx, s.Client)
}

func (s *Store) GetPhoneNumber(ctx context.Context, userID string) (string, bool, error) {
	return GetPhoneNumber(ctx, s.Client, userID)
}
