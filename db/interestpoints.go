package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-ignis/types"
)

const (
	interestPointsCollection = "interestPoints"
	phonesCollection         = "phones"
)

// phoneDoc is the shape of a document in the phones collection, keyed by
// user id.
type phoneDoc struct {
	Phone string `firestore:"phone"`
}

// GetInterestPoints reads every registered interest point. They are managed
// by the client app; the pipeline never writes them.
func GetInterestPoints(ctx context.Context, client *firestore.Client) ([]types.InterestPoint, error) {
	docs, err := client.Collection(interestPointsCollection).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("reading interest points: %w", err)
	}

	var points []types.InterestPoint
	for _, doc := range docs {
		var p types.InterestPoint
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decoding interest point %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		points = append(points, p)
	}

	return points, nil
}

// GetPhoneNumber looks up a user's phone. A missing document is not an
// error: it means the user never registered a phone, and the caller skips
// the notification.
func GetPhoneNumber(ctx context.Context, client *firestore.Client, userID string) (string, bool, error) {
	doc, err := client.Collection(phonesCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading phone for %s: %w", userID, err)
	}

	var pd phoneDoc
	if err := doc.DataTo(&pd); err != nil {
		return "", false, fmt.Errorf("decoding phone doc for %s: %w", userID, err)
	}

	return pd.Phone, pd.Phone != "", nil
}
