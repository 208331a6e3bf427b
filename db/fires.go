package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-ignis/types"
)

const firesCollection = "fires"

// ReplaceFires swaps the whole fires collection for the new detection set in
// a single transaction: every existing document is deleted and every new
// fire inserted, so a reader never observes a mix of two cycles. If anything
// fails the transaction aborts and the previous generation stays intact.
func ReplaceFires(ctx context.Context, client *firestore.Client, fires []types.FirePoint) error {
	collRef := client.Collection(firesCollection)

	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// Reads must happen before any write in a Firestore transaction.
		refs, err := tx.DocumentRefs(collRef).GetAll()
		if err != nil {
			return fmt.Errorf("listing existing fires: %w", err)
		}

		for _, ref := range refs {
			if err := tx.Delete(ref); err != nil {
				return fmt.Errorf("deleting fire %s: %w", ref.ID, err)
			}
		}

		for _, f := range fires {
			if err := tx.Create(collRef.NewDoc(), toFireDoc(f)); err != nil {
				return fmt.Errorf("inserting fire: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("replacing fires collection: %w", err)
	}

	log.Printf("Fires saved! Collection '%s' now holds %d documents", firesCollection, len(fires))
	return nil
}

// GetFires reads the current fire set. Used by the HTTP surface, not by the
// pipeline, which matches against the in-memory fetched set.
func GetFires(ctx context.Context, client *firestore.Client) ([]types.FireDoc, error) {
	var fires []types.FireDoc

	iter := client.Collection(firesCollection).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating fires: %w", err)
		}

		var fd types.FireDoc
		if err := doc.DataTo(&fd); err != nil {
			return nil, fmt.Errorf("decoding fire doc %s: %w", doc.Ref.ID, err)
		}
		fires = append(fires, fd)
	}

	return fires, nil
}

func toFireDoc(f types.FirePoint) types.FireDoc {
	// The feed's acq_date is yyyy-mm-dd; a malformed one stores the zero time.
	date, err := time.Parse("2006-01-02", f.AcqDate)
	if err != nil {
		log.Printf("Warning: unparseable acq_date %q", f.AcqDate)
	}
	return types.FireDoc{
		Lat:  f.Latitude,
		Lng:  f.Longitude,
		Date: date,
		Temp: f.BrightTI4,
	}
}
