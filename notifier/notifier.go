// Package notifier turns per-user match lists into outbound SMS alerts.
package notifier

import (
	"context"
	"fmt"
	"log"
	"sort"

	"go-ignis/types"
)

// PhoneDirectory resolves a user id to a phone number. found is false when
// the user never registered one.
type PhoneDirectory interface {
	GetPhoneNumber(ctx context.Context, userID string) (phone string, found bool, err error)
}

// MessageSender is the outbound SMS channel.
type MessageSender interface {
	SendSMS(to, body string) error
}

// Localizer names the area around a coordinate. Optional; a nil Localizer
// just leaves the locality out of the message.
type Localizer interface {
	Locality(ctx context.Context, lat, lng float64) (string, error)
}

type Notifier struct {
	Directory PhoneDirectory
	Sender    MessageSender
	Geocoder  Localizer
}

// Notify sends at most one message per user for this cycle, no matter how
// many of their interest points matched. A user without a phone is skipped
// silently, and a failed send is logged without blocking the remaining
// users. Returns the number of messages handed to the sender.
func (n *Notifier) Notify(ctx context.Context, matchesByUser map[string][]types.Match) int {
	// Map order is random; sort so dispatch order is stable across cycles.
	userIDs := make([]string, 0, len(matchesByUser))
	for id := range matchesByUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	sent := 0
	for _, userID := range userIDs {
		matches := matchesByUser[userID]
		if len(matches) == 0 {
			continue
		}

		phone, found, err := n.Directory.GetPhoneNumber(ctx, userID)
		if err != nil {
			log.Printf("Error looking up phone for %s: %v", userID, err)
			continue
		}
		if !found {
			// No registered phone means no alert. Not an error.
			continue
		}

		body := n.composeBody(ctx, matches)
		if err := n.Sender.SendSMS(phone, body); err != nil {
			log.Printf("Error sending alert to %s: %v", userID, err)
			continue
		}

		log.Printf("Alert sent to user %s (%d matched interest points)", userID, len(matches))
		sent++
	}

	return sent
}

// composeBody names only the first matched interest point, as the client app
// expects a single headline location. The total count still reflects every
// match so the user knows there is more.
func (n *Notifier) composeBody(ctx context.Context, matches []types.Match) string {
	first := matches[0]

	total := 0
	for _, m := range matches {
		total += len(m.Fires)
	}

	body := fmt.Sprintf("IGNIS alert: %d fire(s) detected within %.0f km of %q.",
		total, first.Point.RadiusKM, first.Point.Label)

	if n.Geocoder != nil && len(first.Fires) > 0 {
		f := first.Fires[0]
		locality, err := n.Geocoder.Locality(ctx, f.Latitude, f.Longitude)
		if err != nil {
			log.Printf("Warning: reverse geocode failed: %v", err)
		} else if locality != "" {
			body += fmt.Sprintf(" Nearest detection: %s.", locality)
		}
	}

	return body
}
