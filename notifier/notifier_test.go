package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ignis/types"
)

type fakeDirectory struct {
	phones map[string]string
	err    error
}

func (d *fakeDirectory) GetPhoneNumber(_ context.Context, userID string) (string, bool, error) {
	if d.err != nil {
		return "", false, d.err
	}
	phone, ok := d.phones[userID]
	return phone, ok, nil
}

type sentMessage struct {
	to, body string
}

type fakeSender struct {
	sent    []sentMessage
	failFor map[string]bool
}

func (s *fakeSender) SendSMS(to, body string) error {
	if s.failFor[to] {
		return errors.New("gateway rejected message")
	}
	s.sent = append(s.sent, sentMessage{to: to, body: body})
	return nil
}

func matchFor(userLabel string, radius float64, fires int) []types.Match {
	m := types.Match{Point: types.InterestPoint{Label: userLabel, RadiusKM: radius}}
	for i := 0; i < fires; i++ {
		m.Fires = append(m.Fires, types.FirePoint{Latitude: -34.6, Longitude: -58.4})
	}
	return []types.Match{m}
}

func TestNotify_OneMessagePerUser(t *testing.T) {
	dir := &fakeDirectory{phones: map[string]string{"U1": "+5491122334455"}}
	sender := &fakeSender{}
	n := &Notifier{Directory: dir, Sender: sender}

	// U1 has two matched interest points in one cycle.
	matches := map[string][]types.Match{
		"U1": append(matchFor("Casa", 10, 2), matchFor("Oficina", 5, 1)...),
	}

	sent := n.Notify(context.Background(), matches)

	assert.Equal(t, 1, sent)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+5491122334455", sender.sent[0].to)
	assert.Contains(t, sender.sent[0].body, `"Casa"`)
	assert.Contains(t, sender.sent[0].body, "3 fire(s)")
	// First label only; the second point is reflected in the count.
	assert.NotContains(t, sender.sent[0].body, "Oficina")
}

func TestNotify_LookupMissSkipsSilently(t *testing.T) {
	dir := &fakeDirectory{phones: map[string]string{}}
	sender := &fakeSender{}
	n := &Notifier{Directory: dir, Sender: sender}

	sent := n.Notify(context.Background(), map[string][]types.Match{
		"ghost": matchFor("Casa", 10, 1),
	})

	assert.Equal(t, 0, sent)
	assert.Empty(t, sender.sent)
}

func TestNotify_DispatchFailureIsolated(t *testing.T) {
	dir := &fakeDirectory{phones: map[string]string{
		"U1": "+111",
		"U2": "+222",
	}}
	sender := &fakeSender{failFor: map[string]bool{"+111": true}}
	n := &Notifier{Directory: dir, Sender: sender}

	sent := n.Notify(context.Background(), map[string][]types.Match{
		"U1": matchFor("Casa", 10, 1),
		"U2": matchFor("Campo", 10, 1),
	})

	// U1's failure must not block U2.
	assert.Equal(t, 1, sent)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "+222", sender.sent[0].to)
}

func TestNotify_DirectoryErrorIsolated(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("store down")}
	sender := &fakeSender{}
	n := &Notifier{Directory: dir, Sender: sender}

	sent := n.Notify(context.Background(), map[string][]types.Match{
		"U1": matchFor("Casa", 10, 1),
	})

	assert.Equal(t, 0, sent)
	assert.Empty(t, sender.sent)
}

type fakeLocalizer struct{ name string }

func (l *fakeLocalizer) Locality(context.Context, float64, float64) (string, error) {
	return l.name, nil
}

func TestNotify_WithLocalizer(t *testing.T) {
	dir := &fakeDirectory{phones: map[string]string{"U1": "+111"}}
	sender := &fakeSender{}
	n := &Notifier{Directory: dir, Sender: sender, Geocoder: &fakeLocalizer{name: "San Isidro"}}

	n.Notify(context.Background(), map[string][]types.Match{
		"U1": matchFor("Casa", 10, 1),
	})

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].body, "San Isidro")
}
