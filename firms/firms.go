// Package firms fetches the NASA FIRMS VIIRS country CSV feed and turns it
// into typed fire points.
package firms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-ignis/csvparse"
	"go-ignis/types"
)

var (
	// ErrFeedUnavailable covers network failures and non-200 responses.
	ErrFeedUnavailable = errors.New("firms: feed unavailable")
	// ErrBadFeedFormat covers responses that are not the expected CSV.
	ErrBadFeedFormat = errors.New("firms: bad feed format")
)

const defaultBaseURL = "https://firms.modaps.eosdis.nasa.gov/api/country/csv"

// Client fetches fire detections for one country. One GET per FetchFires
// call, no internal retry; retrying a failed cycle is the scheduler's job.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mapKey     string
	product    string
	country    string
	dayRange   int
}

func NewClient(mapKey, product, country string, dayRange int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		mapKey:     mapKey,
		product:    product,
		country:    country,
		dayRange:   dayRange,
	}
}

// SetBaseURL overrides the FIRMS endpoint. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// FetchFires downloads the detections for the given acquisition date.
func (c *Client) FetchFires(ctx context.Context, date time.Time) ([]types.FirePoint, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%d/%s",
		c.baseURL, c.mapKey, c.product, c.country, c.dayRange,
		date.UTC().Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	fires, err := decodeFires(string(body))
	if err != nil {
		return nil, err
	}

	log.Printf("FIRMS: fetched %d fire points for %s", len(fires), c.country)
	return fires, nil
}

// decodeFires applies the FirePoint schema on top of the raw CSV records.
func decodeFires(body string) ([]types.FirePoint, error) {
	records := csvparse.Decode(body)

	// FIRMS returns plain-text error messages (wrong key, bad date) with
	// status 200, so a missing latitude column is the format check.
	if !strings.Contains(firstLine(body), "latitude") {
		return nil, fmt.Errorf("%w: %q", ErrBadFeedFormat, firstLine(body))
	}

	var fires []types.FirePoint
	for _, rec := range records {
		// The feed ends with a newline, which decodes to an empty record.
		if rec["latitude"] == "" {
			continue
		}
		fires = append(fires, types.FirePoint{
			CountryID:  rec["country_id"],
			Latitude:   parseFloat(rec["latitude"]),
			Longitude:  parseFloat(rec["longitude"]),
			BrightTI4:  parseFloat(rec["bright_ti4"]),
			BrightTI5:  parseFloat(rec["bright_ti5"]),
			Scan:       parseFloat(rec["scan"]),
			Track:      parseFloat(rec["track"]),
			AcqDate:    rec["acq_date"],
			AcqTime:    rec["acq_time"],
			Satellite:  rec["satellite"],
			Instrument: rec["instrument"],
			Confidence: parseFloat(rec["confidence"]),
			Version:    rec["version"],
			FRP:        parseFloat(rec["frp"]),
			DayNight:   rec["daynight"],
		})
	}
	return fires, nil
}

// parseFloat mirrors the feed contract: numbers arrive as text, and an
// unparseable value becomes NaN rather than dropping the row.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimRight(s[:i], "\r")
	}
	return s
}
