package types

import "time"

// FirePoint is one thermal anomaly row from the VIIRS country feed, after
// numeric coercion. Unparseable numeric fields come through as NaN rather
// than failing the row.
type FirePoint struct {
	CountryID  string
	Latitude   float64
	Longitude  float64
	BrightTI4  float64
	BrightTI5  float64
	Scan       float64
	Track      float64
	AcqDate    string
	AcqTime    string
	Satellite  string
	Instrument string
	Confidence float64
	Version    string
	FRP        float64
	DayNight   string
}

// FireDoc is the shape persisted to the "fires" collection. Only the fields
// the clients actually read are stored.
type FireDoc struct {
	Lat  float64   `firestore:"lat"`
	Lng  float64   `firestore:"lng"`
	Date time.Time `firestore:"date"`
	Temp float64   `firestore:"temp"`
}

// InterestPoint is a user-registered watch location. Managed outside this
// service; the pipeline only reads them.
type InterestPoint struct {
	ID       string  `firestore:"-"` // tell firestore to ignore
	Label    string  `firestore:"label"`
	Lat      float64 `firestore:"lat"`
	Lng      float64 `firestore:"lng"`
	RadiusKM float64 `firestore:"radiusKm"`
	UserID   string  `firestore:"userId"`
}

// Match pairs an interest point with the fires that fell inside its radius
// during one cycle. Never persisted.
type Match struct {
	Point InterestPoint
	Fires []FirePoint
}
