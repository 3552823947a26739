// Package arcstats loads Arc Timeline app exports (JSON files of places and
// timeline items) and derives location statistics from them. Arc records
// timestamps as Apple NSTimeIntervals: float seconds since 2001-01-01 UTC.
package arcstats

import "time"

// Metadata describes an Arc export as a whole (metadata.json).
type Metadata struct {
	SamplesCompleted  bool        `json:"samplesCompleted"`
	ExportMode        string      `json:"exportMode"`
	SessionStartDate  float64     `json:"sessionStartDate"`
	ItemsCompleted    bool        `json:"itemsCompleted"`
	ExportType        string      `json:"exportType"`
	SessionFinishDate float64     `json:"sessionFinishDate"`
	Stats             ExportStats `json:"stats"`
	SchemaVersion     string      `json:"schemaVersion"`
	PlacesCompleted   bool        `json:"placesCompleted"`
}

// ExportStats holds the item counts declared in metadata.json.
type ExportStats struct {
	SampleCount int `json:"sampleCount"`
	ItemCount   int `json:"itemCount"`
	PlaceCount  int `json:"placeCount"`
}

// Place is a named location the user has visited.
type Place struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	RadiusMean    float64 `json:"radiusMean"`
	RadiusSD      float64 `json:"radiusSD"`
	VisitCount    int     `json:"visitCount"`
	VisitDays     int     `json:"visitDays"`
	LastSaved     float64 `json:"lastSaved"`
	IsStale       bool    `json:"isStale"`
	Source        string  `json:"source"`
	StreetAddress string  `json:"streetAddress,omitempty"`
	Locality      string  `json:"locality,omitempty"`
	CountryCode   string  `json:"countryCode,omitempty"`
	LastVisitDate float64 `json:"lastVisitDate,omitempty"`
}

// Item is a timeline entry: either a visit to a place or a trip between
// places. On the wire each item is an object with a "base" sub-object of
// common fields plus a "visit" or "trip" sub-object of variant fields.
type Item struct {
	Base  BaseItem      `json:"base"`
	Visit *VisitDetails `json:"visit,omitempty"`
	Trip  *TripDetails  `json:"trip,omitempty"`
}

// BaseItem holds the fields common to visits and trips.
type BaseItem struct {
	ID             string  `json:"id"`
	StartDate      float64 `json:"startDate"`
	EndDate        float64 `json:"endDate"`
	LastSaved      float64 `json:"lastSaved"`
	Source         string  `json:"source"`
	IsVisit        bool    `json:"isVisit"`
	Deleted        bool    `json:"deleted"`
	Disabled       bool    `json:"disabled"`
	StepCount      int     `json:"stepCount,omitempty"`
	PreviousItemID string  `json:"previousItemId,omitempty"`
	NextItemID     string  `json:"nextItemId,omitempty"`
}

// VisitDetails holds the fields specific to visit items.
type VisitDetails struct {
	ItemID         string  `json:"itemId"`
	PlaceID        string  `json:"placeId,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	RadiusMean     float64 `json:"radiusMean"`
	RadiusSD       float64 `json:"radiusSD"`
	ConfirmedPlace bool    `json:"confirmedPlace"`
	UncertainPlace bool    `json:"uncertainPlace"`
	LastSaved      float64 `json:"lastSaved"`
	StreetAddress  string  `json:"streetAddress,omitempty"`
}

// TripDetails holds the fields specific to trip items.
type TripDetails struct {
	ItemID                string  `json:"itemId"`
	Distance              float64 `json:"distance"`
	Speed                 float64 `json:"speed"`
	UncertainActivityType bool    `json:"uncertainActivityType"`
	LastSaved             float64 `json:"lastSaved"`
}

// ItemWithPlace pairs a timeline item with its resolved place, when the item
// is a visit to a known place.
type ItemWithPlace struct {
	Item  Item
	Place *Place
}

// appleEpoch is 2001-01-01 00:00:00 UTC, the reference date for Arc's
// timestamps.
var appleEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// AppleTimestampToTime converts an Apple NSTimeInterval to a time.Time.
func AppleTimestampToTime(ts float64) time.Time {
	return appleEpoch.Add(time.Duration(ts * float64(time.Second)))
}

// IsVisit reports whether the item carries visit details.
func (i *Item) IsVisit() bool {
	return i.Visit != nil
}

// PlaceID returns the visit's place ID, or "" for trips and visits to
// unresolved places.
func (i *Item) PlaceID() string {
	if i.Visit == nil {
		return ""
	}
	return i.Visit.PlaceID
}

// StartTime returns the item's start as a time.Time.
func (i *Item) StartTime() time.Time {
	return AppleTimestampToTime(i.Base.StartDate)
}

// EndTime returns the item's end as a time.Time.
func (i *Item) EndTime() time.Time {
	return AppleTimestampToTime(i.Base.EndDate)
}

// DurationSeconds returns how long the item lasted.
func (i *Item) DurationSeconds() float64 {
	return i.Base.EndDate - i.Base.StartDate
}
