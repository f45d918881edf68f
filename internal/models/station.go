package models

// Station is a fishing port the upstream service reports tides for,
// identified by a short code (e.g. "TK" for 東京).
type Station struct {
	Code   string
	Name   string
	Region string
}
