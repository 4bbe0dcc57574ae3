package models

import "time"

// Itinerary is a travel plan with embedded destinations.
type Itinerary struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Username     string        `json:"username"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Destinations []Destination `json:"destinations"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	IsPublic     bool          `json:"isPublic"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Destination is owned exclusively by one itinerary and has no
// independent lifecycle. Date is the day-granularity form value.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}
