package models

import "time"

// Ticket is a mock travel booking. Price is deducted from the coin
// ledger at booking time.
type Ticket struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	Type       string    `json:"type"` // flight, train, bus, hotel
	From       string    `json:"from"`
	To         string    `json:"to"`
	Date       string    `json:"date"`
	Passengers int       `json:"passengers"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"` // booked, cancelled
	CreatedAt  time.Time `json:"createdAt"`
}
