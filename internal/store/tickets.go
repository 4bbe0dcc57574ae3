package store

import (
	"context"

	"wayfarer/internal/models"
)

func (s *Store) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.tickets.list(ctx)
}

func (s *Store) AddTicket(ctx context.Context, ticket models.Ticket) error {
	return s.tickets.prepend(ctx, ticket)
}

// SetTicketStatus overwrites the status field unconditionally; the
// booked→cancelled transition is enforced by the ticket service.
func (s *Store) SetTicketStatus(ctx context.Context, ticketID, status string) error {
	return s.tickets.update(ctx, func(tickets []models.Ticket) []models.Ticket {
		for i := range tickets {
			if tickets[i].ID == ticketID {
				tickets[i].Status = status
				break
			}
		}
		return tickets
	})
}
