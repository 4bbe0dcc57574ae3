package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wayfarer/internal/domain"
	"wayfarer/internal/events"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
)

type TicketService struct {
	rewarder
}

func NewTicketService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *TicketService {
	return &TicketService{rewarder{repo: repo, eventBus: eventBus, logger: logger}}
}

// BookingRequest carries the form fields for a new ticket.
type BookingRequest struct {
	Type       string
	From       string
	To         string
	Date       string
	Passengers int
	Price      int64
}

func (s *TicketService) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.repo.ListTickets(ctx)
}

// Book checks the coin balance before any write: on insufficient funds
// no ticket row and no ledger entry are created. On success the ticket
// is added first, then the price is debited; the two writes are not
// transactional.
func (s *TicketService) Book(ctx context.Context, user models.User, req BookingRequest) (*models.Ticket, error) {
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	if req.From == "" || req.To == "" || req.Date == "" {
		return nil, ErrEmptyContent
	}

	balance, err := s.repo.UserCoinBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if balance < req.Price {
		return nil, ErrInsufficientCoins
	}

	ticket := models.Ticket{
		ID:         models.NewID("ticket"),
		UserID:     user.ID,
		Username:   user.Username,
		Type:       req.Type,
		From:       req.From,
		To:         req.To,
		Date:       req.Date,
		Passengers: req.Passengers,
		Price:      req.Price,
		Status:     models.TicketStatusBooked,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.AddTicket(ctx, ticket); err != nil {
		return nil, err
	}

	if err := s.award(ctx, user.ID, -req.Price, fmt.Sprintf("%s ticket booked", req.Type)); err != nil {
		return nil, err
	}

	s.publish(events.EventTicketBooked, events.TicketEventPayload{
		TicketID: ticket.ID,
		UserID:   user.ID,
		Type:     ticket.Type,
		Price:    ticket.Price,
		Status:   ticket.Status,
	})

	return &ticket, nil
}

// Cancel moves a booked ticket to cancelled and credits the price
// back to the owner's ledger.
func (s *TicketService) Cancel(ctx context.Context, ticketID string) error {
	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		return err
	}

	for _, ticket := range tickets {
		if ticket.ID != ticketID {
			continue
		}
		if ticket.Status != models.TicketStatusBooked {
			return ErrTicketNotBooked
		}
		if err := s.repo.SetTicketStatus(ctx, ticketID, models.TicketStatusCancelled); err != nil {
			return err
		}
		if err := s.award(ctx, ticket.UserID, ticket.Price, fmt.Sprintf("%s ticket cancelled", ticket.Type)); err != nil {
			return err
		}
		s.publish(events.EventTicketCancelled, events.TicketEventPayload{
			TicketID: ticket.ID,
			UserID:   ticket.UserID,
			Type:     ticket.Type,
			Price:    ticket.Price,
			Status:   models.TicketStatusCancelled,
		})
		return nil
	}

	return ErrNotFound
}

// Balance exposes the derived coin balance for a user.
func (s *TicketService) Balance(ctx context.Context, userID string) (int64, error) {
	return s.repo.UserCoinBalance(ctx, userID)
}
