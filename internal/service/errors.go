package service

import "errors"

var (
	// ErrEmailTaken is returned by Signup when the email is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned by Login when no account matches the email.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRateLimited is returned by Login when the per-email attempt budget is spent.
	ErrRateLimited = errors.New("too many login attempts")

	// ErrInsufficientCoins is returned by Book when the ticket price exceeds the balance.
	ErrInsufficientCoins = errors.New("insufficient coins")

	// ErrQueryNotOpen is returned by Resolve on an already resolved query.
	ErrQueryNotOpen = errors.New("query is not open")

	// ErrTicketNotBooked is returned by Cancel on a ticket that is not in booked state.
	ErrTicketNotBooked = errors.New("ticket is not booked")

	// ErrNotFound is returned when a service-level lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrEmptyContent is returned when a required text field is blank.
	ErrEmptyContent = errors.New("content is required")
)
