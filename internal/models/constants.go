package models

const (
	QueryStatusOpen     = "open"
	QueryStatusResolved = "resolved"
)

const (
	TicketStatusBooked    = "booked"
	TicketStatusCancelled = "cancelled"
)

const (
	TicketFlight = "flight"
	TicketTrain  = "train"
	TicketBus    = "bus"
	TicketHotel  = "hotel"
)

const (
	// SessionTTLDays срок жизни сессии
	SessionTTLDays = 7

	// RewardBlogCreated награда за публикацию блога
	RewardBlogCreated = 20

	// RewardBlogComment награда за комментарий к блогу
	RewardBlogComment = 5

	// RewardItineraryCreated награда за созданный маршрут
	RewardItineraryCreated = 15

	// RewardQueryCreated награда за заданный вопрос
	RewardQueryCreated = 5

	// RewardQueryResponse награда за ответ на вопрос
	RewardQueryResponse = 10

	// LoginRateLimit количество попыток входа в окне
	LoginRateLimit = 10

	// LoginRateWindow окно ограничения попыток входа в секундах
	LoginRateWindow = 60
)
