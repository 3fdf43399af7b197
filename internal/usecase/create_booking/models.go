package create_booking

import (
	"time"

	"github.com/artizaho/workshop-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64            `validate:"gt=0"`                // ID участника
	WorkshopID   int64            `validate:"gt=0"`                // ID мастер-класса
	Date         time.Time        `validate:"required"`            // Дата бронирования (без времени)
	StartTime    types.TimeString `validate:"required,timestring"` // Время слота (например, "14:00")
	Participants uint             `validate:"min=1,max=50"`        // Размер группы, до domain.MaxParticipantsLimit
	IsPrivate    bool                                              // Приватная сессия
	Notes        *string          `validate:"omitempty,max=500"`   // Дополнительные заметки, до domain.MaxNotesLength
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       int64
	WorkshopID   int64
	ArtisanID    int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Participants uint
	IsPrivate    bool
	Status       string

	// Денормализованные данные
	WorkshopTitle string
	TotalPrice    int64  // В ариари
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
