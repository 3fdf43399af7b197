package evaluate_booking

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// Request модель запроса на проверку бронирования
type Request struct {
	WorkshopID int64     `validate:"gt=0"`
	Date       time.Time `validate:"required"` // Дата (без времени)
	// nil - проверка всего дня, приватная сессия требует время
	Time         *types.TimeString `validate:"required_if=IsPrivate true,omitempty,timestring"`
	Participants uint              `validate:"min=1,max=50"`
	IsPrivate    bool
}

// Response результат проверки
type Response struct {
	WorkshopID     int64
	Date           time.Time
	Time           *types.TimeString
	Classification domain.SlotClassification
	Panel          domain.BookingPanel  // Какую панель показать в интерфейсе
	ClosedReason   string               // Код причины для панели closed
	Slot           *domain.TimeSlot     // Слот запроса, если время указано
	Fits           bool                 // Группа помещается в слот и его можно забронировать
	Price          *domain.Ariary       // Итоговая цена для участников
}
