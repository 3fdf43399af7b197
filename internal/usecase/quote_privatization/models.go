package quote_privatization

import "github.com/artizaho/workshop-booking/internal/domain"

// Request модель запроса расчета приватизации
type Request struct {
	WorkshopID   int64
	Participants uint
}

// Response стоимость приватной сессии
type Response struct {
	WorkshopID   int64
	Participants uint
	Option       domain.PrivatizationOption
	Total        domain.Ariary
}
