package quote_privatization

import quotePrivatization "github.com/artizaho/workshop-booking/internal/usecase/quote_privatization"

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Participants uint `json:"participants"`
}

// QuoteResponse HTTP response model, суммы в ариари
type QuoteResponse struct {
	WorkshopID          int64 `json:"workshopId"`
	Participants        uint  `json:"participants"`
	MinParticipants     uint  `json:"minParticipants"`
	MaxParticipants     uint  `json:"maxParticipants"`
	BasePrice           int64 `json:"basePrice"`
	PricePerParticipant int64 `json:"pricePerParticipant"`
	Total               int64 `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrivatization.Response) *QuoteResponse {
	return &QuoteResponse{
		WorkshopID:          resp.WorkshopID,
		Participants:        resp.Participants,
		MinParticipants:     resp.Option.MinParticipants,
		MaxParticipants:     resp.Option.MaxParticipants,
		BasePrice:           int64(resp.Option.BasePrice),
		PricePerParticipant: int64(resp.Option.PricePerParticipant),
		Total:               int64(resp.Total),
	}
}
