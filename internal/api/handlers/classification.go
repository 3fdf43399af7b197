package handlers

import "github.com/artizaho/workshop-booking/internal/domain"

// Classification JSON представление результата проверки слота
// Заполнено только поле, соответствующее status
type Classification struct {
	Status    string `json:"status"`
	Shortfall *uint  `json:"shortfall,omitempty"`
	Remaining *uint  `json:"remaining,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// NewClassification конвертирует domain классификацию
func NewClassification(c domain.SlotClassification) Classification {
	resp := Classification{Status: string(c.Status)}

	switch c.Status {
	case domain.SlotNeedsMoreParticipants:
		shortfall := c.Shortfall
		resp.Shortfall = &shortfall
	case domain.SlotAlmostFull:
		remaining := c.Remaining
		resp.Remaining = &remaining
	case domain.SlotArtisanUnavailable:
		resp.Reason = c.Reason
	}

	return resp
}
