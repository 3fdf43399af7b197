package eligibility

import (
	"time"

	"github.com/artizaho/workshop-booking/internal/domain"
)

// Catalog produces the candidate time slots of one workshop, before availability filtering.
// Slot times and capacities come from the resolved WorkshopSlotsConfig; Current comes from
// the booking ledger via occupancy snapshots registered per day.
type Catalog struct {
	workshopID int64
	config     *domain.WorkshopSlotsConfig
	index      *Index
	clock      Clock
	occupancy  map[time.Time]domain.SlotOccupancy
}

// NewCatalog builds a catalog for workshopID. A nil index blocks nothing.
func NewCatalog(workshopID int64, config *domain.WorkshopSlotsConfig, index *Index, clock Clock) *Catalog {
	if index == nil {
		index = NewIndex(nil)
	}
	return &Catalog{
		workshopID: workshopID,
		config:     config,
		index:      index,
		clock:      clock,
		occupancy:  make(map[time.Time]domain.SlotOccupancy),
	}
}

// WithOccupancy registers the participant counts of date and returns the catalog for chaining
func (c *Catalog) WithOccupancy(date time.Time, occupancy domain.SlotOccupancy) *Catalog {
	c.occupancy[domain.DateOf(date)] = occupancy
	return c
}

// SlotsFor returns the configured slots of date in configuration order.
// It is empty for another workshop and for a day the artisan blocked.
func (c *Catalog) SlotsFor(workshopID int64, date time.Time) []domain.TimeSlot {
	if workshopID != c.workshopID || c.index.IsBlocked(date) {
		return []domain.TimeSlot{}
	}

	counts := c.occupancy[domain.DateOf(date)]

	slots := make([]domain.TimeSlot, 0, len(c.config.SlotTimes))
	for _, t := range c.config.SlotTimes {
		current := counts[t]
		if current > c.config.MaxParticipants {
			current = c.config.MaxParticipants
		}
		slots = append(slots, domain.TimeSlot{
			Time: t,
			Capacity: domain.Capacity{
				Min:     c.config.MinParticipants,
				Max:     c.config.MaxParticipants,
				Current: current,
			},
		})
	}
	return slots
}

// IsDateSelectable reports whether date can be picked in the booking calendar
func (c *Catalog) IsDateSelectable(date time.Time) bool {
	return !c.IsPast(date) && !c.IsNonOperatingDay(date) && !c.index.IsBlocked(date)
}

// IsPast reports whether date is strictly before today
func (c *Catalog) IsPast(date time.Time) bool {
	return domain.DateOf(date).Before(domain.DateOf(c.clock.Now()))
}

// IsNonOperatingDay reports whether date falls on a configured closed weekday
func (c *Catalog) IsNonOperatingDay(date time.Time) bool {
	return !c.config.IsOperatingDay(date)
}

// IsBlocked reports whether the artisan blocked date
func (c *Catalog) IsBlocked(date time.Time) bool {
	return c.index.IsBlocked(date)
}
