package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artizaho/workshop-booking/internal/domain"
)

func TestInactiveStatuses(t *testing.T) {
	statuses := inactiveStatuses()

	assert.ElementsMatch(t, []string{"cancelled_by_user", "cancelled_by_artisan", "no_show"}, statuses)
	for _, active := range domain.ActiveStatuses {
		assert.NotContains(t, statuses, string(active))
	}
}
