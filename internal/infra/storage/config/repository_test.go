package config

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/pkg/types"
)

type fakeRow struct {
	scan func(dest ...interface{}) error
}

func (r fakeRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

func TestScanConfig(t *testing.T) {
	created := time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)

	row := fakeRow{scan: func(dest ...interface{}) error {
		require.Len(t, dest, len(columns))
		*dest[0].(*int64) = 5
		*dest[1].(*int64) = 7
		*dest[2].(*sql.NullInt64) = sql.NullInt64{Int64: 42, Valid: true}
		*dest[3].(*pq.StringArray) = pq.StringArray{"09:00", "14:30"}
		*dest[4].(*uint) = 3
		*dest[5].(*uint) = 10
		*dest[6].(*pq.Int64Array) = pq.Int64Array{0}
		*dest[7].(*uint) = 1
		*dest[8].(*int) = 60
		*dest[9].(*int) = 5
		*dest[10].(*sql.NullTime) = sql.NullTime{Time: created, Valid: true}
		*dest[11].(*sql.NullTime) = sql.NullTime{Time: created, Valid: true}
		return nil
	}}

	cfg, err := scanConfig(row)
	require.NoError(t, err)

	require.NotNil(t, cfg.WorkshopID)
	assert.Equal(t, int64(42), *cfg.WorkshopID)
	assert.Equal(t, []types.TimeString{"09:00", "14:30"}, cfg.SlotTimes)
	assert.Equal(t, []time.Weekday{time.Sunday}, cfg.NonOperatingWeekdays)
	assert.Equal(t, uint(10), cfg.MaxParticipants)
	assert.Equal(t, 5, cfg.MinNoticeBusinessDays)
	assert.Equal(t, "workshop", cfg.Level())
	assert.Equal(t, created, cfg.CreatedAt)
}

func TestScanConfig_ArtisanWide(t *testing.T) {
	row := fakeRow{scan: func(dest ...interface{}) error {
		*dest[0].(*int64) = 1
		*dest[2].(*sql.NullInt64) = sql.NullInt64{}
		return nil
	}}

	cfg, err := scanConfig(row)
	require.NoError(t, err)
	assert.Nil(t, cfg.WorkshopID)
	assert.Equal(t, "artisan", cfg.Level())
	assert.Empty(t, cfg.SlotTimes)
}

func TestScanConfig_PropagatesError(t *testing.T) {
	_, err := scanConfig(fakeRow{scan: func(...interface{}) error { return sql.ErrNoRows }})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestArrays(t *testing.T) {
	assert.Equal(t, pq.StringArray{"09:00", "11:00"}, slotTimesArray([]types.TimeString{"09:00", "11:00"}))
	assert.Equal(t, pq.Int64Array{6, 0}, weekdaysArray([]time.Weekday{time.Saturday, time.Sunday}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}
