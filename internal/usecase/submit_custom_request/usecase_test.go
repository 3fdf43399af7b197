package submit_custom_request

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	"github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
	"github.com/artizaho/workshop-booking/pkg/ptr"
	"github.com/artizaho/workshop-booking/pkg/types"
)

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, workshopID int64, from, to time.Time) (*calendar.Calendar, error) {
	args := m.Called(ctx, workshopID, from, to)
	c, _ := args.Get(0).(*calendar.Calendar)
	return c, args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

// Create возвращает переданную заявку с присвоенным ID, как это делает репозиторий
func (m *mockRequestRepo) Create(ctx context.Context, req *domain.CustomBookingRequest) (*domain.CustomBookingRequest, error) {
	args := m.Called(ctx, req)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	req.ID = uuid.New()
	return req, nil
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveCustomRequest(hasConflict bool) {
	m.Called(hasConflict)
}

type stubCatalog struct {
	workshop *catalogservice.Workshop
}

func (s stubCatalog) GetPublishedWorkshop(context.Context, int64) (*catalogservice.Workshop, error) {
	return s.workshop, nil
}

type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, artisanID, workshopID int64, maxParticipants uint) (*domain.WorkshopSlotsConfig, error) {
	return domain.DefaultPlatformPolicy().ConfigFor(artisanID, workshopID, maxParticipants), nil
}

// windowedIndexer отдает только периоды, пересекающие [from, to], как выборка из БД
type windowedIndexer struct {
	periods []domain.UnavailabilityPeriod
}

func (w windowedIndexer) BlockingIndex(_ context.Context, _ int64, from, to time.Time) (*eligibility.Index, error) {
	var inWindow []domain.UnavailabilityPeriod
	for _, p := range w.periods {
		end := p.StartDate
		if p.EndDate != nil {
			end = *p.EndDate
		}
		if !end.Before(from) && !p.StartDate.After(to) {
			inWindow = append(inWindow, p)
		}
	}
	return eligibility.NewIndex(inWindow), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday
var now = time.Date(2026, 8, 10, 16, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func newCalendar(periods ...domain.UnavailabilityPeriod) *calendar.Calendar {
	config := domain.DefaultPlatformPolicy().ConfigFor(42, 10, 8)
	index := eligibility.NewIndex(periods)

	return &calendar.Calendar{
		Workshop: &catalogservice.Workshop{
			ID: 10, ArtisanID: 42, Title: "Poterie", BasePrice: 50000, MaxParticipants: 8, Status: "published",
			PrivatizationEnabled: true,
			PrivatizationOptions: &catalogservice.PrivatizationOptions{
				MinParticipants: 4, MaxParticipants: 15, BasePrice: 150000, PricePerParticipant: 40000,
			},
		},
		Config:  config,
		Index:   index,
		Catalog: eligibility.NewCatalog(10, config, index, eligibility.FixedClock{At: now}),
		Policy:  eligibility.NewPolicy(config.AlmostFullThreshold),
		Today:   domain.DateOf(now),
	}
}

func baseRequest() *Request {
	return &Request{
		UserID:        7,
		WorkshopID:    10,
		PreferredDate: day(20),
		PreferredTime: ptr.Ptr(types.TimeString("10:30")),
		Participants:  12,
		ContactEmail:  "hery@example.mg",
		Message:       ptr.Ptr("Sortie d'équipe"),
	}
}

func TestExecute_NoConflict(t *testing.T) {
	ctx := context.Background()
	loader := new(mockLoader)
	loader.On("Load", ctx, int64(10), day(20), day(20)).Return(newCalendar(), nil)
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.MatchedBy(func(r *domain.CustomBookingRequest) bool {
		return r.Status == domain.CustomRequestPending && !r.HasConflict && r.EstimatedPrice == nil
	})).Return(nil, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveCustomRequest", false).Return()

	resp, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, baseRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.False(t, resp.HasConflict)
	metrics.AssertExpectations(t)
}

func TestExecute_ConflictIsAWarning(t *testing.T) {
	ctx := context.Background()
	blocked := domain.UnavailabilityPeriod{
		Kind: domain.PeriodRange, StartDate: day(24), EndDate: ptr.Ptr(day(28)), Reason: "Voyage", Status: domain.PeriodApproved,
	}

	for _, tc := range []struct {
		name         string
		alternative  *time.Time
		wantConflict bool
	}{
		{name: "alternative blocked", alternative: ptr.Ptr(day(25)), wantConflict: true},
		{name: "alternative free", alternative: ptr.Ptr(day(21)), wantConflict: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			loader := new(mockLoader)
			loader.On("Load", ctx, int64(10), day(20), mock.Anything).Return(newCalendar(blocked), nil)
			repo := new(mockRequestRepo)
			repo.On("Create", ctx, mock.Anything).Return(nil, nil)
			metrics := new(mockMetrics)
			metrics.On("ObserveCustomRequest", tc.wantConflict).Return()

			req := baseRequest()
			req.AlternativeDate = tc.alternative

			resp, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantConflict, resp.HasConflict)
			metrics.AssertExpectations(t)
		})
	}
}

func TestExecute_LoadsWindowUpToLatestDate(t *testing.T) {
	ctx := context.Background()
	loader := new(mockLoader)
	loader.On("Load", ctx, int64(10), day(20), day(27)).Return(newCalendar(), nil)
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.Anything).Return(nil, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveCustomRequest", mock.Anything).Return()

	req := baseRequest()
	req.AlternativeDate = ptr.Ptr(day(27).Add(9 * time.Hour))

	_, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, req)
	require.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestExecute_LoadsWindowFromEarliestDate(t *testing.T) {
	ctx := context.Background()
	loader := new(mockLoader)
	loader.On("Load", ctx, int64(10), day(15), day(20)).Return(newCalendar(), nil)
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.Anything).Return(nil, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveCustomRequest", mock.Anything).Return()

	req := baseRequest()
	req.AlternativeDate = ptr.Ptr(day(15))

	_, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, req)
	require.NoError(t, err)
	loader.AssertExpectations(t)
}

func TestExecute_ConflictOnAlternativeBeforePreferred(t *testing.T) {
	ctx := context.Background()
	workshop := newCalendar().Workshop
	indexer := windowedIndexer{periods: []domain.UnavailabilityPeriod{
		{Kind: domain.PeriodSingle, StartDate: day(15), Reason: "Assomption", Status: domain.PeriodApproved},
	}}
	loader := calendar.NewLoader(stubCatalog{workshop: workshop}, stubResolver{}, indexer, eligibility.FixedClock{At: now}, nopLogger{})
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.MatchedBy(func(r *domain.CustomBookingRequest) bool {
		return r.HasConflict
	})).Return(nil, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveCustomRequest", true).Return()

	req := baseRequest()
	req.PreferredDate = day(16)
	req.AlternativeDate = ptr.Ptr(day(15))

	resp, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	repo.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestExecute_PrivateEstimate(t *testing.T) {
	ctx := context.Background()
	loader := new(mockLoader)
	loader.On("Load", ctx, int64(10), day(20), day(20)).Return(newCalendar(), nil)
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.Anything).Return(nil, nil)
	metrics := new(mockMetrics)
	metrics.On("ObserveCustomRequest", false).Return()

	req := baseRequest()
	req.IsPrivate = true

	resp, err := NewUseCase(loader, repo, metrics, nopLogger{}).Execute(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, resp.EstimatedPrice)
	assert.Equal(t, int64(630000), *resp.EstimatedPrice)
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "bad email", mutate: func(r *Request) { r.ContactEmail = "hery-at-example" }, wantErr: ErrInvalidInput},
		{name: "no participants", mutate: func(r *Request) { r.Participants = 0 }, wantErr: ErrInvalidInput},
		{name: "bad time", mutate: func(r *Request) { r.PreferredTime = ptr.Ptr(types.TimeString("25:00")) }, wantErr: ErrInvalidInput},
		{name: "alternative time alone", mutate: func(r *Request) { r.AlternativeTime = ptr.Ptr(types.TimeString("09:00")) }, wantErr: ErrInvalidInput},
		{name: "group over limit", mutate: func(r *Request) { r.Participants = domain.MaxParticipantsLimit + 1 }, wantErr: ErrInvalidInput},
		{name: "message too long", mutate: func(r *Request) { r.Message = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) }, wantErr: ErrInvalidInput},
		{name: "no email", mutate: func(r *Request) { r.ContactEmail = "" }, wantErr: ErrInvalidInput},
		{name: "preferred in the past", mutate: func(r *Request) { r.PreferredDate = day(9) }, wantErr: ErrPastDate},
		{name: "alternative in the past", mutate: func(r *Request) { r.AlternativeDate = ptr.Ptr(day(3)) }, wantErr: ErrPastDate},
		{name: "private too large", mutate: func(r *Request) { r.IsPrivate = true; r.Participants = 16 }, wantErr: ErrInvalidParticipants},
	} {
		t.Run(tc.name, func(t *testing.T) {
			loader := new(mockLoader)
			loader.On("Load", ctx, int64(10), mock.Anything, mock.Anything).Return(newCalendar(), nil)
			repo := new(mockRequestRepo)

			req := baseRequest()
			tc.mutate(req)

			_, err := NewUseCase(loader, repo, new(mockMetrics), nopLogger{}).Execute(ctx, req)
			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_StorageFailure(t *testing.T) {
	ctx := context.Background()
	loader := new(mockLoader)
	loader.On("Load", ctx, int64(10), day(20), day(20)).Return(newCalendar(), nil)
	repo := new(mockRequestRepo)
	repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := NewUseCase(loader, repo, new(mockMetrics), nopLogger{}).Execute(ctx, baseRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
