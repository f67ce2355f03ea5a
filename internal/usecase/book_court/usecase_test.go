package book_court

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// Среда 2026-08-26, weekday = 2
var testNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	nextID  int64
	created []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	stored := *b
	stored.ID = r.nextID
	r.created = append(r.created, &stored)
	return &stored, nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (r *fakeCourtRepo) GetCourtByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return c, nil
}

type fakeScheduleRepo struct {
	nextID     int64
	schedules  map[string]*domain.Schedule
	savedCount int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[string]*domain.Schedule{}}
}

func schedKey(kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday) string {
	return fmt.Sprintf("%s/%d/%d/%d", kind, resourceID, instance, weekday)
}

func (r *fakeScheduleRepo) GetOrCreate(_ context.Context, kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday) (*domain.Schedule, error) {
	key := schedKey(kind, resourceID, instance, weekday)
	if s, ok := r.schedules[key]; ok {
		copied := *s
		return &copied, nil
	}
	r.nextID++
	s := &domain.Schedule{
		ID:             r.nextID,
		ResourceKind:   kind,
		ResourceID:     resourceID,
		InstanceNumber: instance,
		Weekday:        weekday,
		LastUpdate:     testNow,
	}
	r.schedules[key] = s
	copied := *s
	return &copied, nil
}

func (r *fakeScheduleRepo) Save(_ context.Context, s *domain.Schedule) error {
	for key, existing := range r.schedules {
		if existing.ID == s.ID {
			copied := *s
			r.schedules[key] = &copied
			r.savedCount++
			return nil
		}
	}
	return fmt.Errorf("schedule %d not found", s.ID)
}

type fakeBalanceRepo struct {
	credits map[int64]float64
}

func (r *fakeBalanceRepo) Debit(_ context.Context, id int64, amount float64) error {
	credit, ok := r.credits[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	if credit < amount {
		return userRepo.ErrInsufficientFunds
	}
	r.credits[id] = credit - amount
	return nil
}

func (r *fakeBalanceRepo) AddCredit(_ context.Context, id int64, amount float64) (float64, error) {
	r.credits[id] += amount
	return r.credits[id], nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	keys []string
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, _ any) error {
	p.keys = append(p.keys, key)
	return nil
}

func newTestCourt() *domain.Court {
	return &domain.Court{
		ID:         1,
		OwnerID:    100,
		Name:       "Smash Arena",
		UnitPrice:  10,
		CourtCount: 3,
		OpenUnit:   8,
		CloseUnit:  40,
	}
}

func newTestUseCase(courts *fakeCourtRepo, scheds *fakeScheduleRepo, balances *fakeBalanceRepo) (*UseCase, *fakeBookingRepo, *recordingPublisher) {
	bookings := &fakeBookingRepo{}
	pub := &recordingPublisher{}
	uc := NewUseCase(bookings, courts, scheds, balances, passthroughTx{}, pub, stubLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc, bookings, pub
}

func TestExecute_FirstFitSkipsBusyInstance(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	scheds := newFakeScheduleRepo()
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 50}}

	// Корт 0 занят на юнитах 10-11
	busy, err := scheds.GetOrCreate(context.Background(), domain.KindCourt, 1, 0, 2)
	require.NoError(t, err)
	require.True(t, busy.Reserve(10, 11))
	require.NoError(t, scheds.Save(context.Background(), busy))

	uc, bookings, pub := newTestUseCase(courts, scheds, balances)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   11,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CourtNumber)
	assert.Equal(t, 10.0, resp.Price) // 2 юнита по 10/час
	assert.Equal(t, 40.0, balances.credits[42])
	assert.Equal(t, 10.0, balances.credits[100])
	require.Len(t, bookings.created, 1)
	assert.Equal(t, domain.BookingCourt, bookings.created[0].Kind)
	// Момент бронирования ставится тем же источником времени, что и
	// rollover расписаний
	assert.Equal(t, testNow, bookings.created[0].BookedAt)
	assert.Equal(t, testNow, resp.BookedAt)
	assert.Equal(t, []string{"booking.created"}, pub.keys)
}

func TestExecute_AllInstancesBusy(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	scheds := newFakeScheduleRepo()
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 500}}

	for n := 0; n < 3; n++ {
		s, err := scheds.GetOrCreate(context.Background(), domain.KindCourt, 1, n, 2)
		require.NoError(t, err)
		require.True(t, s.Reserve(11, 11))
		require.NoError(t, scheds.Save(context.Background(), s))
	}

	uc, bookings, pub := newTestUseCase(courts, scheds, balances)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   12,
	})
	require.ErrorIs(t, err, ErrNotFree)
	assert.Empty(t, bookings.created)
	assert.Empty(t, pub.keys)
}

func TestExecute_InsufficientFunds(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 5}}

	uc, bookings, _ := newTestUseCase(courts, newFakeScheduleRepo(), balances)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   11,
	})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Empty(t, bookings.created)
}

func TestExecute_UnknownPayer(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	balances := &fakeBalanceRepo{credits: map[int64]float64{}}

	uc, _, _ := newTestUseCase(courts, newFakeScheduleRepo(), balances)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   11,
	})
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestExecute_CourtNotFound(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{}}
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 100}}

	uc, _, _ := newTestUseCase(courts, newFakeScheduleRepo(), balances)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   99,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   11,
	})
	require.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_OutsideOpenHours(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 100}}

	uc, _, _ := newTestUseCase(courts, newFakeScheduleRepo(), balances)

	// Окно работы [8, 40): юнит 40 уже недоступен
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 38,
		EndUnit:   40,
	})
	require.ErrorIs(t, err, ErrOutsideOpenHours)
}

func TestExecute_InvalidRange(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 100}}

	uc, _, _ := newTestUseCase(courts, newFakeScheduleRepo(), balances)

	cases := []struct {
		name       string
		start, end int
		weekday    domain.Weekday
	}{
		{"end before start", 12, 10, 2},
		{"negative start", -1, 5, 2},
		{"unit out of grid", 40, 48, 2},
		{"bad weekday", 10, 11, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				UserID:    42,
				CourtID:   1,
				Weekday:   tc.weekday,
				StartUnit: tc.start,
				EndUnit:   tc.end,
			})
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestExecute_RolloverFreesStaleWeek(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}}
	scheds := newFakeScheduleRepo()
	balances := &fakeBalanceRepo{credits: map[int64]float64{42: 50}}

	// Маска занята, но последняя запись старше порога недели:
	// при бронировании она должна обнулиться
	s, err := scheds.GetOrCreate(context.Background(), domain.KindCourt, 1, 0, 2)
	require.NoError(t, err)
	require.True(t, s.Reserve(10, 11))
	s.LastUpdate = testNow.AddDate(0, 0, -8)
	require.NoError(t, scheds.Save(context.Background(), s))

	uc, _, _ := newTestUseCase(courts, scheds, balances)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   1,
		Weekday:   2,
		StartUnit: 10,
		EndUnit:   11,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CourtNumber)
}
