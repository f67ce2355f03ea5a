package cancel_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
)

// Пятница 2026-08-28, weekday = 4
var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetChildren(_ context.Context, parentID int64) ([]*domain.Booking, error) {
	var children []*domain.Booking
	for _, b := range r.bookings {
		if b.ParentID != nil && *b.ParentID == parentID {
			copied := *b
			children = append(children, &copied)
		}
	}
	return children, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

type fakeCourtRepo struct {
	courts    map[int64]*domain.Court
	restocked map[int64]int
}

func (r *fakeCourtRepo) GetCourtByID(_ context.Context, id int64) (*domain.Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return c, nil
}

func (r *fakeCourtRepo) AddShuttlecockStock(_ context.Context, id int64, count int) error {
	if r.restocked == nil {
		r.restocked = map[int64]int{}
	}
	r.restocked[id] += count
	return nil
}

type fakeScheduleRepo struct {
	nextID    int64
	schedules map[string]*domain.Schedule
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
			return nil
		}
	}
	return fmt.Errorf("schedule %d not found", s.ID)
}

// reserve занимает диапазон прямо в хранилище, минуя use case
func (r *fakeScheduleRepo) reserve(t *testing.T, kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday, start, end int) {
	t.Helper()
	s, err := r.GetOrCreate(context.Background(), kind, resourceID, instance, weekday)
	require.NoError(t, err)
	require.True(t, s.Reserve(start, end))
	require.NoError(t, r.Save(context.Background(), s))
}

func (r *fakeScheduleRepo) status(kind domain.ResourceKind, resourceID int64, instance int, weekday domain.Weekday) uint64 {
	s, ok := r.schedules[schedKey(kind, resourceID, instance, weekday)]
	if !ok {
		return 0
	}
	return s.Status
}

type fakeBalanceRepo struct {
	credits map[int64]float64
}

func (r *fakeBalanceRepo) Debit(_ context.Context, id int64, amount float64) error {
	credit, ok := r.credits[id]
	if !ok {
		return fmt.Errorf("%w: id %d", userRepo.ErrUserNotFound, id)
	}
	if credit < amount {
		return fmt.Errorf("%w: user %d", userRepo.ErrInsufficientFunds, id)
	}
	r.credits[id] = credit - amount
	return nil
}

func (r *fakeBalanceRepo) Credit(_ context.Context, id int64, amount float64) error {
	r.credits[id] += amount
	return nil
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

const (
	payerID = int64(42)
	ownerID = int64(100)
)

func newTestCourt() *domain.Court {
	return &domain.Court{ID: 1, OwnerID: ownerID, CourtCount: 2, OpenUnit: 0, CloseUnit: 48, UnitPrice: 10}
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	courts   *fakeCourtRepo
	scheds   *fakeScheduleRepo
	balances *fakeBalanceRepo
	pub      *recordingPublisher
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{}},
		courts:   &fakeCourtRepo{courts: map[int64]*domain.Court{1: newTestCourt()}},
		scheds:   newFakeScheduleRepo(),
		balances: &fakeBalanceRepo{credits: map[int64]float64{ownerID: 1000, payerID: 0}},
		pub:      &recordingPublisher{},
	}
	f.uc = NewUseCase(f.bookings, f.courts, f.scheds, f.balances, passthroughTx{}, f.pub, stubLogger{})
	f.uc.timeProvider = fixedTime{testNow}
	return f
}

// courtBooking бронирование корта, сделанное в testNow (пятница) на weekday
func courtBooking(id int64, weekday domain.Weekday, start, end int, price float64) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    payerID,
		CourtID:   1,
		Kind:      domain.BookingCourt,
		Weekday:   weekday,
		StartUnit: start,
		EndUnit:   end,
		Price:     price,
		BookedAt:  testNow,
	}
}

func TestExecute_FullRefund(t *testing.T) {
	f := newFixture()

	// Пятница -> понедельник: дистанция 3 дня, полный возврат
	f.bookings.bookings[1] = courtBooking(1, 0, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 0, 10, 11)

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, 10.0, resp.Refund)
	assert.Equal(t, 1, resp.Cancelled)
	assert.Equal(t, 10.0, f.balances.credits[payerID])
	assert.Equal(t, 990.0, f.balances.credits[ownerID])
	assert.Empty(t, f.bookings.bookings)
	assert.Zero(t, f.scheds.status(domain.KindCourt, 1, 0, 0))
	assert.Equal(t, []string{"booking.cancelled"}, f.pub.keys)
}

func TestExecute_HalfRefund(t *testing.T) {
	f := newFixture()

	// Пятница -> суббота: дистанция 1 день, возврат половины
	f.bookings.bookings[1] = courtBooking(1, 5, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 5, 10, 11)

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, 5.0, resp.Refund)
	assert.Equal(t, 5.0, f.balances.credits[payerID])
}

func TestExecute_HalfRefundWhenCancelledCloserToDate(t *testing.T) {
	f := newFixture()

	// Забронировано в пятницу на понедельник (дистанция 3), но отмена
	// приходит в воскресенье: до даты остался 1 день, возврат половины
	f.bookings.bookings[1] = courtBooking(1, 0, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 0, 10, 11)
	f.uc.timeProvider = fixedTime{testNow.AddDate(0, 0, 2)}

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, 5.0, resp.Refund)
	assert.Equal(t, 5.0, f.balances.credits[payerID])
	assert.Equal(t, 995.0, f.balances.credits[ownerID])
	assert.Zero(t, f.scheds.status(domain.KindCourt, 1, 0, 0))
}

func TestExecute_FullRefundWhenStillFarAtCancelTime(t *testing.T) {
	f := newFixture()

	// Забронировано в пятницу на четверг; отмена в воскресенье: до даты
	// 4 дня, полный возврат
	f.bookings.bookings[1] = courtBooking(1, 3, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 3, 10, 11)
	f.uc.timeProvider = fixedTime{testNow.AddDate(0, 0, 2)}

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Refund)
}

func TestExecute_WindowClosedAfterDatePassed(t *testing.T) {
	f := newFixture()

	// Забронировано в пятницу на субботу; отмена в воскресенье: дата уже
	// наступила, окно закрыто
	f.bookings.bookings[1] = courtBooking(1, 5, 10, 11, 10)
	f.uc.timeProvider = fixedTime{testNow.AddDate(0, 0, 2)}

	_, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.ErrorIs(t, err, ErrWindowClosed)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_SameDayHalfRefund(t *testing.T) {
	f := newFixture()

	// Пятница -> пятница: дистанция 0, возврат половины
	f.bookings.bookings[1] = courtBooking(1, 4, 20, 21, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 4, 20, 21)

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.Refund)
}

func TestExecute_WindowClosed(t *testing.T) {
	f := newFixture()

	// Забронировано неделю назад на субботу: дата уже прошла
	b := courtBooking(1, 5, 10, 11, 10)
	b.BookedAt = testNow.AddDate(0, 0, -7)
	f.bookings.bookings[1] = b

	_, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.ErrorIs(t, err, ErrWindowClosed)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_CascadeChildren(t *testing.T) {
	f := newFixture()

	// Родительское бронирование на понедельник (полный возврат, дистанция 3)
	// с детьми: аренда ракетки и две тубы воланов
	parent := courtBooking(1, 0, 10, 13, 20)
	f.bookings.bookings[1] = parent
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 0, 10, 13)

	racketID := int64(7)
	racketEntry := &domain.Booking{
		ID: 2, UserID: payerID, CourtID: 1, Kind: domain.BookingRacket,
		RentalID: &racketID, ParentID: &parent.ID,
		Weekday: 0, StartUnit: 10, EndUnit: 13, Price: 6,
		// Ребенок куплен позже родителя: каскад возвращает всех по
		// одному тарифу от момента отмены
		BookedAt: testNow.Add(time.Hour),
	}
	f.bookings.bookings[2] = racketEntry
	f.scheds.reserve(t, domain.KindRacket, racketID, 0, 0, 10, 13)

	shuttleID := int64(9)
	f.bookings.bookings[3] = &domain.Booking{
		ID: 3, UserID: payerID, CourtID: 1, Kind: domain.BookingShuttlecock,
		RentalID: &shuttleID, ParentID: &parent.ID,
		Weekday: 0, StartUnit: 10, EndUnit: 13, Count: 2, Price: 8,
		BookedAt: testNow.Add(time.Hour),
	}

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, 34.0, resp.Refund) // 20 + 6 + 8, все по полному тарифу
	assert.Equal(t, 3, resp.Cancelled)
	assert.Empty(t, f.bookings.bookings)
	assert.Zero(t, f.scheds.status(domain.KindCourt, 1, 0, 0))
	assert.Zero(t, f.scheds.status(domain.KindRacket, racketID, 0, 0))
	assert.Equal(t, 2, f.courts.restocked[shuttleID])
}

func TestExecute_OwnerCanCancel(t *testing.T) {
	f := newFixture()

	f.bookings.bookings[1] = courtBooking(1, 0, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 0, 10, 11)

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: ownerID, BookingID: 1})
	require.NoError(t, err)

	// Возврат всегда уходит плательщику
	assert.Equal(t, 10.0, resp.Refund)
	assert.Equal(t, 10.0, f.balances.credits[payerID])
}

func TestExecute_AccessDenied(t *testing.T) {
	f := newFixture()

	f.bookings.bookings[1] = courtBooking(1, 0, 10, 11, 10)

	_, err := f.uc.Execute(context.Background(), &Request{RequesterID: 777, BookingID: 1})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestExecute_OwnerCannotCoverRefund(t *testing.T) {
	f := newFixture()
	f.balances.credits[ownerID] = 3

	f.bookings.bookings[1] = courtBooking(1, 0, 10, 11, 10)
	f.scheds.reserve(t, domain.KindCourt, 1, 0, 0, 10, 11)

	_, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 1})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 0.0, f.balances.credits[payerID])
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 99})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_StandaloneChildUsesOwnDistance(t *testing.T) {
	f := newFixture()

	// Отмена только дочерней аренды ракетки. Отмена в пятницу, дата в
	// воскресенье: дистанция 2, половина.
	parent := courtBooking(1, 6, 10, 11, 10)
	f.bookings.bookings[1] = parent

	racketID := int64(7)
	f.bookings.bookings[2] = &domain.Booking{
		ID: 2, UserID: payerID, CourtID: 1, Kind: domain.BookingRacket,
		RentalID: &racketID, ParentID: &parent.ID,
		Weekday: 6, StartUnit: 10, EndUnit: 11, Price: 6,
		BookedAt: testNow,
	}
	f.scheds.reserve(t, domain.KindRacket, racketID, 0, 6, 10, 11)

	resp, err := f.uc.Execute(context.Background(), &Request{RequesterID: payerID, BookingID: 2})
	require.NoError(t, err)

	assert.Equal(t, 3.0, resp.Refund)
	assert.Equal(t, 1, resp.Cancelled)
	// Родитель остается в журнале
	assert.Len(t, f.bookings.bookings, 1)
	assert.Zero(t, f.scheds.status(domain.KindRacket, racketID, 0, 6))
}
