package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nackalalalong/KK-BackEnd/internal/domain"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	"github.com/Nackalalalong/KK-BackEnd/pkg/ptr"
)

// Среда 2026-08-26, weekday = 2
var testNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

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
	schedules []*domain.Schedule
}

func (r *fakeScheduleRepo) GetAllForResource(_ context.Context, kind domain.ResourceKind, resourceID int64, weekday domain.Weekday) ([]*domain.Schedule, error) {
	var out []*domain.Schedule
	for _, s := range r.schedules {
		if s.ResourceKind == kind && s.ResourceID == resourceID && s.Weekday == weekday {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func rangeMask(start, end int) uint64 {
	return ((uint64(1) << uint(end-start+1)) - 1) << uint(start)
}

func newUseCase(courts *fakeCourtRepo, scheds *fakeScheduleRepo) *UseCase {
	uc := NewUseCase(courts, scheds, stubLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecute_PerUnitCounts(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, OwnerID: 100, CourtCount: 2, OpenUnit: 8, CloseUnit: 12, UnitPrice: 10},
	}}
	scheds := &fakeScheduleRepo{schedules: []*domain.Schedule{
		// Нулевой корт занят на юнитах 9-10
		{ID: 1, ResourceKind: domain.KindCourt, ResourceID: 1, InstanceNumber: 0,
			Weekday: 2, Status: rangeMask(9, 10), LastUpdate: testNow},
		// Первый корт занят целиком, но запись устарела на неделю:
		// rollover в памяти считает его свободным
		{ID: 2, ResourceKind: domain.KindCourt, ResourceID: 1, InstanceNumber: 1,
			Weekday: 2, Status: ^uint64(0) >> (64 - domain.UnitsPerDay), LastUpdate: testNow.AddDate(0, 0, -8)},
	}}
	uc := newUseCase(courts, scheds)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Weekday: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, 2, resp.CourtCount)
	require.Len(t, resp.Units, 4)
	assert.Equal(t, UnitAvailability{Unit: 8, Free: 2}, resp.Units[0])
	assert.Equal(t, UnitAvailability{Unit: 9, Free: 1}, resp.Units[1])
	assert.Equal(t, UnitAvailability{Unit: 10, Free: 1}, resp.Units[2])
	assert.Equal(t, UnitAvailability{Unit: 11, Free: 2}, resp.Units[3])
	assert.Nil(t, resp.Free)

	// Read-only: маска в хранилище не сброшена
	assert.NotZero(t, scheds.schedules[1].Status)
}

func TestExecute_RangeVerdict(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, OwnerID: 100, CourtCount: 1, OpenUnit: 8, CloseUnit: 12, UnitPrice: 10},
	}}
	scheds := &fakeScheduleRepo{schedules: []*domain.Schedule{
		{ID: 1, ResourceKind: domain.KindCourt, ResourceID: 1, InstanceNumber: 0,
			Weekday: 2, Status: rangeMask(9, 10), LastUpdate: testNow},
	}}
	uc := newUseCase(courts, scheds)

	tests := []struct {
		name  string
		start int
		end   int
		want  bool
	}{
		{"busy range", 9, 10, false},
		{"overlaps busy unit", 8, 9, false},
		{"free range", 11, 11, true},
		{"outside open hours", 0, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				CourtID: 1, Weekday: 2,
				StartUnit: ptr.Ptr(tt.start), EndUnit: ptr.Ptr(tt.end),
			})
			require.NoError(t, err)
			require.NotNil(t, resp.Free)
			assert.Equal(t, tt.want, *resp.Free)
		})
	}
}

func TestExecute_NoScheduleRowsMeansAllFree(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, OwnerID: 100, CourtCount: 3, OpenUnit: 10, CloseUnit: 12, UnitPrice: 10},
	}}
	uc := newUseCase(courts, &fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Weekday: 5})
	require.NoError(t, err)
	require.Len(t, resp.Units, 2)
	assert.Equal(t, 3, resp.Units[0].Free)
	assert.Equal(t, 3, resp.Units[1].Free)
}

func TestExecute_Errors(t *testing.T) {
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, OwnerID: 100, CourtCount: 1, OpenUnit: 0, CloseUnit: 48, UnitPrice: 10},
	}}
	uc := newUseCase(courts, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 99, Weekday: 0})
	assert.ErrorIs(t, err, ErrCourtNotFound)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, Weekday: 7})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, Weekday: 0, StartUnit: ptr.Ptr(10)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, Weekday: 0,
		StartUnit: ptr.Ptr(11), EndUnit: ptr.Ptr(10)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
