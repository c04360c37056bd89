package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	apptsByMaster map[int64][]*domain.Appointment
}

func (f *fakeAppointmentRepo) ListByMasterOnDate(_ context.Context, masterID int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.apptsByMaster[masterID], nil
}

type fakeCatalogRepo struct {
	services   map[int64]*domain.Service
	categories map[int64]*domain.Category
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, catalogRepo.ErrCategoryNotFound
}

type fakeMasterRepo struct {
	masters []*domain.Master
}

func (f *fakeMasterRepo) ListBySpecialty(_ context.Context, specialty string) ([]*domain.Master, error) {
	result := make([]*domain.Master, 0, len(f.masters))
	for _, m := range f.masters {
		if m.Specialty == specialty {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

func masterAppt(start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		UserID:          99,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func newUseCase(t *testing.T, apptRepo *fakeAppointmentRepo, masters []*domain.Master, now time.Time) *UseCase {
	t.Helper()

	catalog := &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "классический маникюр", CategoryID: 1, Price: 1500, DurationMinutes: 60},
		},
		categories: map[int64]*domain.Category{1: {ID: 1, Name: "маникюр"}},
	}

	uc := NewUseCase(apptRepo, catalog, &fakeMasterRepo{masters: masters}, calendar.NewRules(domain.DefaultSchedule()), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	return uc
}

func twoManicureMasters() []*domain.Master {
	return []*domain.Master{
		{ID: 1, Name: "Вероника", Surname: "Смирнова", Specialty: "маникюр"},
		{ID: 2, Name: "Дарья", Surname: "Лебедева", Specialty: "маникюр"},
	}
}

var (
	// Вторник, 11 марта 2025
	testNow = time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)
	// Среда, 12 марта 2025
	testDate = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
)

// Тесты

func TestExecute_FullGrid(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	// 09:00-21:00, шаг 30 минут, услуга 60 минут: последний слот 20:00
	require.Len(t, resp.Slots, 23)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), resp.Slots[len(resp.Slots)-1].StartTime)

	for _, slot := range resp.Slots {
		assert.Equal(t, 60, slot.DurationMinutes)
		assert.Equal(t, 2, slot.FreeMasters)
		assert.Equal(t, 2, slot.TotalMasters)
	}
}

func TestExecute_BusyMasterReducesFreeCount(t *testing.T) {
	// Мастер 1 занят 11:00-12:00
	apptRepo := &fakeAppointmentRepo{
		apptsByMaster: map[int64][]*domain.Appointment{
			1: {masterAppt("11:00", 60, domain.StatusFuture)},
		},
	}
	uc := newUseCase(t, apptRepo, twoManicureMasters(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	freeByStart := make(map[types.TimeString]int, len(resp.Slots))
	for _, slot := range resp.Slots {
		freeByStart[slot.StartTime] = slot.FreeMasters
	}

	// Слоты, пересекающие 11:00-12:00, у мастера 1 заняты
	assert.Equal(t, 1, freeByStart["10:30"])
	assert.Equal(t, 1, freeByStart["11:00"])
	assert.Equal(t, 1, freeByStart["11:30"])

	// Граничные слоты свободны у обоих
	assert.Equal(t, 2, freeByStart["10:00"])
	assert.Equal(t, 2, freeByStart["12:00"])
}

func TestExecute_FullyBookedSlotExcluded(t *testing.T) {
	// Единственный мастер занят 11:00-12:00
	apptRepo := &fakeAppointmentRepo{
		apptsByMaster: map[int64][]*domain.Appointment{
			1: {masterAppt("11:00", 60, domain.StatusFuture)},
		},
	}
	masters := []*domain.Master{{ID: 1, Name: "Вероника", Surname: "Смирнова", Specialty: "маникюр"}}
	uc := newUseCase(t, apptRepo, masters, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:30"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("11:00"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("11:30"), slot.StartTime)
	}
	assert.Len(t, resp.Slots, 20)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{
		apptsByMaster: map[int64][]*domain.Appointment{
			1: {masterAppt("11:00", 60, domain.StatusCancelled)},
		},
	}
	masters := []*domain.Master{{ID: 1, Name: "Вероника", Surname: "Смирнова", Specialty: "маникюр"}}
	uc := newUseCase(t, apptRepo, masters, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 23)
}

func TestExecute_TodayPastSlotsFiltered(t *testing.T) {
	// Сегодня 12:15 — остаются только слоты с 12:30
	now := time.Date(2025, time.March, 12, 12, 15, 0, 0, time.UTC)
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:30"), resp.Slots[0].StartTime)
}

func TestExecute_MondayEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	monday := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_HolidayEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	womensDay := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: womensDay})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	past := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: past})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownServiceEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 777, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoMastersEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, nil, testNow)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{}, twoManicureMasters(), testNow)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
