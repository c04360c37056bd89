package get_available_masters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
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

var (
	// Вторник, 11 марта 2025
	testNow = time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)
	// Среда, 12 марта 2025
	testDate = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
)

func newUseCase(t *testing.T, apptRepo *fakeAppointmentRepo) *UseCase {
	t.Helper()

	catalog := &fakeCatalogRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "классический маникюр", CategoryID: 1, Price: 1500, DurationMinutes: 60},
		},
		categories: map[int64]*domain.Category{1: {ID: 1, Name: "маникюр"}},
	}
	masters := &fakeMasterRepo{
		masters: []*domain.Master{
			{ID: 1, Name: "Вероника", Surname: "Смирнова", Specialty: "маникюр"},
			{ID: 2, Name: "Дарья", Surname: "Лебедева", Specialty: "маникюр"},
			{ID: 3, Name: "Анна", Surname: "Козлова", Specialty: "стрижка"},
		},
	}

	uc := NewUseCase(apptRepo, catalog, masters, calendar.NewRules(domain.DefaultSchedule()), nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return uc
}

// Тесты

func TestExecute_OnlyFreeMastersReturned(t *testing.T) {
	// Мастер 1 занят 11:00-12:00, запрошен слот 11:30-12:30
	apptRepo := &fakeAppointmentRepo{
		apptsByMaster: map[int64][]*domain.Appointment{
			1: {{ID: 7, UserID: 99, MasterID: 1, StartTime: "11:00", DurationMinutes: 60, Status: domain.StatusFuture}},
		},
	}
	uc := newUseCase(t, apptRepo)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate, StartTime: "11:30"})
	require.NoError(t, err)

	// Свободна только Дарья; мастер другой специальности не попадает вовсе
	require.Len(t, resp.Masters, 1)
	assert.Equal(t, int64(2), resp.Masters[0].ID)
	assert.Equal(t, "Дарья Лебедева", resp.Masters[0].FullName)
	assert.Equal(t, "маникюр", resp.Masters[0].Specialty)
}

func TestExecute_AllMastersFree(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate, StartTime: "11:30"})
	require.NoError(t, err)
	assert.Len(t, resp.Masters, 2)
}

func TestExecute_AdjacentAppointmentDoesNotBlock(t *testing.T) {
	// Запись мастера 1 заканчивается ровно в начале запрошенного слота
	apptRepo := &fakeAppointmentRepo{
		apptsByMaster: map[int64][]*domain.Appointment{
			1: {{ID: 7, UserID: 99, MasterID: 1, StartTime: "10:30", DurationMinutes: 60, Status: domain.StatusFuture}},
		},
	}
	uc := newUseCase(t, apptRepo)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate, StartTime: "11:30"})
	require.NoError(t, err)
	assert.Len(t, resp.Masters, 2)
}

func TestExecute_MondayEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	monday := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday, StartTime: "11:30"})
	require.NoError(t, err)
	assert.Empty(t, resp.Masters)
}

func TestExecute_PastTimeEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	// Сегодня, но время уже прошло
	today := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: today, StartTime: "08:00"})
	require.NoError(t, err)
	assert.Empty(t, resp.Masters)
}

func TestExecute_UnknownServiceEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 777, Date: testDate, StartTime: "11:30"})
	require.NoError(t, err)
	assert.Empty(t, resp.Masters)
}

func TestExecute_SlotPastClosingEmpty(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	// Услуга 60 минут не помещается до закрытия в 21:00
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate, StartTime: "20:30"})
	require.NoError(t, err)
	assert.Empty(t, resp.Masters)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(t, &fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate, StartTime: "25:99"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
