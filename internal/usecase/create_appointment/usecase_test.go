package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	masterRepo "github.com/bsmobile/salon-booking/internal/infra/storage/master"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	masterAppts []*domain.Appointment
	userBusy    bool
	exactDup    bool
	created     *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = 42
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
}

func (f *fakeAppointmentRepo) ListByMasterOnDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.masterAppts, nil
}

func (f *fakeAppointmentRepo) ExistsForUserAtTime(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	return f.userBusy, nil
}

func (f *fakeAppointmentRepo) ExistsExact(_ context.Context, _, _, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	return f.exactDup, nil
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
	masters map[int64]*domain.Master
}

func (f *fakeMasterRepo) GetByID(_ context.Context, id int64) (*domain.Master, error) {
	if m, ok := f.masters[id]; ok {
		return m, nil
	}
	return nil, masterRepo.ErrMasterNotFound
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func manicureService() *domain.Service {
	return &domain.Service{ID: 1, Name: "классический маникюр", CategoryID: 1, Price: 1500, DurationMinutes: 60}
}

func manicureCategory() *domain.Category {
	return &domain.Category{ID: 1, Name: "маникюр"}
}

func manicureMaster() *domain.Master {
	return &domain.Master{ID: 1, Name: "Вероника", Surname: "Смирнова", Specialty: "маникюр"}
}

func masterAppt(start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		UserID:          99,
		MasterID:        1,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

type env struct {
	uc       *UseCase
	apptRepo *fakeAppointmentRepo
}

func newEnv(t *testing.T, apptRepo *fakeAppointmentRepo) *env {
	t.Helper()

	catalog := &fakeCatalogRepo{
		services:   map[int64]*domain.Service{1: manicureService()},
		categories: map[int64]*domain.Category{1: manicureCategory()},
	}
	masters := &fakeMasterRepo{
		masters: map[int64]*domain.Master{
			1: manicureMaster(),
			2: {ID: 2, Name: "Анна", Surname: "Козлова", Specialty: "стрижка"},
		},
	}

	uc := NewUseCase(apptRepo, catalog, masters, calendar.NewRules(domain.DefaultSchedule()), &fakeTxManager{}, nopLogger{})
	// Вторник, 11 марта 2025, 09:00
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)}

	return &env{uc: uc, apptRepo: apptRepo}
}

func validRequest() *Request {
	return &Request{
		UserID:    10,
		ServiceID: 1,
		MasterID:  1,
		Date:      time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), // среда
		StartTime: "11:30",
	}
}

// Тесты

func TestExecute_Success(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	resp, err := e.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "future", resp.Status)
	assert.Equal(t, types.TimeString("11:30"), resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1500.0, resp.Price)
	assert.Equal(t, "классический маникюр", resp.ServiceName)
	assert.Equal(t, "Вероника Смирнова", resp.MasterName)

	// Снимки цены и длительности зафиксированы в созданной записи
	require.NotNil(t, e.apptRepo.created)
	assert.Equal(t, domain.StatusFuture, e.apptRepo.created.Status)
	assert.Equal(t, 1500.0, e.apptRepo.created.Price)
}

func TestExecute_OverlappingAppointment(t *testing.T) {
	// Занято 11:00-12:00, запрос 11:30-12:30 — пересечение
	e := newEnv(t, &fakeAppointmentRepo{
		masterAppts: []*domain.Appointment{masterAppt("11:00", 60, domain.StatusFuture)},
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentAppointmentAllowed(t *testing.T) {
	// Занято 10:30-11:30, запрос с 11:30 — граничат, но не пересекаются
	e := newEnv(t, &fakeAppointmentRepo{
		masterAppts: []*domain.Appointment{masterAppt("10:30", 60, domain.StatusFuture)},
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{
		masterAppts: []*domain.Appointment{masterAppt("11:30", 60, domain.StatusCancelled)},
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_PastAppointmentStillBlocks(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{
		masterAppts: []*domain.Appointment{masterAppt("11:30", 60, domain.StatusPast)},
	})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UserAlreadyBooked(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{userBusy: true})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserAlreadyBooked)
}

func TestExecute_DuplicateAppointment(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{exactDup: true})

	_, err := e.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateAppointment)
}

func TestExecute_SalonClosedOnMonday(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.Date = time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC) // понедельник

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_SalonClosedOnHoliday(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.Date = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_PastDate(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.Date = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TimeInPastToday(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	// Сегодня (11 марта, сейчас 09:00), запрошенное время уже прошло
	req := validRequest()
	req.Date = time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	req.StartTime = "08:00"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_MisalignedTimeSlot(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.StartTime = "11:45"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotEndsAfterClosing(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	// Услуга 60 минут, салон закрывается в 21:00
	req := validRequest()
	req.StartTime = "20:30"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SpecialtyMismatch(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.MasterID = 2 // специальность "стрижка"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMasterSpecialtyMismatch)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.ServiceID = 777

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_MasterNotFound(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.MasterID = 777

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	e := newEnv(t, &fakeAppointmentRepo{})

	req := validRequest()
	req.UserID = 0

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
