package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsmobile/salon-booking/internal/domain"
	appointmentRepo "github.com/bsmobile/salon-booking/internal/infra/storage/appointment"
	"github.com/bsmobile/salon-booking/internal/service/appointments/models"
	"github.com/bsmobile/salon-booking/pkg/ptr"
)

// Фейк репозитория записей

type fakeAppointmentRepo struct {
	appts map[int64]*domain.Appointment

	// Сколько записей переводит в past первый вызов MarkPast;
	// последующие вызовы возвращают 0 (идемпотентность)
	pendingPast   int64
	markPastCalls int

	updatedStatus map[int64]domain.AppointmentStatus
}

func newFakeRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	byID := make(map[int64]*domain.Appointment, len(appts))
	for _, a := range appts {
		byID[a.ID] = a
	}
	return &fakeAppointmentRepo{
		appts:         byID,
		updatedStatus: make(map[int64]domain.AppointmentStatus),
	}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if a, ok := f.appts[id]; ok {
		return a, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) ListByUser(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(f.appts))
	for _, a := range f.appts {
		if a.UserID != userID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	f.updatedStatus[id] = status
	return nil
}

func (f *fakeAppointmentRepo) MarkPast(_ context.Context, _ time.Time) (int64, error) {
	f.markPastCalls++
	if f.markPastCalls == 1 {
		return f.pendingPast, nil
	}
	return 0, nil
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

func futureAppt(id, userID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UserID:          userID,
		ServiceID:       1,
		MasterID:        1,
		Date:            time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       "11:30",
		DurationMinutes: 60,
		Price:           1500,
		Status:          domain.StatusFuture,
		ServiceName:     "классический маникюр",
		MasterName:      "Вероника Смирнова",
	}
}

func newService(repo *fakeAppointmentRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)}
	return svc
}

// Тесты

func TestGetByID_Success(t *testing.T) {
	repo := newFakeRepo(futureAppt(1, 10))
	svc := newService(repo)

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-03-12", resp.Date)
	assert.Equal(t, "11:30", resp.StartTime)
	assert.Equal(t, "future", resp.Status)
	assert.Equal(t, "Вероника Смирнова", resp.MasterName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), 777, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_AccessDenied(t *testing.T) {
	repo := newFakeRepo(futureAppt(1, 10))
	svc := newService(repo)

	_, err := svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserAppointments_FiltersByStatus(t *testing.T) {
	cancelled := futureAppt(2, 10)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeRepo(futureAppt(1, 10), cancelled, futureAppt(3, 99))
	svc := newService(repo)

	result, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 10,
		Status: ptr.Ptr("future"),
	})
	require.NoError(t, err)

	require.Len(t, result.Appointments, 1)
	assert.Equal(t, int64(1), result.Appointments[0].ID)
}

func TestGetUserAppointments_SweepsBeforeListing(t *testing.T) {
	repo := newFakeRepo(futureAppt(1, 10))
	repo.pendingPast = 2
	svc := newService(repo)

	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{UserID: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.markPastCalls)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 10,
		Status: ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	repo := newFakeRepo(futureAppt(1, 10))
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus[1])
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newFakeRepo(futureAppt(1, 10))
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.updatedStatus)
}

func TestCancel_PastAppointment(t *testing.T) {
	past := futureAppt(1, 10)
	past.Status = domain.StatusPast

	repo := newFakeRepo(past)
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	cancelled := futureAppt(1, 10)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeRepo(cancelled)
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	err := svc.Cancel(context.Background(), 777, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSweep_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.pendingPast = 3
	svc := newService(repo)

	updated, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	// Повторный вызов ничего не меняет
	updated, err = svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}
