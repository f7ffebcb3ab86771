package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

func validInput(date string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:   "Marie Dupont",
		ClientEmail:  "Marie@Example.com",
		ClientPhone:  "06 12 34 56 78",
		PrestationID: testPrestationID,
		Date:         date,
		Time:         "10:00",
		Notes:        "première visite",
	}
}

func openRepo(date string, weekday int) *MockRepository {
	repo := new(MockRepository)
	repo.On("GetPrestation", mock.Anything, testPrestationID).Return(soinVisage(), nil)
	repo.On("IsDateBlocked", mock.Anything, date).Return(false, nil)
	repo.On("ListOpeningHours", mock.Anything, true).Return([]models.OpeningHours{
		{DayOfWeek: weekday, Periods: "9h-12h", IsActive: true},
	}, nil)
	repo.On("ListBlockedSlots", mock.Anything, date).Return([]models.BlockedSlot{}, nil)
	return repo
}

func TestCreateAppointment_HappyPath(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	ap, err := uc.Execute(context.Background(), validInput(date))

	require.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "marie@example.com", ap.ClientEmail)
	assert.Equal(t, date, ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	repo.AssertExpectations(t)
}

func TestCreateAppointment_StatusAlwaysPending(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.Status == string(domain.StatusPending)
	})).Return(nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAppointment_TimeIsCanonicalized(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.AppointmentTime == "09:15"
	})).Return(nil)

	key := "booking:" + date + ":09:15"
	locker := new(MockLocker)
	locker.On("Lock", mock.Anything, key, 10*time.Second).Return(true, nil)
	locker.On("Unlock", mock.Anything, key).Return(nil)

	// hora sem zero à esquerda é aceita na validação, mas tem que virar
	// "09:15" antes do lock e do insert
	in := validInput(date)
	in.Time = "9:15"

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, locker, nil)
	ap, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "09:15", ap.AppointmentTime)
	repo.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestCreateAppointment_ValidationFailureWritesNothing(t *testing.T) {
	date, _ := nextWeek()

	repo := new(MockRepository)
	in := validInput(date)
	in.ClientEmail = "not-an-email"

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "client_email")
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetPrestation", mock.Anything, mock.Anything)
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	repo := new(MockRepository)
	in := validInput("2020-01-15")

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "appointment_date")
}

func TestCreateAppointment_RequiresContactRejected(t *testing.T) {
	date, _ := nextWeek()

	prestation := soinVisage()
	prestation.RequiresContact = true

	repo := new(MockRepository)
	repo.On("GetPrestation", mock.Anything, testPrestationID).Return(prestation, nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	assert.True(t, httperr.IsBusiness(err, "prestation_requires_contact"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_OutsideScheduleRejected(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)

	in := validInput(date)
	in.Time = "13:00"

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_DoesNotFitBeforeClose(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)

	// 11:00 é um início gerado, mas 60 min + buffer passa das 12h
	in := validInput(date)
	in.Time = "11:00"

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))
}

func TestCreateAppointment_BlockedDateRejected(t *testing.T) {
	date, _ := nextWeek()

	repo := new(MockRepository)
	repo.On("GetPrestation", mock.Anything, testPrestationID).Return(soinVisage(), nil)
	repo.On("IsDateBlocked", mock.Anything, date).Return(true, nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	assert.True(t, httperr.IsBusiness(err, "schedule_unavailable"))
}

func TestCreateAppointment_AdminBlockedSlotRejected(t *testing.T) {
	date, weekday := nextWeek()

	repo := new(MockRepository)
	repo.On("GetPrestation", mock.Anything, testPrestationID).Return(soinVisage(), nil)
	repo.On("IsDateBlocked", mock.Anything, date).Return(false, nil)
	repo.On("ListOpeningHours", mock.Anything, true).Return([]models.OpeningHours{
		{DayOfWeek: weekday, Periods: "9h-12h", IsActive: true},
	}, nil)
	repo.On("ListBlockedSlots", mock.Anything, date).Return([]models.BlockedSlot{
		{BlockedDate: date, StartTime: "10:00"},
	}, nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	assert.True(t, httperr.IsBusiness(err, "outside_schedule"))
}

func TestCreateAppointment_LiveConflictRejected(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{
		{
			AppointmentTime: "10:00",
			Status:          "pending",
			Prestation:      models.Prestation{Duration: "1h"},
		},
	}, nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	ce, ok := httperr.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "10:00", ce.ConflictingTime)
	assert.Equal(t, "11:15", ce.BlockedUntil)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_LockHeldByAnotherSubmission(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)

	locker := new(MockLocker)
	locker.On("Lock", mock.Anything, "booking:"+date+":10:00", 10*time.Second).Return(false, nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, locker, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	_, ok := httperr.AsConflict(err)
	assert.True(t, ok)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_LockAcquiredAndReleased(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	key := "booking:" + date + ":10:00"
	locker := new(MockLocker)
	locker.On("Lock", mock.Anything, key, 10*time.Second).Return(true, nil)
	locker.On("Unlock", mock.Anything, key).Return(nil)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, locker, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	require.NoError(t, err)
	locker.AssertExpectations(t)
}

func TestCreateAppointment_UniqueIndexRace(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return([]models.Appointment{}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
		Return(httperr.ErrBusiness("slot_taken"))

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	_, ok := httperr.AsConflict(err)
	assert.True(t, ok)
}

func TestCreateAppointment_UpstreamFailure(t *testing.T) {
	date, weekday := nextWeek()

	repo := openRepo(date, weekday)
	repo.On("ListBlockingAppointments", mock.Anything, date).Return(nil, assert.AnError)

	uc := NewCreateAppointment(repo, config.ScheduleModePeriods, nil, nil)
	_, err := uc.Execute(context.Background(), validInput(date))

	_, ok := httperr.AsUpstream(err)
	assert.True(t, ok)
}
