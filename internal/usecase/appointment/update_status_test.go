package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

const testAdminID = "c0a80121-7ac0-4e1c-9b5d-1d2f3a4b5c6d"

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:              "apt-1",
		ClientName:      "Marie Dupont",
		AppointmentDate: "2030-06-15",
		AppointmentTime: "10:00",
		Status:          string(domain.StatusPending),
	}
}

func TestUpdateStatus_AcceptPending(t *testing.T) {
	ap := pendingAppointment()

	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "apt-1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	uc := NewUpdateStatus(repo, nil)
	got, err := uc.Execute(context.Background(), testAdminID, "apt-1", domain.StatusAccepted, "")

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), got.Status)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_NotesAccompanyTransition(t *testing.T) {
	ap := pendingAppointment()

	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "apt-1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)

	uc := NewUpdateStatus(repo, nil)
	got, err := uc.Execute(context.Background(), testAdminID, "apt-1", domain.StatusRejected, "indisponível nesta data")

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusRejected), got.Status)
	assert.Equal(t, "indisponível nesta data", got.Notes)
}

func TestUpdateStatus_TerminalStateRefused(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(domain.StatusRejected)

	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "apt-1").Return(ap, nil)

	uc := NewUpdateStatus(repo, nil)
	_, err := uc.Execute(context.Background(), testAdminID, "apt-1", domain.StatusAccepted, "")

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockRepository)

	uc := NewUpdateStatus(repo, nil)
	_, err := uc.Execute(context.Background(), testAdminID, "apt-1", domain.Status("confirmed"), "")

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	repo.AssertNotCalled(t, "GetAppointment", mock.Anything, mock.Anything)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "missing").Return(nil, assert.AnError)

	uc := NewUpdateStatus(repo, nil)
	_, err := uc.Execute(context.Background(), testAdminID, "missing", domain.StatusAccepted, "")

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatus_UpstreamFailure(t *testing.T) {
	ap := pendingAppointment()

	repo := new(MockRepository)
	repo.On("GetAppointment", mock.Anything, "apt-1").Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(assert.AnError)

	uc := NewUpdateStatus(repo, nil)
	_, err := uc.Execute(context.Background(), testAdminID, "apt-1", domain.StatusAccepted, "")

	_, ok := httperr.AsUpstream(err)
	assert.True(t, ok)
}

func TestListByDate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAppointmentsByDate", mock.Anything, "2030-06-15").Return([]models.Appointment{
		{
			ID:              "apt-1",
			ClientName:      "Marie Dupont",
			AppointmentDate: "2030-06-15",
			AppointmentTime: "10:00",
			Status:          "accepted",
			Prestation:      models.Prestation{Name: "Soin visage"},
		},
	}, nil)

	uc := NewListByDate(repo)
	out, err := uc.Execute(context.Background(), "2030-06-15")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Soin visage", out[0].PrestationName)
	assert.Equal(t, "10:00", out[0].AppointmentTime)
}

func TestListByMonth_InvalidMonth(t *testing.T) {
	repo := new(MockRepository)

	uc := NewListByMonth(repo)
	_, err := uc.Execute(context.Background(), 2030, 13)

	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
	repo.AssertNotCalled(t, "ListAppointmentsByMonth", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByMonth(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAppointmentsByMonth", mock.Anything, 2030, 6).Return([]models.Appointment{
		{ID: "apt-1", AppointmentDate: "2030-06-15", Status: "pending"},
		{ID: "apt-2", AppointmentDate: "2030-06-20", Status: "accepted"},
	}, nil)

	uc := NewListByMonth(repo)
	out, err := uc.Execute(context.Background(), 2030, 6)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}
