package appointment

import (
	"context"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

// UpdateStatus é a operação de moderação do admin: pending → accepted ou
// rejected, accepted → completed ou cancelled. Estado terminal não transiciona.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID string,
	appointmentID string,
	newStatus domain.Status,
	notes string,
) (*models.Appointment, error) {

	if !newStatus.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Transition(ap, newStatus, notes); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrUpstream("update appointment", err)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			AdminID:  &adminID,
			Action:   "appointment_" + string(newStatus),
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
