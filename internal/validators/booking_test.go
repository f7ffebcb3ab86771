package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validFields() AppointmentFields {
	return AppointmentFields{
		ClientName:   "Marie Dupont",
		ClientEmail:  "marie@example.com",
		ClientPhone:  "06 12 34 56 78",
		PrestationID: "3b6f0f8e-41a2-4a41-9c5b-0f6f2c9d1e7a",
		Date:         "2030-06-15",
		Time:         "10:30",
		Notes:        "",
	}
}

func today() time.Time {
	return time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestValidateAppointment_Valid(t *testing.T) {
	errs := ValidateAppointment(validFields(), today())
	assert.Empty(t, errs)
}

func TestValidateAppointment_ClientName(t *testing.T) {
	f := validFields()

	f.ClientName = ""
	assert.Contains(t, ValidateAppointment(f, today()), "client_name")

	f.ClientName = "M"
	assert.Contains(t, ValidateAppointment(f, today()), "client_name")

	f.ClientName = "Marie123"
	assert.Contains(t, ValidateAppointment(f, today()), "client_name")

	f.ClientName = "Jean-Luc O'Neill"
	assert.NotContains(t, ValidateAppointment(f, today()), "client_name")

	f.ClientName = "Chloé Lefèvre"
	assert.NotContains(t, ValidateAppointment(f, today()), "client_name")
}

func TestValidateAppointment_Email(t *testing.T) {
	f := validFields()

	f.ClientEmail = ""
	assert.Contains(t, ValidateAppointment(f, today()), "client_email")

	f.ClientEmail = "not-an-email"
	assert.Contains(t, ValidateAppointment(f, today()), "client_email")

	f.ClientEmail = "ok@domaine.fr"
	assert.NotContains(t, ValidateAppointment(f, today()), "client_email")
}

func TestValidateAppointment_PhoneOptionalButFrench(t *testing.T) {
	f := validFields()

	f.ClientPhone = ""
	assert.NotContains(t, ValidateAppointment(f, today()), "client_phone")

	f.ClientPhone = "+33 6 12 34 56 78"
	assert.NotContains(t, ValidateAppointment(f, today()), "client_phone")

	f.ClientPhone = "0612345678"
	assert.NotContains(t, ValidateAppointment(f, today()), "client_phone")

	f.ClientPhone = "12345"
	assert.Contains(t, ValidateAppointment(f, today()), "client_phone")
}

func TestValidateAppointment_Prestation(t *testing.T) {
	f := validFields()
	f.PrestationID = "not-a-uuid"
	assert.Contains(t, ValidateAppointment(f, today()), "prestation_id")
}

func TestValidateAppointment_DateMustBeFuture(t *testing.T) {
	f := validFields()

	f.Date = "15/06/2030"
	assert.Contains(t, ValidateAppointment(f, today()), "appointment_date")

	f.Date = "2030-05-20"
	assert.Contains(t, ValidateAppointment(f, today()), "appointment_date")

	// mesmo dia não é permitido
	f.Date = "2030-06-01"
	assert.Contains(t, ValidateAppointment(f, today()), "appointment_date")

	f.Date = "2030-06-02"
	assert.NotContains(t, ValidateAppointment(f, today()), "appointment_date")
}

func TestValidateAppointment_Time(t *testing.T) {
	f := validFields()

	f.Time = "25:00"
	assert.Contains(t, ValidateAppointment(f, today()), "appointment_time")

	f.Time = "10h30"
	assert.Contains(t, ValidateAppointment(f, today()), "appointment_time")

	f.Time = "9:15"
	assert.NotContains(t, ValidateAppointment(f, today()), "appointment_time")
}

func TestValidateAppointment_NotesLimit(t *testing.T) {
	f := validFields()
	f.Notes = string(make([]byte, 501))
	assert.Contains(t, ValidateAppointment(f, today()), "notes")
}
