package dto

type AppointmentListDTO struct {
	ID              string `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	PrestationName  string `json:"prestation_name"`
}
