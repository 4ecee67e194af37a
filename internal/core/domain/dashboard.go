package domain

// Dashboard - агрегат главного экрана: статистика плюс ближайшие приемы
type Dashboard struct {
	Appointments AppointmentStats `json:"appointments"`
	Patients     PatientStats     `json:"patients"`
	Recent       []Appointment    `json:"recent"`
}
