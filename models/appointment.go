package models

import "time"

// Appointment is immutable once written; the id and created_at columns are
// assigned by the store, never by the caller. PaymentReference stays NULL
// when the consultation was booked without an online payment.
type Appointment struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	DoctorName       string    `json:"doctor_name" gorm:"not null"`
	PatientName      string    `json:"patient_name" gorm:"not null"`
	PatientEmail     string    `json:"patient_email" gorm:"not null"`
	PatientPhone     string    `json:"patient_phone" gorm:"not null"`
	AppointmentDate  string    `json:"appointment_date" gorm:"not null"`
	AppointmentTime  string    `json:"appointment_time" gorm:"not null"`
	PaymentReference *string   `json:"payment_reference"`
	CreatedAt        time.Time `json:"created_at"`
}
