package models

const (
	AppointmentInPerson = "In-person"
	AppointmentOnline   = "Online"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

type PatientDetails struct {
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AppointmentRecord struct {
	ID              int            `json:"id"`
	PatientName     string         `json:"patientName"`
	PatientIssue    string         `json:"patientIssue"`
	DoctorName      string         `json:"doctorName"`
	DiseaseName     string         `json:"diseaseName"`
	AppointmentTime string         `json:"appointmentTime"`
	AppointmentType string         `json:"appointmentType"`
	Date            string         `json:"date"`
	PatientDetails  PatientDetails `json:"patientDetails"`
}
