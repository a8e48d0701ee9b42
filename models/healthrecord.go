package models

type PatientProfile struct {
	Name    string `json:"name"`
	Phone   string `json:"phoneNo"`
	Email   string `json:"email"`
	Gender  string `json:"gender"`
	DOB     string `json:"dob"`
	Height  string `json:"height"`
	Weight  string `json:"weight"`
	Country string `json:"country"`
	State   string `json:"state"`
	Address string `json:"address"`
}

type MedicalHistoryEntry struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Prescription struct {
	Hospital string `json:"hospital"`
	Date     string `json:"date"`
	Disease  string `json:"disease"`
}

type TestReport struct {
	Title  string `json:"title"`
	Result string `json:"result"`
	Doctor string `json:"doctor"`
}

// HealthRecord is the read-only composition shown on the patient panel.
type HealthRecord struct {
	Profile        PatientProfile        `json:"profile"`
	MedicalHistory []MedicalHistoryEntry `json:"medicalHistory"`
	Prescriptions  []Prescription        `json:"prescriptions"`
	TestReports    []TestReport          `json:"testReports"`
	Status         string                `json:"status"`
	StatusNote     string                `json:"statusNote"`
}
