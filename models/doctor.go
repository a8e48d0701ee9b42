package models

// DoctorRegistration carries the full registration form that is forwarded to the
// remote doctor API. Every field is required by the admin panel form.
type DoctorRegistration struct {
	Name                   string `form:"name" json:"name"`
	Qualification          string `form:"qualification" json:"qualification"`
	Gender                 string `form:"gender" json:"gender"`
	Experience             string `form:"experience" json:"experience"`
	CheckUpTime            string `form:"checkUpTime" json:"checkUpTime"`
	WorkOn                 string `form:"workOn" json:"workOn"`
	SpecialtyType          string `form:"specialtyType" json:"specialtyType"`
	WorkingTime            string `form:"workingTime" json:"workingTime"`
	BreakTime              string `form:"breakTime" json:"breakTime"`
	Age                    string `form:"age" json:"age"`
	PhoneNumber            string `form:"phoneNumber" json:"phoneNumber"`
	Email                  string `form:"email" json:"email"`
	City                   string `form:"city" json:"city"`
	State                  string `form:"state" json:"state"`
	Country                string `form:"country" json:"country"`
	DoctorAddress          string `form:"doctorAddress" json:"doctorAddress"`
	ZipCode                string `form:"zipCode" json:"zipCode"`
	Description            string `form:"description" json:"description"`
	Hospital               string `form:"hospital" json:"hospital"`
	CurrentHospital        string `form:"currentHospital" json:"currentHospital"`
	HospitalWebsiteLink    string `form:"hospitalWebsiteLink" json:"hospitalWebsiteLink"`
	EmergencyPhoneNumber   string `form:"emergencyPhoneNumber" json:"emergencyPhoneNumber"`
	HospitalAddress        string `form:"hospitalAddress" json:"hospitalAddress"`
	OnlineConsultationRate string `form:"onlineConsultationRate" json:"onlineConsultationRate"`
	Password               string `form:"password" json:"password"`
	ConfirmPassword        string `form:"confirmPassword" json:"confirmPassword"`
}

// Doctor is a row of the management list as the remote API returns it. The id keeps
// the remote document key.
type Doctor struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Qualification string `json:"qualification"`
	SpecialtyType string `json:"specialtyType"`
	WorkingTime   string `json:"workingTime"`
	CheckUpTime   string `json:"checkUpTime"`
	BreakTime     string `json:"breakTime"`
	DoctorAvatar  string `json:"doctorAvatar"`
}
