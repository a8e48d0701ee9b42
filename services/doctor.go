package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ClinicDesk/models"
)

const defaultDoctorAPIBaseURL = "http://localhost:5000"

const (
	PASSWORDS_DO_NOT_MATCH  = "Passwords do not match."
	FAILED_TO_ADD_DOCTOR    = "Failed to add doctor. Please try again."
	FAILED_TO_FETCH_DOCTORS = "Error fetching doctors. Please try again."
	FAILED_TO_DELETE_DOCTOR = "Error deleting doctor. Please try again."
	DOCTOR_DELETED_MESSAGE  = "Doctor deleted successfully."
)

// FilePart is one uploaded file forwarded as-is to the remote API. The caller
// owns Content and closes it after the registration call returns.
type FilePart struct {
	Filename string
	Content  io.ReadCloser
}

// DoctorAPI is the client for the remote doctor registration and management
// service. The service itself is an external collaborator, only its request and
// response shapes matter here.
type DoctorAPI struct {
	BaseURL string
	Client  *http.Client
}

func NewDoctorAPI(baseURL string) *DoctorAPI {
	if baseURL == "" {
		baseURL = defaultDoctorAPIBaseURL
	}
	return &DoctorAPI{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// remoteMessage is the error/success envelope the remote API answers with.
type remoteMessage struct {
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

/*
* Validate the form before any outbound call
* Hash the password and build the multipart payload with both image parts
* POST to the registration endpoint with the caller's bearer token
* A remote error body with a msg field becomes the user-facing message
 */
func (a *DoctorAPI) RegisterDoctor(ctx context.Context, reg models.DoctorRegistration, photo, signature *FilePart, token string) (string, error) {
	if err := validateDoctorRegistration(reg); err != nil {
		log.Println("Error from validateDoctorRegistration:", err)
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error while hashing doctor password:", err)
		return "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range registrationFields(reg) {
		if err := writer.WriteField(name, value); err != nil {
			return "", err
		}
	}
	if err := writer.WriteField("password", string(hash)); err != nil {
		return "", err
	}
	for name, part := range map[string]*FilePart{"profileImage": photo, "signatureImage": signature} {
		if part == nil {
			continue
		}
		fw, err := writer.CreateFormFile(name, part.Filename)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(fw, part.Content); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/doctors/register/doctor", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		log.Println("Error from doctor registration request:", err)
		return "", errors.New(FAILED_TO_ADD_DOCTOR)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(remoteErrorMessage(resp.Body, FAILED_TO_ADD_DOCTOR))
	}
	return "Doctor added successfully!", nil
}

/*
* GET the doctor list from the remote API
 */
func (a *DoctorAPI) FetchDoctors(ctx context.Context) ([]models.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/api/doctors/data", nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		log.Println("Error fetching doctors:", err)
		return nil, errors.New(FAILED_TO_FETCH_DOCTORS)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(remoteErrorMessage(resp.Body, FAILED_TO_FETCH_DOCTORS))
	}
	var doctors []models.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		log.Println("Error decoding doctor list:", err)
		return nil, errors.New(FAILED_TO_FETCH_DOCTORS)
	}
	return doctors, nil
}

/*
* DELETE the doctor with the given id on the remote API
* The remote message field is surfaced when present
 */
func (a *DoctorAPI) DeleteDoctor(ctx context.Context, doctorId string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, a.BaseURL+"/api/doctors/delete/"+doctorId, nil)
	if err != nil {
		return "", err
	}
	resp, err := a.Client.Do(req)
	if err != nil {
		log.Println("Error deleting doctor:", err)
		return "", errors.New(FAILED_TO_DELETE_DOCTOR)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(remoteErrorMessage(resp.Body, FAILED_TO_DELETE_DOCTOR))
	}
	var body remoteMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message, nil
	}
	return DOCTOR_DELETED_MESSAGE, nil
}

func remoteErrorMessage(body io.Reader, fallback string) string {
	var msg remoteMessage
	if err := json.NewDecoder(body).Decode(&msg); err == nil {
		if msg.Msg != "" {
			return msg.Msg
		}
		if msg.Message != "" {
			return msg.Message
		}
	}
	return fallback
}

// registrationFields lists the plain form fields forwarded to the remote API. The
// password is handled separately and confirmPassword never leaves this service.
func registrationFields(reg models.DoctorRegistration) map[string]string {
	return map[string]string{
		"name":                   reg.Name,
		"qualification":          reg.Qualification,
		"gender":                 reg.Gender,
		"experience":             reg.Experience,
		"checkUpTime":            reg.CheckUpTime,
		"workOn":                 reg.WorkOn,
		"specialtyType":          reg.SpecialtyType,
		"workingTime":            reg.WorkingTime,
		"breakTime":              reg.BreakTime,
		"age":                    reg.Age,
		"phoneNumber":            reg.PhoneNumber,
		"email":                  reg.Email,
		"city":                   reg.City,
		"state":                  reg.State,
		"country":                reg.Country,
		"doctorAddress":          reg.DoctorAddress,
		"zipCode":                reg.ZipCode,
		"description":            reg.Description,
		"hospital":               reg.Hospital,
		"currentHospital":        reg.CurrentHospital,
		"hospitalWebsiteLink":    reg.HospitalWebsiteLink,
		"emergencyPhoneNumber":   reg.EmergencyPhoneNumber,
		"hospitalAddress":        reg.HospitalAddress,
		"onlineConsultationRate": reg.OnlineConsultationRate,
	}
}

func validateDoctorRegistration(reg models.DoctorRegistration) error {
	fields := registrationFields(reg)
	// Map iteration order is random, collect misses and report one deterministically.
	missing := ""
	for name, value := range fields {
		if strings.TrimSpace(value) == "" && (missing == "" || name < missing) {
			missing = name
		}
	}
	if missing != "" {
		return fmt.Errorf("%s is required", missing)
	}
	if strings.TrimSpace(reg.Password) == "" {
		return errors.New("password is required")
	}
	if reg.Password != reg.ConfirmPassword {
		return errors.New(PASSWORDS_DO_NOT_MATCH)
	}
	return nil
}

var doctorAPI *DoctorAPI

// InitDoctorAPI wires the package-level client used by the controllers.
func InitDoctorAPI(baseURL string) {
	doctorAPI = NewDoctorAPI(baseURL)
}

func RegisterDoctor(ctx context.Context, reg models.DoctorRegistration, photo, signature *FilePart, token string) (string, error) {
	return doctorAPI.RegisterDoctor(ctx, reg, photo, signature, token)
}

func FetchDoctors(ctx context.Context) ([]models.Doctor, error) {
	return doctorAPI.FetchDoctors(ctx)
}

func DeleteDoctor(ctx context.Context, doctorId string) (string, error) {
	return doctorAPI.DeleteDoctor(ctx, doctorId)
}
