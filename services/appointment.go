package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/storage"
)

// ErrNotPersisted reports that a created appointment could not be written to the
// slot. The in-memory list stays authoritative for the rest of the session.
var ErrNotPersisted = errors.New("appointment kept in memory only, storage write failed")

// AppointmentStore owns the ordered appointment list and the slot it survives in.
// The slot holds the full list as one JSON document and is rewritten on every create.
type AppointmentStore struct {
	mu      sync.RWMutex
	slot    storage.Slot
	records []models.AppointmentRecord
	loaded  bool
	now     func() time.Time
}

func NewAppointmentStore(slot storage.Slot) *AppointmentStore {
	return &AppointmentStore{slot: slot, now: time.Now}
}

/*
* Build the fixed seed set used when the slot is empty or unreadable
* First record falls on the given day, second on the day after
 */
func SeedAppointments(now time.Time) []models.AppointmentRecord {
	return []models.AppointmentRecord{
		{
			ID:              1,
			PatientName:     "John Doe",
			PatientIssue:    "Fever",
			DoctorName:      "Dr. Marcus Philips",
			DiseaseName:     "Influenza",
			AppointmentTime: "10:00",
			AppointmentType: models.AppointmentInPerson,
			Date:            now.Format(time.RFC3339),
			PatientDetails: models.PatientDetails{
				Age:     32,
				Gender:  models.GenderMale,
				Phone:   "123-456-7890",
				Address: "123 Elm Street",
			},
		},
		{
			ID:              2,
			PatientName:     "Jane Smith",
			PatientIssue:    "Toothache",
			DoctorName:      "Dr. Hayle Schleifer",
			DiseaseName:     "Dental Infection",
			AppointmentTime: "14:30",
			AppointmentType: models.AppointmentOnline,
			Date:            now.AddDate(0, 0, 1).Format(time.RFC3339),
			PatientDetails: models.PatientDetails{
				Age:     28,
				Gender:  models.GenderFemale,
				Phone:   "987-654-3210",
				Address: "456 Maple Street",
			},
		},
	}
}

/*
* Read the slot once per session
* Absent or unparsable contents degrade to the seed set, which is persisted back
* Never surfaces an error to the caller
 */
func (s *AppointmentStore) Load() []models.AppointmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return copyRecords(s.records)
}

// ensureLoaded bootstraps the record list from the slot. Callers hold s.mu.
func (s *AppointmentStore) ensureLoaded() {
	if s.loaded {
		return
	}
	data, ok, err := s.slot.Read()
	if err != nil {
		log.Println("Error from slot.Read, falling back to seed data:", err)
	}
	if err == nil && ok {
		var records []models.AppointmentRecord
		if jsonErr := json.Unmarshal(data, &records); jsonErr == nil {
			s.records = records
			s.loaded = true
			return
		}
		log.Println("Stored appointments are unparsable, falling back to seed data")
	}
	s.records = SeedAppointments(s.now())
	s.loaded = true
	if err := s.persist(); err != nil {
		log.Println("Error while persisting seed appointments:", err)
	}
}

/*
* Validate the input fields
* Assign id as current record count + 1 and append
* Rewrite the whole slot; a failed write keeps the record in memory and reports
* ErrNotPersisted
 */
func (s *AppointmentStore) Create(input models.AppointmentRecord) (models.AppointmentRecord, error) {
	if input.AppointmentType == "" {
		input.AppointmentType = models.AppointmentInPerson
	}
	if err := validateAppointmentInput(input); err != nil {
		log.Println("Error from validateAppointmentInput:", err)
		return models.AppointmentRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	input.ID = len(s.records) + 1
	s.records = append(s.records, input)

	if err := s.persist(); err != nil {
		log.Println("Error while persisting appointments:", err)
		return input, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	return input, nil
}

/*
* Search the record list for the given id
 */
func (s *AppointmentStore) FetchByID(id int) (models.AppointmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return models.AppointmentRecord{}, errors.New("record not found")
}

// persist rewrites the slot with the full record list. Callers hold s.mu.
func (s *AppointmentStore) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return s.slot.Write(data)
}

func validateAppointmentInput(input models.AppointmentRecord) error {
	required := []struct {
		name  string
		value string
	}{
		{"patientName", input.PatientName},
		{"patientIssue", input.PatientIssue},
		{"doctorName", input.DoctorName},
		{"diseaseName", input.DiseaseName},
		{"appointmentTime", input.AppointmentTime},
		{"date", input.Date},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if _, err := time.Parse("15:04", input.AppointmentTime); err != nil {
		return errors.New("appointmentTime must be in HH:MM format")
	}
	if input.AppointmentType != models.AppointmentInPerson && input.AppointmentType != models.AppointmentOnline {
		return errors.New("appointmentType must be In-person or Online")
	}
	if _, err := parseAppointmentDate(input.Date); err != nil {
		return errors.New("date must be a valid calendar date")
	}
	if input.PatientDetails.Gender != models.GenderMale && input.PatientDetails.Gender != models.GenderFemale {
		return errors.New("gender must be Male or Female")
	}
	if input.PatientDetails.Age <= 0 {
		return errors.New("age must be a positive number")
	}
	return nil
}

func copyRecords(records []models.AppointmentRecord) []models.AppointmentRecord {
	out := make([]models.AppointmentRecord, len(records))
	copy(out, records)
	return out
}

var appointmentStore *AppointmentStore

// InitAppointmentStore wires the package-level store used by the controllers.
func InitAppointmentStore(slot storage.Slot) {
	appointmentStore = NewAppointmentStore(slot)
}

func LoadAppointments() []models.AppointmentRecord {
	return appointmentStore.Load()
}

func CreateAppointment(input models.AppointmentRecord) (models.AppointmentRecord, error) {
	return appointmentStore.Create(input)
}

func FetchAppointmentByID(id int) (models.AppointmentRecord, error) {
	return appointmentStore.FetchByID(id)
}
