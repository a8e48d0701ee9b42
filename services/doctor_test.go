package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ClinicDesk/models"
)

func validRegistration() models.DoctorRegistration {
	return models.DoctorRegistration{
		Name:                   "Dr. Marcus Philips",
		Qualification:          "MBBS",
		Gender:                 "Male",
		Experience:             "8",
		CheckUpTime:            "10:00-12:00",
		WorkOn:                 "Weekdays",
		SpecialtyType:          "General Medicine",
		WorkingTime:            "09:00-17:00",
		BreakTime:              "13:00-14:00",
		Age:                    "38",
		PhoneNumber:            "123-456-7890",
		Email:                  "marcus@clinic.example",
		City:                   "Rajkot",
		State:                  "Gujarat",
		Country:                "India",
		DoctorAddress:          "123 Elm Street",
		ZipCode:                "360001",
		Description:            "General practitioner",
		Hospital:               "Apollo Hospital",
		CurrentHospital:        "Apollo Hospital",
		HospitalWebsiteLink:    "https://apollo.example",
		EmergencyPhoneNumber:   "987-654-3210",
		HospitalAddress:        "456 Maple Street",
		OnlineConsultationRate: "500",
		Password:               "s3cret-pass",
		ConfirmPassword:        "s3cret-pass",
	}
}

func filePart(name, content string) *FilePart {
	return &FilePart{Filename: name, Content: io.NopCloser(strings.NewReader(content))}
}

func TestRegisterDoctorPasswordMismatchNeverCallsRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote API must not be called on validation failure")
	}))
	defer srv.Close()

	reg := validRegistration()
	reg.ConfirmPassword = "different"

	_, err := NewDoctorAPI(srv.URL).RegisterDoctor(context.Background(), reg, nil, nil, "")
	require.EqualError(t, err, PASSWORDS_DO_NOT_MATCH)
}

func TestRegisterDoctorMissingFieldFailsFast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote API must not be called on validation failure")
	}))
	defer srv.Close()

	reg := validRegistration()
	reg.Email = ""

	_, err := NewDoctorAPI(srv.URL).RegisterDoctor(context.Background(), reg, nil, nil, "")
	require.EqualError(t, err, "email is required")
}

func TestRegisterDoctorForwardsMultipartForm(t *testing.T) {
	reg := validRegistration()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/doctors/register/doctor", r.URL.Path)
		require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, reg.Name, r.FormValue("name"))
		require.Equal(t, reg.OnlineConsultationRate, r.FormValue("onlineConsultationRate"))

		// the password travels hashed, the confirmation never travels at all
		hashed := r.FormValue("password")
		require.NotEqual(t, reg.Password, hashed)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte(reg.Password)))
		require.Empty(t, r.FormValue("confirmPassword"))

		photo, header, err := r.FormFile("profileImage")
		require.NoError(t, err)
		defer photo.Close()
		require.Equal(t, "photo.png", header.Filename)
		content, err := io.ReadAll(photo)
		require.NoError(t, err)
		require.Equal(t, "photo-bytes", string(content))

		_, _, err = r.FormFile("signatureImage")
		require.NoError(t, err)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	msg, err := NewDoctorAPI(srv.URL).RegisterDoctor(context.Background(), reg,
		filePart("photo.png", "photo-bytes"), filePart("signature.png", "signature-bytes"), "admin-token")
	require.NoError(t, err)
	require.Equal(t, "Doctor added successfully!", msg)
}

func TestRegisterDoctorSurfacesRemoteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"Email already registered"}`))
	}))
	defer srv.Close()

	_, err := NewDoctorAPI(srv.URL).RegisterDoctor(context.Background(), validRegistration(), nil, nil, "")
	require.EqualError(t, err, "Email already registered")
}

func TestRegisterDoctorGenericMessageWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewDoctorAPI(srv.URL).RegisterDoctor(context.Background(), validRegistration(), nil, nil, "")
	require.EqualError(t, err, FAILED_TO_ADD_DOCTOR)
}

func TestFetchDoctors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/doctors/data", r.URL.Path)
		w.Write([]byte(`[{"_id":"d1","name":"Dr. Marcus Philips","specialtyType":"General Medicine"},{"_id":"d2","name":"Dr. Hayle Schleifer"}]`))
	}))
	defer srv.Close()

	doctors, err := NewDoctorAPI(srv.URL).FetchDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	require.Equal(t, "d1", doctors[0].ID)
	require.Equal(t, "General Medicine", doctors[0].SpecialtyType)
}

func TestFetchDoctorsRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewDoctorAPI(srv.URL).FetchDoctors(context.Background())
	require.EqualError(t, err, FAILED_TO_FETCH_DOCTORS)
}

func TestDeleteDoctor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/doctors/delete/d1", r.URL.Path)
		w.Write([]byte(`{"message":"Doctor removed"}`))
	}))
	defer srv.Close()

	msg, err := NewDoctorAPI(srv.URL).DeleteDoctor(context.Background(), "d1")
	require.NoError(t, err)
	require.Equal(t, "Doctor removed", msg)
}

func TestDeleteDoctorDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	msg, err := NewDoctorAPI(srv.URL).DeleteDoctor(context.Background(), "d1")
	require.NoError(t, err)
	require.Equal(t, DOCTOR_DELETED_MESSAGE, msg)
}

func TestDeleteDoctorRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No doctor with that id"}`))
	}))
	defer srv.Close()

	_, err := NewDoctorAPI(srv.URL).DeleteDoctor(context.Background(), "d9")
	require.EqualError(t, err, "No doctor with that id")
}

func TestNewDoctorAPIDefaultsBaseURL(t *testing.T) {
	api := NewDoctorAPI("")
	require.Equal(t, defaultDoctorAPIBaseURL, api.BaseURL)

	api = NewDoctorAPI("http://example.test/")
	require.Equal(t, "http://example.test", api.BaseURL)
}
