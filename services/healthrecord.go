package services

import "ClinicDesk/models"

/*
* Read-only composition for the patient panel
* The panel has no mutation operations, so this is a fixed record
 */
func FetchHealthRecord() models.HealthRecord {
	return models.HealthRecord{
		Profile: models.PatientProfile{
			Name:    "Marcus Philips",
			Phone:   "99130 44537",
			Email:   "john@gmail.com",
			Gender:  models.GenderMale,
			DOB:     "2 Jan, 2022",
			Height:  "160 cm",
			Weight:  "50 Kg",
			Country: "India",
			State:   "Gujarat",
			Address: "B-408 Swastik Society, Mota Varacha Rajkot",
		},
		MedicalHistory: []models.MedicalHistoryEntry{
			{Title: "Diagnosis 1", Date: "2 Jan, 2022", Description: "A brief description of the medical condition goes here."},
			{Title: "Diagnosis 2", Date: "15 Feb, 2022", Description: "Another medical condition description goes here."},
			{Title: "Diagnosis 3", Date: "5 Mar, 2022", Description: "Further medical details and brief about the condition."},
		},
		Prescriptions: []models.Prescription{
			{Hospital: "Apollo Hospital", Date: "2 Jan, 2022", Disease: "Fever"},
			{Hospital: "Medanta Hospital", Date: "15 Feb, 2022", Disease: "Allergy"},
			{Hospital: "Manipal Hospital", Date: "5 Mar, 2022", Disease: "Cold"},
		},
		TestReports: []models.TestReport{
			{Title: "Pathology Test", Result: "Viral Infection", Doctor: "Dr. Marcus Philips"},
			{Title: "Blood Test", Result: "Low Hemoglobin", Doctor: "Dr. Sarah Johnson"},
		},
		Status:     "Stable",
		StatusNote: "Your current health condition is stable. Please continue following the prescribed medications and maintain a healthy lifestyle.",
	}
}
