package services

import (
	"strings"
	"time"

	"ClinicDesk/models"
)

// Tab values the appointment list understands. Cancel is part of the UI tab set but
// no cancelled status exists, so it always projects to an empty list.
const (
	BucketToday    = "today"
	BucketUpcoming = "upcoming"
	BucketPrevious = "previous"
	BucketCancel   = "cancel"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseAppointmentDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

/*
* Pure projection over the record list, never mutates it
* Case-insensitive substring match on patientName, empty term matches all
* Bucket membership is derived from now on every call, never stored
* Records with unparsable dates are excluded from every bucket
 */
func ProjectAppointments(records []models.AppointmentRecord, searchTerm, bucket string, now time.Time) []models.AppointmentRecord {
	term := strings.ToLower(searchTerm)
	result := []models.AppointmentRecord{}
	for _, record := range records {
		if term != "" && !strings.Contains(strings.ToLower(record.PatientName), term) {
			continue
		}
		date, err := parseAppointmentDate(record.Date)
		if err != nil {
			continue
		}
		if !matchesBucket(date, bucket, now) {
			continue
		}
		result = append(result, record)
	}
	return result
}

func matchesBucket(date time.Time, bucket string, now time.Time) bool {
	switch bucket {
	case BucketToday:
		// Calendar-day equality, not a 24-hour window.
		d := date.In(now.Location())
		return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
	case BucketUpcoming:
		return date.After(now)
	case BucketPrevious:
		return date.Before(now)
	default:
		return false
	}
}
