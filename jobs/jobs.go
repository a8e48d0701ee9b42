package jobs

import (
	"log"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/services"

	"github.com/robfig/cron/v3"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Appointment Summary...")
		RunTodaySummary(time.Now())
	})

	c.Start()
}

/*
* Load the store and project the day's bucket
* Log the per-doctor counts for the morning schedule
 */
func RunTodaySummary(now time.Time) {
	records := services.LoadAppointments()
	todays := services.ProjectAppointments(records, "", services.BucketToday, now)

	log.Printf("Appointments scheduled today: %d", len(todays))
	for doctor, count := range CountByDoctor(todays) {
		log.Printf("  %s: %d", doctor, count)
	}
}

func CountByDoctor(records []models.AppointmentRecord) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.DoctorName]++
	}
	return counts
}
