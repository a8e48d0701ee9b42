package main

import (
	"ClinicDesk/jobs"
	"ClinicDesk/routes"
	"ClinicDesk/services"
	"ClinicDesk/storage"
	"log"
	"os"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	slotPath := os.Getenv("APPOINTMENTS_FILE")
	if slotPath == "" {
		slotPath = "data/appointments.json"
	}
	services.InitAppointmentStore(storage.NewFileSlot(slotPath))
	services.InitDoctorAPI(os.Getenv("DOCTOR_API_BASE_URL"))

	defaultopts := server.GetDefaultOptions()

	options := server.Options{
		// The appointment book lives in the slot file, no database behind this panel.
		CacheEnabled:     false,
		MongoEnabled:     false,
		WebServerEnabled: defaultopts.WebServerEnabled,
		WebServerPort:    defaultopts.WebServerPort,

		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			jobs.StartDailyScheduler()
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r)
		},
	}
	startServer(options)
}
