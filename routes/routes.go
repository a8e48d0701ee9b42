package routes

import (
	"ClinicDesk/controllers"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Appointment(r)
	controllers.Doctor(r)
	controllers.HealthRecord(r)
}
