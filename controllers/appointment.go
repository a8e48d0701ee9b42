package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Appointment(c *gin.Engine) {
	appointment := c.Group("appointment")
	{
		appointment.POST("/create", authorization.Authorize("appointment", "create"), CreateAppointment)
		appointment.GET("/fetch/:appointmentId", authorization.Authorize("appointment", "view"), FetchAppointmentByID)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchAllAppointments)
	}
}

// The tabs the panel renders. Anything else is a caller mistake, not an empty view.
var validTabs = map[string]bool{
	services.BucketToday:    true,
	services.BucketUpcoming: true,
	services.BucketPrevious: true,
	services.BucketCancel:   true,
}

/*
* Bind JSON
* And Pass to the store
* A failed slot write still answers 200, the record lives for this session
 */
func CreateAppointment(c *gin.Context) {
	var input models.AppointmentRecord
	if err := c.BindJSON(&input); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	created, err := services.CreateAppointment(input)
	if errors.Is(err, services.ErrNotPersisted) {
		c.JSON(200, util.SuccessResponse(gin.H{
			"appointment": created,
			"warning":     "appointment could not be saved to storage and will be kept for this session only",
		}))
		return
	}
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(created))
}

/*
* Get appointmentId from param
* Pass to the store
 */
func FetchAppointmentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("appointmentId"))
	if err != nil {
		c.JSON(400, util.FailedResponse(errors.New("appointmentId must be a number")))
		return
	}
	appointment, err := services.FetchAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointment))
}

/*
* Load the record list and project it with the search term and tab
* Unknown tab values are rejected, the cancel tab projects to an empty list
 */
func FetchAllAppointments(c *gin.Context) {
	search := c.Query("search")
	tab := c.DefaultQuery("tab", services.BucketToday)
	if !validTabs[tab] {
		c.JSON(400, util.FailedResponse(errors.New("tab must be one of today, upcoming, previous, cancel")))
		return
	}
	records := services.LoadAppointments()
	result := services.ProjectAppointments(records, search, tab, time.Now())
	c.JSON(200, util.SuccessResponse(result))
}
