package controllers

import (
	"ClinicDesk/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func HealthRecord(router *gin.Engine) {
	record := router.Group("/healthrecord")
	record.GET("/fetch", authorization.Authorize("healthrecord", "view"), FetchHealthRecord)
}

func FetchHealthRecord(c *gin.Context) {
	c.JSON(200, util.SuccessResponse(services.FetchHealthRecord()))
}
