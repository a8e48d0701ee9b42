package controllers

import (
	"log"
	"strings"

	"ClinicDesk/models"
	"ClinicDesk/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Doctor(router *gin.Engine) {
	doctor := router.Group("/doctor")
	doctor.POST("/register", authorization.Authorize("doctor", "create"), RegisterDoctor)
	doctor.GET("/fetchAll", authorization.Authorize("doctor", "view"), FetchAllDoctors)
	doctor.DELETE("/delete/:doctorId", authorization.Authorize("doctor", "delete"), DeleteDoctor)
}

/*
* Bind the multipart registration form and the two image parts
* Forward to the remote doctor API with the caller's bearer token
 */
func RegisterDoctor(c *gin.Context) {
	var reg models.DoctorRegistration
	if err := c.ShouldBind(&reg); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	photo, err := formFilePart(c, "profileImage")
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if photo != nil {
		defer photo.Content.Close()
	}
	signature, err := formFilePart(c, "signatureImage")
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if signature != nil {
		defer signature.Content.Close()
	}
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	msg, err := services.RegisterDoctor(c, reg, photo, signature, token)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

/*
* Pass to the remote doctor API
 */
func FetchAllDoctors(c *gin.Context) {
	doctors, err := services.FetchDoctors(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}

/*
* Get doctorId from param
* Pass to the remote doctor API
 */
func DeleteDoctor(c *gin.Context) {
	doctorId := c.Param("doctorId")
	msg, err := services.DeleteDoctor(c, doctorId)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(msg))
}

// formFilePart reads an optional uploaded file. A missing part is not an error.
func formFilePart(c *gin.Context, name string) (*services.FilePart, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		log.Println("Error opening uploaded file:", err)
		return nil, err
	}
	return &services.FilePart{Filename: header.Filename, Content: file}, nil
}
