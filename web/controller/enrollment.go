package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/middleware"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// EnrollmentController serves enrollment creation, listing, progress and
// the public enrollment check.
type EnrollmentController struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentController(g *gin.RouterGroup) *EnrollmentController {
	a := &EnrollmentController{}
	a.initRouter(g)
	return a
}

func (a *EnrollmentController) initRouter(g *gin.RouterGroup) {
	enrollments := g.Group("/enrollments")

	// The check endpoint answers for anonymous callers too.
	enrollments.GET("/check/:courseId", middleware.OptionalAuth(), a.checkEnrollment)

	authed := enrollments.Group("", middleware.AuthRequired())
	authed.POST("/:courseId", a.enroll)
	authed.GET("/user", a.getUserEnrollments)
	authed.PATCH("/:enrollmentId/progress", a.updateProgress)
}

func (a *EnrollmentController) enroll(c *gin.Context) {
	user := middleware.GetUser(c)
	courseId := c.Param("courseId")

	enrollment, already, err := a.enrollmentService.Enroll(user, courseId)
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Course not found",
		})
	case errors.Is(err, service.ErrPremiumRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"success":         false,
			"message":         "Premium subscription required to enroll in this course",
			"requiresPremium": true,
		})
	case err != nil:
		logger.Warning("enroll failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "enrollment failed",
		})
	case already:
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"message":    "Already enrolled in this course",
			"enrollment": enrollment,
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success":    true,
			"message":    "Successfully enrolled in course",
			"enrollment": enrollment,
		})
	}
}

func (a *EnrollmentController) checkEnrollment(c *gin.Context) {
	user := middleware.GetUser(c)

	check, err := a.enrollmentService.CheckEnrollment(user, c.Param("courseId"))
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	} else if err != nil {
		jsonMsg(c, "check enrollment", err)
		return
	}
	c.JSON(http.StatusOK, check)
}

func (a *EnrollmentController) getUserEnrollments(c *gin.Context) {
	user := middleware.GetUser(c)

	enrollments, err := a.enrollmentService.GetEnrollmentsByUser(user)
	if err != nil {
		jsonMsg(c, "get enrollments", err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

type progressForm struct {
	Progress *float64 `json:"progress" binding:"required"`
}

func (a *EnrollmentController) updateProgress(c *gin.Context) {
	user := middleware.GetUser(c)

	enrollmentId, err := strconv.Atoi(c.Param("enrollmentId"))
	if err != nil {
		jsonMsg(c, "invalid enrollment id", err)
		return
	}
	var form progressForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonMsg(c, "progress is required", err)
		return
	}

	enrollment, err := a.enrollmentService.UpdateProgress(user, enrollmentId, *form.Progress)
	if errors.Is(err, service.ErrEnrollmentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
		return
	} else if err != nil {
		jsonMsg(c, "update progress", err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}
