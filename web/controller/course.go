package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/middleware"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// CourseController serves the public catalog plus the admin-only
// catalog mutations.
type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(g *gin.RouterGroup) *CourseController {
	a := &CourseController{}
	a.initRouter(g)
	return a
}

func (a *CourseController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/courses")

	g.GET("", a.getAllCourses)
	g.GET("/featured", a.getFeaturedCourses)
	g.GET("/free", a.getFreeCourses)
	g.GET("/premium", a.getPremiumCourses)
	g.GET("/category/:category", a.getCoursesByCategory)
	g.GET("/category/:category/type/:premium", a.getCoursesByCategoryAndType)
	g.GET("/:courseId", a.getCourse)

	admin := g.Group("", middleware.AuthRequired(), middleware.RequireRole(model.RoleAdmin))
	admin.POST("", a.createCourse)
	admin.DELETE("/:id", a.deleteCourse)
	admin.POST("/:courseId/modules", a.addModule)
}

func (a *CourseController) getAllCourses(c *gin.Context) {
	courses, err := a.courseService.GetAllCourses()
	if err != nil {
		jsonMsg(c, "get courses", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getFeaturedCourses(c *gin.Context) {
	courses, err := a.courseService.GetFeaturedCourses()
	if err != nil {
		jsonMsg(c, "get featured courses", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getFreeCourses(c *gin.Context) {
	courses, err := a.courseService.GetCoursesByPremium(false)
	if err != nil {
		jsonMsg(c, "get free courses", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getPremiumCourses(c *gin.Context) {
	courses, err := a.courseService.GetCoursesByPremium(true)
	if err != nil {
		jsonMsg(c, "get premium courses", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getCoursesByCategory(c *gin.Context) {
	courses, err := a.courseService.GetCoursesByCategory(c.Param("category"))
	if err != nil {
		jsonMsg(c, "get courses by category", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getCoursesByCategoryAndType(c *gin.Context) {
	premium := c.Param("premium") == "premium"
	courses, err := a.courseService.GetCoursesByCategoryAndPremium(c.Param("category"), premium)
	if err != nil {
		jsonMsg(c, "get courses by category", err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (a *CourseController) getCourse(c *gin.Context) {
	course, err := a.courseService.GetCourseByCode(c.Param("courseId"))
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	} else if err != nil {
		jsonMsg(c, "get course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (a *CourseController) createCourse(c *gin.Context) {
	course := &model.Course{}
	if err := c.ShouldBindJSON(course); err != nil {
		jsonMsg(c, "invalid course", err)
		return
	}
	if err := a.courseService.CreateCourse(course); err != nil {
		jsonMsg(c, "create course", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (a *CourseController) deleteCourse(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "invalid course id", err)
		return
	}
	err = a.courseService.DeleteCourse(id)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	jsonMsg(c, "delete course", err)
}

func (a *CourseController) addModule(c *gin.Context) {
	module := &model.CourseModule{}
	if err := c.ShouldBindJSON(module); err != nil {
		jsonMsg(c, "invalid module", err)
		return
	}
	err := a.courseService.AddModule(c.Param("courseId"), module)
	if errors.Is(err, service.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	} else if err != nil {
		jsonMsg(c, "add module", err)
		return
	}
	c.JSON(http.StatusCreated, module)
}
