package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
)

func TestGetAllCoursesSeedsAndCaches(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	courses, err := courseService.GetAllCourses()
	assert.NoError(t, err)
	assert.Len(t, courses, 5)
	assert.NotEmpty(t, courses[0].Modules)

	// Second read comes from the cache and is identical.
	cached, err := courseService.GetAllCourses()
	assert.NoError(t, err)
	assert.Equal(t, courses, cached)
}

func TestGetCourseByCode(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	course, err := courseService.GetCourseByCode("dsa-java")
	assert.NoError(t, err)
	assert.Equal(t, "dsa-java", course.Code)
	assert.False(t, course.Premium)

	// The lookup is exact: no case folding, no numeric fallback.
	_, err = courseService.GetCourseByCode("DSA-JAVA")
	assert.ErrorIs(t, err, ErrCourseNotFound)
	_, err = courseService.GetCourseByCode("1")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseFilters(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	free, err := courseService.GetCoursesByPremium(false)
	assert.NoError(t, err)
	assert.Len(t, free, 3)

	premium, err := courseService.GetCoursesByPremium(true)
	assert.NoError(t, err)
	assert.Len(t, premium, 2)

	featured, err := courseService.GetFeaturedCourses()
	assert.NoError(t, err)
	assert.Len(t, featured, 3)

	web, err := courseService.GetCoursesByCategory("web-development")
	assert.NoError(t, err)
	assert.Len(t, web, 2)

	webPremium, err := courseService.GetCoursesByCategoryAndPremium("web-development", true)
	assert.NoError(t, err)
	assert.Len(t, webPremium, 1)
	assert.Equal(t, "react-advanced", webPremium[0].Code)
}

func TestCreateCourseFlushesCache(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	before, err := courseService.GetAllCourses()
	assert.NoError(t, err)

	err = courseService.CreateCourse(&model.Course{
		Code:     "go-backend",
		Title:    "Backend Development with Go",
		Category: "programming",
	})
	assert.NoError(t, err)

	after, err := courseService.GetAllCourses()
	assert.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	// Duplicate natural key is rejected.
	err = courseService.CreateCourse(&model.Course{Code: "go-backend", Title: "Again"})
	assert.Error(t, err)
}

func TestAddModule(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	err := courseService.AddModule("python-basics", &model.CourseModule{
		Title:       "Functions",
		Description: "Defining and calling functions, arguments and scope.",
	})
	assert.NoError(t, err)

	course, err := courseService.GetCourseByCode("python-basics")
	assert.NoError(t, err)
	assert.Len(t, course.Modules, 4)

	err = courseService.AddModule("no-such-course", &model.CourseModule{Title: "X"})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestDeleteCourse(t *testing.T) {
	setup(t)
	defer teardown()

	courseService := CourseService{}

	course, err := courseService.GetCourseByCode("web-fundamentals")
	assert.NoError(t, err)

	assert.NoError(t, courseService.DeleteCourse(course.Id))
	_, err = courseService.GetCourseByCode("web-fundamentals")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	assert.ErrorIs(t, courseService.DeleteCourse(course.Id), ErrCourseNotFound)
}
