package service

import (
	"errors"

	"github.com/ShashankRaghuram1509/learnify-spotify/caching"
	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/common"
)

var ErrCourseNotFound = errors.New("course not found")

const (
	cacheKeyAllCourses      = "courses:all"
	cacheKeyFeaturedCourses = "courses:featured"
	cacheKeyFreeCourses     = "courses:free"
	cacheKeyPremiumCourses  = "courses:premium"
)

// CourseService serves the course catalog. List reads go through the
// in-memory cache; every mutation flushes it.
type CourseService struct{}

func (s *CourseService) GetAllCourses() ([]model.Course, error) {
	if cached, ok := caching.Get(cacheKeyAllCourses); ok {
		return cached.([]model.Course), nil
	}
	var courses []model.Course
	err := database.GetDB().Preload("Modules").Order("id").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	caching.Set(cacheKeyAllCourses, courses)
	return courses, nil
}

// GetCourseByCode resolves a course by its natural key. The lookup is a
// single exact match on course_id; there is deliberately no numeric-id or
// case-insensitive fallback.
func (s *CourseService) GetCourseByCode(code string) (*model.Course, error) {
	course := &model.Course{}
	err := database.GetDB().Preload("Modules").
		Where("course_id = ?", code).
		First(course).
		Error
	if database.IsNotFound(err) {
		return nil, ErrCourseNotFound
	} else if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetFeaturedCourses() ([]model.Course, error) {
	if cached, ok := caching.Get(cacheKeyFeaturedCourses); ok {
		return cached.([]model.Course), nil
	}
	var courses []model.Course
	err := database.GetDB().Where("featured = ?", true).Order("id").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	caching.Set(cacheKeyFeaturedCourses, courses)
	return courses, nil
}

func (s *CourseService) GetCoursesByPremium(premium bool) ([]model.Course, error) {
	key := cacheKeyFreeCourses
	if premium {
		key = cacheKeyPremiumCourses
	}
	if cached, ok := caching.Get(key); ok {
		return cached.([]model.Course), nil
	}
	var courses []model.Course
	err := database.GetDB().Where("premium = ?", premium).Order("id").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	caching.Set(key, courses)
	return courses, nil
}

func (s *CourseService) GetCoursesByCategory(category string) ([]model.Course, error) {
	var courses []model.Course
	err := database.GetDB().Where("category = ?", category).Order("id").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetCoursesByCategoryAndPremium(category string, premium bool) ([]model.Course, error) {
	var courses []model.Course
	err := database.GetDB().
		Where("category = ? AND premium = ?", category, premium).
		Order("id").
		Find(&courses).
		Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) CreateCourse(course *model.Course) error {
	if course.Code == "" {
		return common.NewError("courseId can not be empty")
	} else if course.Title == "" {
		return common.NewError("title can not be empty")
	}
	if err := database.GetDB().Create(course).Error; err != nil {
		if database.IsDuplicate(err) {
			return common.NewErrorf("course %s already exists", course.Code)
		}
		return err
	}
	caching.Flush()
	return nil
}

func (s *CourseService) DeleteCourse(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	caching.Flush()
	return nil
}

func (s *CourseService) AddModule(code string, module *model.CourseModule) error {
	if module.Title == "" {
		return common.NewError("module title can not be empty")
	}
	course, err := s.GetCourseByCode(code)
	if err != nil {
		return err
	}
	module.CourseId = course.Id
	if err := database.GetDB().Create(module).Error; err != nil {
		return err
	}
	caching.Flush()
	return nil
}
