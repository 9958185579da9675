package service

import (
	"errors"
	"time"

	"gorm.io/gorm/clause"

	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/common"
)

var (
	ErrPremiumRequired    = errors.New("premium subscription required")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// EnrollmentCheck is the read-only enrollment status for one user/course pair.
type EnrollmentCheck struct {
	Enrolled        bool              `json:"enrolled"`
	RequiresPremium bool              `json:"requiresPremium"`
	RequiresAuth    bool              `json:"requiresAuth,omitempty"`
	Progress        *float64          `json:"progress,omitempty"`
	Enrollment      *model.Enrollment `json:"enrollment,omitempty"`
}

// EnrollmentService is the only place enrollment rows are created.
type EnrollmentService struct {
	courseService CourseService
}

// Enroll admits a user into a course. The premium gate runs before any
// write. The returned bool reports whether the user was already enrolled;
// in that case the existing record comes back untouched.
//
// The insert goes through ON CONFLICT DO NOTHING against the unique
// (user_id, course_id) index, so two concurrent requests for the same pair
// cannot both create a row; the loser re-reads the winner's record.
func (s *EnrollmentService) Enroll(user *model.User, courseCode string) (*model.Enrollment, bool, error) {
	course, err := s.courseService.GetCourseByCode(courseCode)
	if err != nil {
		return nil, false, err
	}

	if course.Premium && !user.Premium {
		return nil, false, ErrPremiumRequired
	}

	db := database.GetDB()
	enrollment := &model.Enrollment{
		UserId:     user.Id,
		CourseId:   course.Id,
		EnrolledAt: time.Now(),
		Progress:   0.0,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(enrollment)
	if result.Error != nil {
		return nil, false, result.Error
	}
	already := result.RowsAffected == 0
	if !already {
		logger.Infof("user %s enrolled in course %s", user.Email, course.Code)
	}

	// Re-read so both the winner and the loser of a concurrent race see the
	// same stored record.
	stored := &model.Enrollment{}
	err = db.Preload("Course").
		Where("user_id = ? AND course_id = ?", user.Id, course.Id).
		First(stored).
		Error
	if err != nil {
		return nil, false, err
	}
	return stored, already, nil
}

// CheckEnrollment reports enrollment status without touching anything.
// An anonymous caller gets enrolled=false, requiresAuth=true and no error.
func (s *EnrollmentService) CheckEnrollment(user *model.User, courseCode string) (*EnrollmentCheck, error) {
	if user == nil {
		return &EnrollmentCheck{Enrolled: false, RequiresAuth: true}, nil
	}

	course, err := s.courseService.GetCourseByCode(courseCode)
	if err != nil {
		return nil, err
	}

	check := &EnrollmentCheck{
		RequiresPremium: course.Premium && !user.Premium,
	}

	enrollment := &model.Enrollment{}
	err = database.GetDB().
		Where("user_id = ? AND course_id = ?", user.Id, course.Id).
		First(enrollment).
		Error
	if database.IsNotFound(err) {
		return check, nil
	} else if err != nil {
		return nil, err
	}

	check.Enrolled = true
	check.Enrollment = enrollment
	check.Progress = &enrollment.Progress
	return check, nil
}

func (s *EnrollmentService) GetEnrollmentsByUser(user *model.User) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := database.GetDB().Preload("Course").
		Where("user_id = ?", user.Id).
		Order("id").
		Find(&enrollments).
		Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// UpdateProgress records course progress for one of the user's own
// enrollments. Progress is a ratio in [0, 1].
func (s *EnrollmentService) UpdateProgress(user *model.User, enrollmentId int, progress float64) (*model.Enrollment, error) {
	if progress < 0.0 || progress > 1.0 {
		return nil, common.NewErrorf("progress %v out of range [0, 1]", progress)
	}

	db := database.GetDB()
	enrollment := &model.Enrollment{}
	err := db.Where("id = ?", enrollmentId).First(enrollment).Error
	if database.IsNotFound(err) {
		return nil, ErrEnrollmentNotFound
	} else if err != nil {
		return nil, err
	}
	// Somebody else's enrollment looks the same as a missing one.
	if enrollment.UserId != user.Id {
		return nil, ErrEnrollmentNotFound
	}

	enrollment.Progress = progress
	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}
