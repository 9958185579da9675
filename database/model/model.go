package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Role string

const (
	RoleUser       Role = "USER"
	RoleInstructor Role = "INSTRUCTOR"
	RoleAdmin      Role = "ADMIN"
)

// ValidRole reports whether r is one of the fixed role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// RoleList is a user's role set, stored as a JSON array in a single column.
// Membership is exact: ADMIN does not imply USER or INSTRUCTOR.
type RoleList []Role

func (r RoleList) Value() (driver.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *RoleList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("cannot scan %T into RoleList", value)
	}
}

func (r RoleList) Has(role Role) bool {
	for _, item := range r {
		if item == role {
			return true
		}
	}
	return false
}

type User struct {
	Id           int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string   `json:"name"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"column:password_hash;not null"`
	Roles        RoleList `json:"roles" gorm:"not null"`
	Premium      bool     `json:"isPremium"`
}

// Public returns the projection of a user that auth responses carry.
// Role set and password hash stay out of it.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":        u.Id,
		"name":      u.Name,
		"email":     u.Email,
		"isPremium": u.Premium,
	}
}

type Course struct {
	Id            int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Code          string         `json:"courseId" gorm:"column:course_id;uniqueIndex;not null"`
	Title         string         `json:"title" gorm:"not null"`
	Instructor    string         `json:"instructor"`
	Rating        float64        `json:"rating"`
	Students      int            `json:"students"`
	Duration      string         `json:"duration"`
	Level         string         `json:"level"`
	Price         float64        `json:"price"`
	DiscountPrice float64        `json:"discountPrice"`
	Image         string         `json:"image"`
	Featured      bool           `json:"featured"`
	Category      string         `json:"category"`
	Premium       bool           `json:"premium"`
	Link          string         `json:"link"`
	Description   string         `json:"description" gorm:"size:1000"`
	Modules       []CourseModule `json:"modules" gorm:"foreignKey:CourseId;references:Id"`
}

type CourseModule struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	CourseId    int    `json:"-" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"size:1000"`
}

// Enrollment links one user to one course. The composite unique index is
// the final arbiter of the at-most-one-enrollment-per-pair invariant under
// concurrent requests.
type Enrollment struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId     int       `json:"userId" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseId   int       `json:"-" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Course     Course    `json:"course" gorm:"foreignKey:CourseId;references:Id"`
	EnrolledAt time.Time `json:"enrollmentDate"`
	Progress   float64   `json:"progress"`
}

type VideoCallSchedule struct {
	Id     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId int    `json:"-" gorm:"index;not null"`
	CallId string `json:"callId" gorm:"uniqueIndex"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
}
