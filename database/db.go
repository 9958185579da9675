package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/ShashankRaghuram1509/learnify-spotify/config"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminEmail      = "admin@learnify.com"
	defaultAdminPassword   = "admin123"
	defaultSeedPassword    = "password"
	defaultUserEmail       = "user@learnify.com"
	defaultInstructorEmail = "instructor@learnify.com"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Course{},
		&model.CourseModule{},
		&model.Enrollment{},
		&model.VideoCallSchedule{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func seedUser(name, email, password string, roles model.RoleList, premium bool) error {
	var count int64
	err := db.Model(model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
		Premium:      premium,
	}
	return db.Create(user).Error
}

func initUsers() error {
	if err := seedUser("Admin", defaultAdminEmail, defaultAdminPassword,
		model.RoleList{model.RoleAdmin}, true); err != nil {
		return err
	}
	if err := seedUser("Test User", defaultUserEmail, defaultSeedPassword,
		model.RoleList{model.RoleUser}, false); err != nil {
		return err
	}
	return seedUser("Test Instructor", defaultInstructorEmail, defaultSeedPassword,
		model.RoleList{model.RoleInstructor}, false)
}

func initCourses() error {
	empty, err := isTableEmpty("courses")
	if err != nil {
		log.Printf("Error checking if courses table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}
	for _, course := range sampleCourses() {
		if err := db.Create(course).Error; err != nil {
			return err
		}
	}
	return nil
}

func sampleCourses() []*model.Course {
	return []*model.Course{
		{
			Code:        "dsa-java",
			Title:       "Data Structures and Algorithms in Java",
			Instructor:  "Dr. Rajesh Kumar",
			Rating:      4.8,
			Students:    3450,
			Duration:    "10 weeks",
			Level:       "Intermediate",
			Image:       "https://media.geeksforgeeks.org/img-practice/banner/dsa-self-paced-thumbnail.png",
			Featured:    true,
			Category:    "data-structures",
			Premium:     false,
			Link:        "https://www.geeksforgeeks.org/data-structures/",
			Description: "Master data structures and algorithms using Java with comprehensive lessons, examples, and practice problems.",
			Modules: []model.CourseModule{
				{Title: "Arrays and Strings", Description: "Introduction to arrays, string manipulation and common problems."},
				{Title: "Linked Lists", Description: "Understanding singly and doubly linked lists with implementation."},
				{Title: "Stacks and Queues", Description: "Implementation and applications of stacks and queues."},
				{Title: "Trees and Graphs", Description: "Binary trees, BST, heaps and graph algorithms."},
			},
		},
		{
			Code:        "python-basics",
			Title:       "Python Programming for Beginners",
			Instructor:  "Sarah Williams",
			Rating:      4.7,
			Students:    5120,
			Duration:    "8 weeks",
			Level:       "Beginner",
			Featured:    true,
			Category:    "programming",
			Premium:     false,
			Description: "Learn Python from scratch covering syntax, data types, control flow, functions and file handling.",
			Modules: []model.CourseModule{
				{Title: "Getting Started", Description: "Installing Python, the interpreter and writing the first program."},
				{Title: "Data Types and Variables", Description: "Numbers, strings, lists, dictionaries and tuples."},
				{Title: "Control Flow", Description: "Conditionals, loops and comprehensions."},
			},
		},
		{
			Code:        "web-fundamentals",
			Title:       "Web Development Fundamentals",
			Instructor:  "Mike Chen",
			Rating:      4.5,
			Students:    2890,
			Duration:    "6 weeks",
			Level:       "Beginner",
			Category:    "web-development",
			Premium:     false,
			Description: "HTML, CSS and JavaScript essentials for building modern web pages.",
			Modules: []model.CourseModule{
				{Title: "HTML Basics", Description: "Document structure, elements and semantic markup."},
				{Title: "CSS Styling", Description: "Selectors, layout, flexbox and responsive design."},
				{Title: "JavaScript Essentials", Description: "Variables, functions, DOM manipulation and events."},
			},
		},
		{
			Code:          "react-advanced",
			Title:         "Advanced React and State Management",
			Instructor:    "Priya Sharma",
			Rating:        4.9,
			Students:      1640,
			Duration:      "12 weeks",
			Level:         "Advanced",
			Price:         99.99,
			DiscountPrice: 79.99,
			Featured:      true,
			Category:      "web-development",
			Premium:       true,
			Description:   "Hooks in depth, context, performance optimization and large-scale state management patterns.",
			Modules: []model.CourseModule{
				{Title: "Hooks in Depth", Description: "useEffect, useMemo, useCallback and custom hooks."},
				{Title: "State Management", Description: "Context, reducers and external stores."},
				{Title: "Performance", Description: "Profiling, memoization and rendering optimization."},
			},
		},
		{
			Code:          "system-design",
			Title:         "System Design for Interviews",
			Instructor:    "Dr. Rajesh Kumar",
			Rating:        4.8,
			Students:      980,
			Duration:      "10 weeks",
			Level:         "Advanced",
			Price:         129.99,
			DiscountPrice: 99.99,
			Category:      "system-design",
			Premium:       true,
			Description:   "Scalability, caching, sharding, messaging and designing real-world distributed systems.",
			Modules: []model.CourseModule{
				{Title: "Scalability Basics", Description: "Vertical vs horizontal scaling, load balancing."},
				{Title: "Storage and Caching", Description: "Replication, partitioning and cache strategies."},
				{Title: "Case Studies", Description: "Designing a URL shortener, feed and chat system."},
			},
		},
	}
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initUsers(); err != nil {
		return err
	}
	if err := initCourses(); err != nil {
		return err
	}

	return nil
}

func CloseDB() error {
	if db != nil {

		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// IsDuplicate reports whether err comes from a unique constraint violation.
// The sqlite driver does not always translate to gorm.ErrDuplicatedKey, so
// the raw message is checked as well.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func Checkpoint() error {
	// Update WAL
	err := db.Exec("PRAGMA wal_checkpoint;").Error
	if err != nil {
		return err
	}
	return nil
}
