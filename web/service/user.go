package service

import (
	"errors"
	"strings"

	"github.com/ShashankRaghuram1509/learnify-spotify/database"
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/common"
	"github.com/ShashankRaghuram1509/learnify-spotify/util/crypto"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// dummyHash keeps the latency of a missing-user login attempt close to a
// real bcrypt comparison, so account existence cannot be probed by timing.
var dummyHash, _ = crypto.HashPasswordAsBcrypt("learnify-timing-pad")

// NormalizeEmail case-folds and trims an email address. The normalized form
// is the natural key for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserService struct{}

// Register creates a new user with role USER and premium off. A concurrent
// signup with the same email loses against the unique index and surfaces as
// ErrEmailTaken, same as the pre-check.
func (s *UserService) Register(name, email, password string) (*model.User, error) {
	db := database.GetDB()
	email = NormalizeEmail(email)
	if email == "" {
		return nil, common.NewError("email can not be empty")
	} else if password == "" {
		return nil, common.NewError("password can not be empty")
	}

	var count int64
	if err := db.Model(model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        model.RoleList{model.RoleUser},
		Premium:      false,
	}
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email and password. Missing user and wrong password
// both come back as ErrInvalidCredentials so callers cannot tell them apart.
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", NormalizeEmail(email)).
		First(user).
		Error
	if database.IsNotFound(err) {
		crypto.CheckPasswordHash(dummyHash, password)
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("authenticate lookup err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) FindByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", NormalizeEmail(email)).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindById(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRoles replaces a user's role set. The set must be non-empty and may
// only contain values from the fixed enumeration.
func (s *UserService) UpdateRoles(id int, roles model.RoleList) (*model.User, error) {
	if len(roles) == 0 {
		return nil, common.NewError("role set can not be empty")
	}
	for _, role := range roles {
		if !model.ValidRole(role) {
			return nil, common.NewErrorf("unknown role: %s", role)
		}
	}

	user, err := s.FindById(id)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	if err := database.GetDB().Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ResetPassword(id int, password string) error {
	if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	return database.GetDB().Model(model.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).
		Error
}

func (s *UserService) ResetPasswordByEmail(email, password string) error {
	user, err := s.FindByEmail(email)
	if err != nil {
		return err
	}
	return s.ResetPassword(user.Id, password)
}

func (s *UserService) DeleteUser(id int) error {
	db := database.GetDB()
	result := db.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpgradeToPremium flips the premium flag. Already premium is not an error;
// the upgraded record comes back either way.
func (s *UserService) UpgradeToPremium(id int) (*model.User, error) {
	user, err := s.FindById(id)
	if err != nil {
		return nil, err
	}
	if user.Premium {
		return user, nil
	}
	user.Premium = true
	if err := database.GetDB().Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
