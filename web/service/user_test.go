package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("Alice", "Alice@Example.com ", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, model.RoleList{model.RoleUser}, user.Roles)
	assert.False(t, user.Premium)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	// Same email with different case and whitespace is taken.
	_, err = userService.Register("Alice Again", "ALICE@example.COM", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	authed, err := userService.Authenticate("alice@example.com", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, authed.Id)

	// Case-variant lookup resolves to the same account.
	authed, err = userService.Authenticate(" ALICE@EXAMPLE.COM", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, authed.Id)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("Bob", "bob@example.com", "correct")
	assert.NoError(t, err)

	_, wrongPassword := userService.Authenticate("bob@example.com", "wrong")
	_, missingUser := userService.Authenticate("nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, missingUser, ErrInvalidCredentials)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("NoEmail", "   ", "pass")
	assert.Error(t, err)

	_, err = userService.Register("NoPass", "nopass@example.com", "")
	assert.Error(t, err)
}

func TestUpdateRoles(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("Carol", "carol@example.com", "pw")
	assert.NoError(t, err)

	updated, err := userService.UpdateRoles(user.Id, model.RoleList{model.RoleInstructor, model.RoleUser})
	assert.NoError(t, err)
	assert.True(t, updated.Roles.Has(model.RoleInstructor))
	assert.True(t, updated.Roles.Has(model.RoleUser))
	assert.False(t, updated.Roles.Has(model.RoleAdmin))

	_, err = userService.UpdateRoles(user.Id, model.RoleList{})
	assert.Error(t, err)

	_, err = userService.UpdateRoles(user.Id, model.RoleList{"SUPERUSER"})
	assert.Error(t, err)
}

func TestUpgradeToPremiumIsIdempotent(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("Dave", "dave@example.com", "pw")
	assert.NoError(t, err)
	assert.False(t, user.Premium)

	upgraded, err := userService.UpgradeToPremium(user.Id)
	assert.NoError(t, err)
	assert.True(t, upgraded.Premium)

	again, err := userService.UpgradeToPremium(user.Id)
	assert.NoError(t, err)
	assert.True(t, again.Premium)
}

func TestSeededUsers(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	admin, err := userService.Authenticate("admin@learnify.com", "admin123")
	assert.NoError(t, err)
	assert.True(t, admin.Roles.Has(model.RoleAdmin))
	assert.True(t, admin.Premium)

	user, err := userService.Authenticate("user@learnify.com", "password")
	assert.NoError(t, err)
	assert.True(t, user.Roles.Has(model.RoleUser))
	assert.False(t, user.Premium)

	instructor, err := userService.Authenticate("instructor@learnify.com", "password")
	assert.NoError(t, err)
	assert.True(t, instructor.Roles.Has(model.RoleInstructor))
}

func TestResetPassword(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("Eve", "eve@example.com", "old")
	assert.NoError(t, err)

	assert.NoError(t, userService.ResetPasswordByEmail("eve@example.com", "new"))

	_, err = userService.Authenticate("eve@example.com", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	authed, err := userService.Authenticate("eve@example.com", "new")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, authed.Id)
}
