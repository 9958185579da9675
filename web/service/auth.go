package service

import (
	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
)

// AuthService orchestrates credential verification and token issuance.
type AuthService struct {
	userService UserService
}

// Login verifies the credentials and issues a fresh token. Every failed
// verification surfaces as ErrInvalidCredentials regardless of cause.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.userService.Authenticate(email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := DefaultTokenService().Issue(user)
	if err != nil {
		logger.Error("issue token err:", err)
		return "", nil, err
	}
	return token, user, nil
}

// Signup registers a new user and issues a token for it in one step, so the
// client is logged in right after registration.
func (s *AuthService) Signup(name, email, password string) (string, *model.User, error) {
	user, err := s.userService.Register(name, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := DefaultTokenService().Issue(user)
	if err != nil {
		logger.Error("issue token err:", err)
		return "", nil, err
	}
	return token, user, nil
}
