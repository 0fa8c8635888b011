package services

import (
	"errors"
	"regexp"

	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/pkg/apperr"
	"github.com/shashiranjanraj/sweetshop/pkg/auth"
	"gorm.io/gorm"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService registers identities and authenticates logins.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new USER-role identity. The returned user carries
// no password hash in its JSON form.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, apperr.New(apperr.Validation, "All fields are required")
	}
	if len(password) < 6 {
		return models.User{}, apperr.New(apperr.Validation, "Password must be at least 6 characters")
	}
	if !emailRE.MatchString(email) {
		return models.User{}, apperr.New(apperr.Validation, "Invalid email format")
	}

	_, err := s.users.FindByEmail(email)
	switch {
	case err == nil:
		return models.User{}, apperr.New(apperr.Validation, "Email already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to register user", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to register user", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to register user", err)
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token. Both unknown
// email and wrong password yield the same generic error so the response
// never reveals whether the email exists.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", apperr.New(apperr.Unauthenticated, "Invalid credentials")
		}
		return models.User{}, "", apperr.Wrap(apperr.Internal, "Failed to log in", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", apperr.New(apperr.Unauthenticated, "Invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return models.User{}, "", apperr.Wrap(apperr.Internal, "Failed to log in", err)
	}

	return user, token, nil
}
