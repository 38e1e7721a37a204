package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/crypto"
	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

// defaultProfilePicture is assigned to every new account; there is no
// profile editing surface.
const defaultProfilePicture = "/public/images/test.jpg"

// emailPattern decides whether a login identifier should be resolved as an
// email (decrypt-and-compare scan) or as a username (exact match).
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration and login. Emails are stored encrypted,
// so every email lookup is an O(n) decrypt-and-compare scan over all users;
// acceptable for small n.
type AuthService struct {
	users  repository.UserRepository
	cipher *crypto.Cipher
}

// NewAuthService creates an AuthService.
func NewAuthService(users repository.UserRepository, cipher *crypto.Cipher) *AuthService {
	if users == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if cipher == nil {
		panic("Cipher cannot be nil for AuthService")
	}
	return &AuthService{users: users, cipher: cipher}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input, hashes the password, encrypts the email and
// appends the new user. Checks run in form order: username uniqueness,
// email uniqueness, password confirmation.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	logCtx := logrus.WithField("username", in.Username)

	users, err := s.users.List(ctx)
	if err != nil {
		logCtx.WithError(err).Error("Failed to load users during registration")
		return nil, ErrInternalServer
	}

	for i := range users {
		if users[i].Username == in.Username {
			logCtx.Warn("Registration failed: username already taken")
			return nil, ErrUsernameTaken
		}
	}
	for i := range users {
		// A failed decrypt means a foreign or corrupt token; treat it as
		// "does not match" rather than failing the registration.
		if email, ok := s.cipher.Decrypt(users[i].Email); ok && email == in.Email {
			logCtx.Warn("Registration failed: email already in use")
			return nil, ErrEmailTaken
		}
	}
	if in.Password != in.ConfirmPassword {
		logCtx.Warn("Registration failed: password confirmation mismatch")
		return nil, ErrPasswordMismatch
	}

	hashed, err := crypto.HashPassword(in.Password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, ErrInternalServer
	}
	encryptedEmail, err := s.cipher.Encrypt(in.Email)
	if err != nil {
		logCtx.WithError(err).Error("Failed to encrypt email during registration")
		return nil, ErrInternalServer
	}

	user := &domain.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Username:       in.Username,
		Email:          encryptedEmail,
		Password:       hashed,
		ProfilePicture: defaultProfilePicture,
	}
	if err := s.users.Append(ctx, user); err != nil {
		logCtx.WithError(err).Error("Failed to persist new user")
		return nil, ErrInternalServer
	}

	logCtx.Info("User registered successfully")
	return user, nil
}

// Login resolves usernameOrEmail to a stored user and verifies the password.
// Any failure — unknown identifier or wrong password — returns the generic
// ErrInvalidCredentials so the response does not leak which field was wrong.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	logCtx := logrus.WithField("identifier", usernameOrEmail)

	var user *domain.User
	if emailPattern.MatchString(usernameOrEmail) {
		users, err := s.users.List(ctx)
		if err != nil {
			logCtx.WithError(err).Error("Failed to load users during login")
			return nil, ErrInternalServer
		}
		for i := range users {
			if email, ok := s.cipher.Decrypt(users[i].Email); ok && email == usernameOrEmail {
				user = &users[i]
				break
			}
		}
	} else {
		found, err := s.users.FindByUsername(ctx, usernameOrEmail)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			logCtx.WithError(err).Error("Failed to look up user during login")
			return nil, ErrInternalServer
		}
		user = found
	}

	if user == nil {
		logCtx.Warn("Login attempt failed: user not found")
		return nil, ErrInvalidCredentials
	}
	if !crypto.CheckPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return nil, ErrInvalidCredentials
	}

	logrus.WithField("username", user.Username).Info("User logged in successfully")
	return user, nil
}
