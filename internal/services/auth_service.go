package services

import (
	"errors"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// AuthService owns registration and password checking. The very first account
// created in an empty database becomes the administrator; everyone after that
// registers as a regular user.
type AuthService struct {
	users *db.UserRepository
}

func NewAuthService(users *db.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(emailRaw string, passwordRaw string, name string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	existing, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, err
	}
	role := models.RoleUser
	if existing == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(emailRaw string, password string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// VerifyPassword rechecks the caller's current password before allowing a
// password change.
func (service *AuthService) VerifyPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (service *AuthService) ChangePassword(userID uint, newPasswordRaw string) error {
	if len(newPasswordRaw) < MinPasswordLength {
		return ErrAuthPasswordTooWeak
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPasswordRaw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(userID, string(hash))
}
