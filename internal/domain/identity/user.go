package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a registered customer or administrator
// It is the aggregate root for account operations
type User struct {
	shared.BaseAggregateRoot
	FullName     string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	MobileNo     string `gorm:"type:varchar(20)"`
	IsAdmin      bool   `gorm:"not null;default:false"`
}

// NewUser creates a new customer account
func NewUser(fullName, email, password, mobileNo string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot exceed 200 characters")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateMobileNo(mobileNo); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          fullName,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		MobileNo:          strings.TrimSpace(mobileNo),
	}, nil
}

// NewAdminUser creates a new account with administrator rights
func NewAdminUser(fullName, email, password, mobileNo string) (*User, error) {
	user, err := NewUser(fullName, email, password, mobileNo)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = true
	return user, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetMobileNo updates the user's mobile number
func (u *User) SetMobileNo(mobileNo string) error {
	if err := validateMobileNo(mobileNo); err != nil {
		return err
	}

	u.MobileNo = strings.TrimSpace(mobileNo)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// PromoteToAdmin grants administrator rights
func (u *User) PromoteToAdmin() {
	u.IsAdmin = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Validation functions

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	return nil
}

func validateMobileNo(mobileNo string) error {
	mobileNo = strings.TrimSpace(mobileNo)
	if mobileNo == "" {
		return shared.NewDomainError("INVALID_MOBILE", "Mobile number cannot be empty")
	}
	if len(mobileNo) > 20 {
		return shared.NewDomainError("INVALID_MOBILE", "Mobile number cannot exceed 20 characters")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
