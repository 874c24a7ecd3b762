package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Dashboard roles. Marketing sees enquiries, support sees tickets, admin
// sees everything.
const (
	RoleAdmin     = "admin"
	RoleMarketing = "marketing"
	RoleSupport   = "support"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMarketing || role == RoleSupport
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUser(name, email, password, role string) (*User, error) {
	if email == "" {
		return nil, errors.New("user email is required")
	}
	if !ValidRole(role) {
		return nil, errors.New("invalid role")
	}

	user := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must have at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
