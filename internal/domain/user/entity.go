package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(now time.Time, name Name, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         RoleUser,
		createdAt:    now,
	}
}

// ReconstructUser rebuilds a user from trusted storage without re-running
// value object validation.
func ReconstructUser(id uuid.UUID, name, email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         Name{value: name},
		email:        Email{value: email},
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *User) ChangeName(name Name) {
	u.name = name
}

func (u *User) ChangeEmail(email Email) {
	u.email = email
}

func (u *User) ChangePasswordHash(hash string) {
	u.passwordHash = hash
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
