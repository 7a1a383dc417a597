package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// User represents a reqres user record.
// swagger:model User
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    string    `json:"avatar"`
	Name      *string   `json:"name,omitempty"`
	Job       *string   `json:"job,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	cp := *u
	if u.Name != nil {
		name := *u.Name
		cp.Name = &name
	}
	if u.Job != nil {
		job := *u.Job
		cp.Job = &job
	}
	return &cp
}

// UserPatch carries the fields of a partial update. Nil fields are left unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Avatar    *string
	Name      *string
	Job       *string
}

// Apply copies every non-nil field of p onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Name != nil {
		name := *p.Name
		u.Name = &name
	}
	if p.Job != nil {
		job := *p.Job
		u.Job = &job
	}
}

// UserRepository defines the interface for user storage.
// All must return a consistent snapshot ordered by ID; implementations serving
// concurrent requests are responsible for their own mutual exclusion.
type UserRepository interface {
	All(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error
}

// UserService defines the business logic for the users resource.
type UserService interface {
	List(ctx context.Context, req PageRequest) (PageResult[*User], error)
	GetByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, name, job string) (*User, error)
	Replace(ctx context.Context, user *User) (*User, error)
	Patch(ctx context.Context, id int, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id int) error
	HasUsers(ctx context.Context) (bool, error)
}
