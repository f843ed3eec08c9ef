package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account kinds. Any value outside the constants
// below is rejected by Validate.
type Role string

// Possible role values
const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

// Roles returns every known role in a stable order.
func Roles() []Role {
	return []Role{RoleCustomer, RolePartner, RoleAdmin}
}

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate returns ErrInvalidRole wrapped in a ValidationError for unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RolePartner, RoleAdmin:
		return nil
	default:
		return NewValidationError("role", "must be one of customer, partner, admin", ErrInvalidRole)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// OwnsFacilities reports whether accounts of this role own hospital and
// doctor records.
func (r Role) OwnsFacilities() bool {
	return r == RolePartner
}

// User is a registered account of the booking platform.
type User struct {
	ID             int64      `json:"userId"`
	LoginID        string     `json:"loginId"`
	HashedPassword string     `json:"-"` // Never expose password hash in JSON
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	IDNumber       string     `json:"idNumber"`
	Role           Role       `json:"role"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	DeletedAt      *time.Time `json:"-"`
}

// NewUser creates a User that is ready to be persisted. The password must
// already be hashed; the ID is assigned by the store.
func NewUser(loginID, hashedPassword, name, phone, idNumber string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		LoginID:        strings.TrimSpace(loginID),
		HashedPassword: hashedPassword,
		Name:           name,
		Phone:          phone,
		IDNumber:       idNumber,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants of a User.
func (u *User) Validate() error {
	if u.LoginID == "" {
		return NewValidationError("loginId", "cannot be empty", nil)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", nil)
	}
	if u.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	return u.Role.Validate()
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Profile is the subset of user data shown to the account owner.
type Profile struct {
	UserID  int64  `json:"userId"`
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Profile projects the user onto its public profile.
func (u *User) Profile() Profile {
	return Profile{
		UserID:  u.ID,
		LoginID: u.LoginID,
		Name:    u.Name,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// UserListFilter narrows administrative user listings. A nil Role lists
// every role; Keyword matches name or login ID case-insensitively.
type UserListFilter struct {
	Role    *Role
	Keyword string
}
