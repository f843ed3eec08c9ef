package api

import (
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
)

// SignupRequest defines the payload for account registration. Admin
// accounts cannot be created through signup; an admin promotes them with
// UpdateRoleRequest.
type SignupRequest struct {
	LoginID  string `json:"loginId"  validate:"required,min=4,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=50"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	IDNumber string `json:"idNumber" validate:"omitempty,max=14"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer partner"`
}

// SignupResponse is returned after a successful registration.
type SignupResponse struct {
	UserID  int64       `json:"userId"`
	LoginID string      `json:"loginId"`
	Role    domain.Role `json:"role"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	LoginID  string `json:"loginId"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

// EditProfileRequest carries the profile fields to change. Omitted or
// blank fields keep their stored value.
type EditProfileRequest struct {
	Address string `json:"address" validate:"max=200"`
	Phone   string `json:"phone"   validate:"max=20"`
	Name    string `json:"name"    validate:"max=50"`
}

// UpdateReservationRequest carries a partner's change to a reservation.
type UpdateReservationRequest struct {
	Date   *time.Time `json:"date"`
	Status *string    `json:"status" validate:"omitempty,oneof=approved waiting doneOrReviewed canceled"`
}

// UpdateRoleRequest changes the role of an account.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer partner admin"`
}

// UserResponse is the administrative view of an account. The password hash
// and resident registration number are never included.
type UserResponse struct {
	UserID    int64       `json:"userId"`
	LoginID   string      `json:"loginId"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		LoginID:   u.LoginID,
		Name:      u.Name,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}
