package domain

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser(" abcd ", "$2a$12$hash", "Kim", "010-0000-0000", "900101-1234567", RolePartner)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.LoginID != "abcd" {
		t.Errorf("Expected trimmed login ID abcd, got %q", user.LoginID)
	}

	if user.ID != 0 {
		t.Errorf("Expected ID to be assigned by the store, got %d", user.ID)
	}

	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	if user.IsDeleted() {
		t.Error("Expected new user not to be deleted")
	}

	_, err = NewUser("", "$2a$12$hash", "Kim", "", "", RoleCustomer)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty login ID, got %v", err)
	}

	_, err = NewUser("abcd", "", "Kim", "", "", RoleCustomer)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty hash, got %v", err)
	}

	_, err = NewUser("abcd", "$2a$12$hash", "Kim", "", "", Role("doctor"))
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Expected ErrInvalidRole, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"customer", RoleCustomer, false},
		{"Partner", RolePartner, false},
		{" admin ", RoleAdmin, false},
		{"", "", true},
		{"superuser", "", true},
	}

	for _, tc := range tests {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error", tc.in)
			}
			if !IsValidationError(err) {
				t.Errorf("ParseRole(%q): expected validation error, got %T", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoleOwnsFacilities(t *testing.T) {
	for _, r := range Roles() {
		if got, want := r.OwnsFacilities(), r == RolePartner; got != want {
			t.Errorf("%s.OwnsFacilities() = %v, want %v", r, got, want)
		}
	}
}

func TestUserProfile(t *testing.T) {
	u := &User{
		ID:             7,
		LoginID:        "abcd",
		HashedPassword: "secret-hash",
		Name:           "Lee",
		Phone:          "010-1111-2222",
		Address:        "Seoul",
		IDNumber:       "900101-1234567",
		Role:           RoleCustomer,
	}

	p := u.Profile()
	want := Profile{UserID: 7, LoginID: "abcd", Name: "Lee", Phone: "010-1111-2222", Address: "Seoul"}
	if p != want {
		t.Errorf("Profile() = %+v, want %+v", p, want)
	}
}
