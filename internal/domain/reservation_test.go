package domain

import (
	"errors"
	"testing"
)

func TestParseReservationStatus(t *testing.T) {
	for _, s := range ReservationStatuses() {
		got, err := ParseReservationStatus(string(s))
		if err != nil {
			t.Errorf("ParseReservationStatus(%q): unexpected error %v", s, err)
		}
		if got != s {
			t.Errorf("ParseReservationStatus(%q) = %q", s, got)
		}
	}

	for _, bad := range []string{"", "done", "Approved", "cancelled"} {
		_, err := ParseReservationStatus(bad)
		if !errors.Is(err, ErrInvalidReservationStatus) {
			t.Errorf("ParseReservationStatus(%q): expected ErrInvalidReservationStatus, got %v", bad, err)
		}
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationStatusWaiting, ReservationStatusApproved, true},
		{ReservationStatusApproved, ReservationStatusDoneOrReviewed, true},
		{ReservationStatusDoneOrReviewed, ReservationStatusCanceled, true},
		{ReservationStatusWaiting, ReservationStatusCanceled, true},
		{ReservationStatusCanceled, ReservationStatusCanceled, true},
		{ReservationStatusCanceled, ReservationStatusWaiting, false},
		{ReservationStatusCanceled, ReservationStatusApproved, false},
		{ReservationStatusWaiting, ReservationStatus("unknown"), false},
	}

	for _, tc := range tests {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReservationStatusIsOpen(t *testing.T) {
	open := map[ReservationStatus]bool{
		ReservationStatusWaiting:  true,
		ReservationStatusApproved: true,
	}
	for _, s := range ReservationStatuses() {
		if s.IsOpen() != open[s] {
			t.Errorf("%s.IsOpen() = %v", s, s.IsOpen())
		}
	}
	if !ReservationStatusCanceled.IsTerminal() {
		t.Error("canceled must be terminal")
	}
}

func TestDeleteResultRowsAffected(t *testing.T) {
	r := DeleteResult{UserDeleted: 1, HospitalsDeleted: 1, DoctorsDeleted: 2}
	if r.RowsAffected() != 4 {
		t.Errorf("RowsAffected() = %d, want 4", r.RowsAffected())
	}
}
