package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

// Possible reservation status values. The literals are part of the wire format.
const (
	ReservationStatusApproved       ReservationStatus = "approved"
	ReservationStatusWaiting        ReservationStatus = "waiting"
	ReservationStatusDoneOrReviewed ReservationStatus = "doneOrReviewed"
	ReservationStatusCanceled       ReservationStatus = "canceled"
)

// ReservationStatuses returns every status in a stable order.
func ReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationStatusApproved,
		ReservationStatusWaiting,
		ReservationStatusDoneOrReviewed,
		ReservationStatusCanceled,
	}
}

// ParseReservationStatus converts a string into a ReservationStatus.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects statuses outside the known set.
func (s ReservationStatus) Validate() error {
	switch s {
	case ReservationStatusApproved, ReservationStatusWaiting,
		ReservationStatusDoneOrReviewed, ReservationStatusCanceled:
		return nil
	default:
		return NewValidationError("status", "is not a known reservation status", ErrInvalidReservationStatus)
	}
}

// IsTerminal reports whether no transition may leave this status.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCanceled
}

// IsOpen reports whether the reservation still expects a visit.
func (s ReservationStatus) IsOpen() bool {
	return s == ReservationStatusWaiting || s == ReservationStatusApproved
}

// CanTransitionTo reports whether a reservation in status s may move to next.
// Canceled is terminal; re-applying canceled to a canceled reservation is allowed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if next.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return next == ReservationStatusCanceled
	}
	return true
}

// Reservation is a booking of a doctor by a user.
type Reservation struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"userId"`
	DoctorID   int64             `json:"doctorId"`
	HospitalID int64             `json:"hospitalId"`
	Date       time.Time         `json:"date"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	DeletedAt  *time.Time        `json:"-"`
}

// ReservationView is the read-only join of a reservation with its doctor and
// hospital, as returned to callers.
type ReservationView struct {
	ID           int64             `json:"id"`
	HospitalName string            `json:"hospitalName"`
	DoctorName   string            `json:"doctorName"`
	DoctorImage  string            `json:"doctorImage"`
	Date         time.Time         `json:"date"`
	Status       ReservationStatus `json:"status"`
}

// CancelResult reports the outcome of a cancellation.
type CancelResult struct {
	ReservationID  int64             `json:"reservationId"`
	Status         ReservationStatus `json:"status"`
	PreviousStatus ReservationStatus `json:"previousStatus"`
}
