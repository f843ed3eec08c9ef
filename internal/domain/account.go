package domain

// DeleteResult summarizes a cascade account deletion. For non-partner
// accounts only UserDeleted is populated.
type DeleteResult struct {
	UserID               int64 `json:"userId"`
	Role                 Role  `json:"role"`
	UserDeleted          int64 `json:"userDelete"`
	HospitalsDeleted     int64 `json:"hospitalDelete"`
	DoctorsDeleted       int64 `json:"doctorDelete"`
	ReservationsCanceled int64 `json:"reservationCancel"`
}

// RowsAffected returns the total number of rows touched by the deletion.
func (r DeleteResult) RowsAffected() int64 {
	return r.UserDeleted + r.HospitalsDeleted + r.DoctorsDeleted + r.ReservationsCanceled
}
