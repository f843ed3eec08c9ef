package domain

import "time"

// Hospital is a clinic owned by exactly one partner account.
type Hospital struct {
	ID          int64      `json:"hospitalId"`
	OwnerUserID int64      `json:"userId"`
	Name        string     `json:"hospitalName"`
	Location    string     `json:"location"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeletedAt   *time.Time `json:"-"`
}

// Doctor works at exactly one hospital.
type Doctor struct {
	ID         int64      `json:"doctorId"`
	HospitalID int64      `json:"hospitalId"`
	Name       string     `json:"doctorName"`
	Image      string     `json:"doctorImage"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"-"`
}
