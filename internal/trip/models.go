package trip

import "time"

type Trip struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CountryCode  string    `json:"country_code"`
	CountryName  string    `json:"country_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date,omitempty"`
	VisaDuration string    `json:"visa_duration,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TripStatus is the per-trip slice of a usage report: the visa allowance
// left for trips carrying a duration, and whether the stay is currently
// past that allowance.
type TripStatus struct {
	TripID       string `json:"trip_id"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	Schengen     bool   `json:"schengen"`
	VisaDaysLeft *int   `json:"visa_days_left,omitempty"`
	Overstayed   bool   `json:"overstayed"`
	OverstayDays int    `json:"overstay_days,omitempty"`
}

// Usage is the Schengen 90/180 summary for one user as of a reference date.
type Usage struct {
	ReferenceDate time.Time    `json:"reference_date"`
	WindowStart   time.Time    `json:"window_start"`
	WindowEnd     time.Time    `json:"window_end"`
	DaysUsed      int          `json:"days_used"`
	DaysRemaining int          `json:"days_remaining"`
	Trips         []TripStatus `json:"trips"`
}
