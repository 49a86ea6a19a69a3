package domain

import "time"

// Rates studio price list in the smallest currency unit
type Rates struct {
	Currency  string
	Hourly    int64 // per slot
	Mix       int64 // per title
	Master    int64 // per title
	UpdatedAt time.Time
}

// For returns the unit price of a service type
func (r Rates) For(t ServiceType) int64 {
	switch t {
	case ServiceHourly:
		return r.Hourly
	case ServiceMix:
		return r.Mix
	case ServiceMaster:
		return r.Master
	}
	return 0
}
