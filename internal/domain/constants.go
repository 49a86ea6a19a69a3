package domain

// Title count bounds for mix and master services
const (
	MinTitleCount = 1
	MaxTitleCount = 20
)

// Calendar defaults
const (
	DefaultBookingWindowDays  = 14
	DefaultMinLeadTimeMinutes = 20
)

// DepositPercent share of an hourly booking paid upfront through PayTech
const DepositPercent = 50

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that keep a slot occupied
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
