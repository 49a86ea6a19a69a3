package domain

import "errors"

var (
	// ErrSelectionMissing hourly booking without a date or slots
	ErrSelectionMissing = errors.New("domain: no date or time slot selected")

	// ErrTitlesMissing title-based booking with no titles
	ErrTitlesMissing = errors.New("domain: at least one title is required")

	// ErrContactMissing one of name, email, phone is empty
	ErrContactMissing = errors.New("domain: required contact fields are missing")

	// ErrUnknownSlot slot id is not part of the daily catalog
	ErrUnknownSlot = errors.New("domain: unknown time slot")

	// ErrUnknownServiceType service type is not hourly, mix or master
	ErrUnknownServiceType = errors.New("domain: unknown service type")

	// ErrNotHourly slot or date operation on a title-based selection
	ErrNotHourly = errors.New("domain: selection is not hourly")

	// ErrNotTitleBased title count operation on an hourly selection
	ErrNotTitleBased = errors.New("domain: selection is not title based")

	// ErrNotContiguous hourly slots do not form a single run
	ErrNotContiguous = errors.New("domain: time slots are not contiguous")
)
