package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Quantity what is being bought: a run of hourly slots or a number of titles
type Quantity interface {
	isQuantity()
}

// SlotRun hourly quantity: a date and a contiguous run of slot ids in catalog order
type SlotRun struct {
	Date    string
	SlotIDs []string
}

// TitleCount mix/master quantity
type TitleCount struct {
	Count int
}

func (SlotRun) isQuantity()    {}
func (TitleCount) isQuantity() {}

// Selection in-progress booking choice. Values are immutable: every
// operation returns a new Selection.
type Selection struct {
	Service  ServiceType
	Quantity Quantity
}

// NewSelection initial state of the booking widget
func NewSelection() Selection {
	return Selection{Service: ServiceHourly, Quantity: SlotRun{}}
}

// NewHourlySelection builds an hourly selection and checks the slots
func NewHourlySelection(date string, slotIDs []string) (Selection, error) {
	ids := make([]string, len(slotIDs))
	copy(ids, slotIDs)
	for _, id := range ids {
		if SlotIndex(id) < 0 {
			return Selection{}, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
		}
	}
	sortByCatalog(ids)
	if !isContiguous(ids) {
		return Selection{}, ErrNotContiguous
	}
	return Selection{Service: ServiceHourly, Quantity: SlotRun{Date: date, SlotIDs: ids}}, nil
}

// NewTitleSelection builds a mix or master selection, count is kept as is
func NewTitleSelection(t ServiceType, count int) (Selection, error) {
	if !t.IsTitleBased() {
		return Selection{}, fmt.Errorf("%w: %s", ErrUnknownServiceType, t)
	}
	return Selection{Service: t, Quantity: TitleCount{Count: count}}, nil
}

// Run returns the hourly quantity
func (s Selection) Run() (SlotRun, bool) {
	run, ok := s.Quantity.(SlotRun)
	return run, ok
}

// Titles returns the number of titles, 0 for hourly selections
func (s Selection) Titles() int {
	if tc, ok := s.Quantity.(TitleCount); ok {
		return tc.Count
	}
	return 0
}

// ToggleSlot adds or removes a slot. A toggle that would leave a gap
// collapses the selection to the toggled slot alone.
func (s Selection) ToggleSlot(id string) (Selection, error) {
	run, ok := s.Run()
	if !ok {
		return s, ErrNotHourly
	}
	if SlotIndex(id) < 0 {
		return s, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
	}

	ids := make([]string, 0, len(run.SlotIDs)+1)
	removed := false
	for _, existing := range run.SlotIDs {
		if existing == id {
			removed = true
			continue
		}
		ids = append(ids, existing)
	}

	if !removed {
		ids = append(ids, id)
		sortByCatalog(ids)
		if !isContiguous(ids) {
			ids = []string{id}
		}
	}

	return Selection{Service: ServiceHourly, Quantity: SlotRun{Date: run.Date, SlotIDs: ids}}, nil
}

// SetServiceType switches service. Leaving hourly drops date and slots,
// entering hourly drops the title count, mix and master share the count.
func (s Selection) SetServiceType(t ServiceType) (Selection, error) {
	if !t.IsValid() {
		return s, fmt.Errorf("%w: %s", ErrUnknownServiceType, t)
	}
	if t == s.Service {
		return s, nil
	}

	switch {
	case t == ServiceHourly:
		return Selection{Service: ServiceHourly, Quantity: SlotRun{}}, nil
	case s.Service == ServiceHourly:
		return Selection{Service: t, Quantity: TitleCount{Count: MinTitleCount}}, nil
	default:
		return Selection{Service: t, Quantity: s.Quantity}, nil
	}
}

// SetDate sets the hourly date. Changing to another date clears the slots.
func (s Selection) SetDate(date string) (Selection, error) {
	run, ok := s.Run()
	if !ok {
		return s, ErrNotHourly
	}
	if run.Date == date {
		return s, nil
	}
	return Selection{Service: ServiceHourly, Quantity: SlotRun{Date: date}}, nil
}

// SetTitleCount sets the number of titles clamped to [MinTitleCount, MaxTitleCount]
func (s Selection) SetTitleCount(n int) (Selection, error) {
	if !s.Service.IsTitleBased() {
		return s, ErrNotTitleBased
	}
	return Selection{Service: s.Service, Quantity: TitleCount{Count: ClampTitleCount(n)}}, nil
}

// ClampTitleCount clamps n to the allowed title range
func ClampTitleCount(n int) int {
	if n < MinTitleCount {
		return MinTitleCount
	}
	if n > MaxTitleCount {
		return MaxTitleCount
	}
	return n
}

// ComputeTotal price of the selection
func (s Selection) ComputeTotal(rates Rates) int64 {
	switch q := s.Quantity.(type) {
	case SlotRun:
		return int64(len(q.SlotIDs)) * rates.For(s.Service)
	case TitleCount:
		if q.Count <= 0 {
			return 0
		}
		return int64(q.Count) * rates.For(s.Service)
	}
	return 0
}

// Hours number of booked studio hours, 0 for title-based services
func (s Selection) Hours() int {
	if run, ok := s.Run(); ok {
		return len(run.SlotIDs)
	}
	return 0
}

// Describe human readable summary: "09h00 - 11h00" or "3 titres"
func (s Selection) Describe() string {
	switch q := s.Quantity.(type) {
	case SlotRun:
		return DescribeSlots(q.SlotIDs)
	case TitleCount:
		if q.Count > 1 {
			return fmt.Sprintf("%d titres", q.Count)
		}
		return fmt.Sprintf("%d titre", q.Count)
	}
	return ""
}

// DescribeSlots "09h00 - 10h00" for one slot, "09h00 - 11h00" for a run
func DescribeSlots(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	first, ok := LookupSlot(ids[0])
	if !ok {
		return strings.Join(ids, ", ")
	}
	if len(ids) == 1 {
		return first.Label
	}
	last, ok := LookupSlot(ids[len(ids)-1])
	if !ok {
		return strings.Join(ids, ", ")
	}
	return first.StartLabel() + " - " + last.EndLabel()
}

// Validate checks that the selection and the contact are complete.
// Selection problems are reported before contact problems.
func (s Selection) Validate(c Contact) error {
	switch q := s.Quantity.(type) {
	case SlotRun:
		if q.Date == "" || len(q.SlotIDs) == 0 {
			return ErrSelectionMissing
		}
	case TitleCount:
		if q.Count < MinTitleCount {
			return ErrTitlesMissing
		}
	default:
		return ErrSelectionMissing
	}

	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Phone) == "" {
		return ErrContactMissing
	}
	return nil
}

func sortByCatalog(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return SlotIndex(ids[i]) < SlotIndex(ids[j])
	})
}

// isContiguous expects ids sorted in catalog order
func isContiguous(ids []string) bool {
	for i := 1; i < len(ids); i++ {
		if SlotIndex(ids[i]) != SlotIndex(ids[i-1])+1 {
			return false
		}
	}
	return true
}
