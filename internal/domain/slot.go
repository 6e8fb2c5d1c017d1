package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD, wire format for appointment dates
	SlotFormat = "03:04 PM"   // hh:mm AM/PM, wire format for slot labels
)

// slotUniverse is the fixed ordered daily catalog of bookable half-hour
// slots: 9:00-11:30 in the morning and 2:00-4:30 in the afternoon.
// No slot outside this set is ever offered.
var slotUniverse = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
}

// SlotUniverse returns a copy of the fixed slot label catalog, in order
func SlotUniverse() []string {
	out := make([]string, len(slotUniverse))
	copy(out, slotUniverse)
	return out
}

// IsValidSlot reports whether the label belongs to the slot universe
func IsValidSlot(label string) bool {
	for _, s := range slotUniverse {
		if s == label {
			return true
		}
	}
	return false
}

// TimeSlot is one entry of the slot availability view: a label from the
// universe annotated with availability derived from the backend's
// booked-slot list
type TimeSlot struct {
	Label     string
	Available bool
}
