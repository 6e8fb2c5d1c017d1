package domain

// ServiceID stable identifier of a clinic service from the fixed catalog
type ServiceID string

const (
	ServiceImplant    ServiceID = "implant"
	ServiceWhitening  ServiceID = "whitening"
	ServiceBraces     ServiceID = "braces"
	ServiceFilling    ServiceID = "filling"
	ServiceCleaning   ServiceID = "cleaning"
	ServiceExtraction ServiceID = "extraction"
)

// Service describes one entry of the static service catalog
type Service struct {
	ID      ServiceID
	NameKey string // translation key for the display name
	Icon    string
}

// catalog is defined at compile time; the booking flow never offers
// anything outside of it
var catalog = []Service{
	{ID: ServiceImplant, NameKey: "booking.serviceImplant", Icon: "🦷"},
	{ID: ServiceWhitening, NameKey: "booking.serviceWhitening", Icon: "✨"},
	{ID: ServiceBraces, NameKey: "booking.serviceBraces", Icon: "😊"},
	{ID: ServiceFilling, NameKey: "booking.serviceFilling", Icon: "🛡️"},
	{ID: ServiceCleaning, NameKey: "booking.serviceCleaning", Icon: "🧼"},
	{ID: ServiceExtraction, NameKey: "booking.serviceExtraction", Icon: "⚕️"},
}

// Catalog returns a copy of the service catalog
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// IsValidService reports whether the id belongs to the catalog
func IsValidService(id ServiceID) bool {
	for _, s := range catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
