package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// The salon operates fixed one-hour slots with a lunch break between noon
// and one. Labels are stored verbatim; they are the wire format and the
// database representation.
var timeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"01:00 PM - 02:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
}

type TimeSlot struct {
	label string
}

func NewTimeSlot(label string) (TimeSlot, error) {
	for _, s := range timeSlots {
		if s == label {
			return TimeSlot{label: label}, nil
		}
	}
	return TimeSlot{}, ErrInvalidTimeSlot
}

func (t TimeSlot) Label() string {
	return t.label
}

func AllTimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// Day is a calendar day in server-local time; the time-of-day component is
// always midnight. Slot conflicts are scoped to a Day, never a timestamp.
type Day struct {
	value time.Time
}

func NewDay(t time.Time) Day {
	y, m, d := t.Local().Date()
	return Day{value: time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{value: t}, nil
}

func (d Day) Time() time.Time {
	return d.value
}

func (d Day) String() string {
	return d.value.Format("2006-01-02")
}

func (d Day) IsZero() bool {
	return d.value.IsZero()
}

type ArtistRef struct {
	id   uuid.UUID
	name string
}

func NewArtistRef(id uuid.UUID, name string) (ArtistRef, error) {
	if id == uuid.Nil || strings.TrimSpace(name) == "" {
		return ArtistRef{}, ErrMissingArtist
	}
	return ArtistRef{id: id, name: strings.TrimSpace(name)}, nil
}

func (a ArtistRef) ID() uuid.UUID {
	return a.id
}

func (a ArtistRef) Name() string {
	return a.name
}

// ServiceSnapshot freezes the chosen service at booking time. Later catalog
// price changes never touch existing bookings.
type ServiceSnapshot struct {
	name       string
	priceCents int64
}

func NewServiceSnapshot(name string, priceCents int64) (ServiceSnapshot, error) {
	if strings.TrimSpace(name) == "" {
		return ServiceSnapshot{}, ErrMissingService
	}
	if priceCents < 0 {
		return ServiceSnapshot{}, ErrNegativePrice
	}
	return ServiceSnapshot{name: strings.TrimSpace(name), priceCents: priceCents}, nil
}

func (s ServiceSnapshot) Name() string {
	return s.name
}

func (s ServiceSnapshot) PriceCents() int64 {
	return s.priceCents
}

type CustomerDetails struct {
	firstName string
	lastName  string
	email     string
	phone     string
}

func NewCustomerDetails(firstName, lastName, email, phone string) (CustomerDetails, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if firstName == "" || lastName == "" || email == "" || phone == "" {
		return CustomerDetails{}, ErrMissingCustomerDetails
	}
	return CustomerDetails{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}, nil
}

func (c CustomerDetails) FirstName() string { return c.firstName }
func (c CustomerDetails) LastName() string  { return c.lastName }
func (c CustomerDetails) Email() string     { return c.email }
func (c CustomerDetails) Phone() string     { return c.phone }

func (c CustomerDetails) FullName() string {
	return c.firstName + " " + c.lastName
}

// NewRef generates the customer-facing booking reference, e.g. "BK3F92A1".
// The database primary key is a uuid; the ref is only a human-friendly handle.
func NewRef() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(raw[:6])
}
