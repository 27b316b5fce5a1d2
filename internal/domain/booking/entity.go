package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingArtist          = errors.New("artist is required")
	ErrMissingService         = errors.New("service is required")
	ErrMissingDate            = errors.New("date is required")
	ErrInvalidDate            = errors.New("invalid date format")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrMissingCustomerDetails = errors.New("customer details are required")
	ErrNegativePrice          = errors.New("price cannot be negative")
)

type Booking struct {
	id            uuid.UUID
	ref           string
	userID        uuid.UUID
	artist        ArtistRef
	service       ServiceSnapshot
	categoryName  string
	day           Day
	timeSlot      TimeSlot
	status        Status
	paymentMethod PaymentMethod
	customer      CustomerDetails
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking builds a candidate booking in its initial Pending state. All
// invariants except slot availability are checked here; availability belongs
// to the store.
func NewBooking(
	userID uuid.UUID,
	artist ArtistRef,
	service ServiceSnapshot,
	categoryName string,
	day Day,
	slot TimeSlot,
	payment PaymentMethod,
	customer CustomerDetails,
) (*Booking, error) {
	if day.IsZero() {
		return nil, ErrMissingDate
	}

	return &Booking{
		id:            uuid.New(),
		ref:           NewRef(),
		userID:        userID,
		artist:        artist,
		service:       service,
		categoryName:  categoryName,
		day:           day,
		timeSlot:      slot,
		status:        StatusPending,
		paymentMethod: payment,
		customer:      customer,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	ref string,
	userID uuid.UUID,
	artist ArtistRef,
	service ServiceSnapshot,
	categoryName string,
	day Day,
	slot TimeSlot,
	status Status,
	payment PaymentMethod,
	customer CustomerDetails,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		ref:           ref,
		userID:        userID,
		artist:        artist,
		service:       service,
		categoryName:  categoryName,
		day:           day,
		timeSlot:      slot,
		status:        status,
		paymentMethod: payment,
		customer:      customer,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsActive reports whether the booking holds its slot. Cancelled bookings
// do not count toward the one-active-booking-per-slot invariant.
func (b *Booking) IsActive() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) Ref() string                   { return b.ref }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) Artist() ArtistRef             { return b.artist }
func (b *Booking) Service() ServiceSnapshot      { return b.service }
func (b *Booking) CategoryName() string          { return b.categoryName }
func (b *Booking) Day() Day                      { return b.day }
func (b *Booking) TimeSlot() TimeSlot            { return b.timeSlot }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentMethod() PaymentMethod  { return b.paymentMethod }
func (b *Booking) Customer() CustomerDetails     { return b.customer }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
