//go:build unit || e2e

package builder

import (
	"time"

	dombooking "salon-booking-api/internal/domain/booking"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID        uuid.UUID
	ArtistID      uuid.UUID
	ArtistName    string
	ServiceID     uuid.UUID
	ServiceName   string
	PriceCents    int64
	CategoryName  string
	Date          string
	TimeSlot      string
	PaymentMethod string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:        uuid.New(),
		ArtistID:      uuid.New(),
		ArtistName:    "Amina",
		ServiceID:     uuid.New(),
		ServiceName:   "Gel Manicure",
		PriceCents:    150000,
		CategoryName:  "Manicure",
		Date:          "2026-10-15",
		TimeSlot:      "10:00 AM - 11:00 AM",
		PaymentMethod: "mpesa",
		FirstName:     "Jane",
		LastName:      "Wanjiku",
		Email:         "jane@example.com",
		Phone:         "0712345678",
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	artist, err := dombooking.NewArtistRef(b.ArtistID, b.ArtistName)
	if err != nil {
		return nil, err
	}

	service, err := dombooking.NewServiceSnapshot(b.ServiceName, b.PriceCents)
	if err != nil {
		return nil, err
	}

	day, err := dombooking.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}

	slot, err := dombooking.NewTimeSlot(b.TimeSlot)
	if err != nil {
		return nil, err
	}

	payment, err := dombooking.NewPaymentMethod(b.PaymentMethod)
	if err != nil {
		return nil, err
	}

	customer, err := dombooking.NewCustomerDetails(b.FirstName, b.LastName, b.Email, b.Phone)
	if err != nil {
		return nil, err
	}

	return dombooking.NewBooking(b.UserID, artist, service, b.CategoryName, day, slot, payment, customer)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ArtistID:      b.ArtistID,
		ServiceID:     b.ServiceID,
		Date:          b.Date,
		TimeSlot:      b.TimeSlot,
		PaymentMethod: b.PaymentMethod,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Phone:         b.Phone,
	}
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	now := time.Now()
	date, _ := time.ParseInLocation("2006-01-02", b.Date, time.Local)
	category := b.CategoryName
	return &readmodel.BookingRM{
		ID:                uuid.New(),
		Ref:               dombooking.NewRef(),
		UserID:            b.UserID,
		ArtistID:          b.ArtistID,
		ArtistName:        b.ArtistName,
		ServiceName:       b.ServiceName,
		ServicePriceCents: b.PriceCents,
		CategoryName:      &category,
		Date:              date,
		TimeSlot:          b.TimeSlot,
		Status:            "Pending",
		PaymentMethod:     b.PaymentMethod,
		FirstName:         b.FirstName,
		LastName:          b.LastName,
		Email:             b.Email,
		Phone:             b.Phone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (b *BookingBuilder) BuildArtistRM() *readmodel.ArtistRM {
	now := time.Now()
	return &readmodel.ArtistRM{
		ID:        b.ArtistID,
		Name:      b.ArtistName,
		Email:     "amina@infinitynailsalon.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) BuildServiceRM() *readmodel.ServiceRM {
	return &readmodel.ServiceRM{
		ID:         b.ServiceID,
		CategoryID: uuid.New(),
		Name:       b.ServiceName,
		Duration:   "60 min",
		PriceCents: b.PriceCents,
		CreatedAt:  time.Now(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithArtist(id uuid.UUID, name string) *BookingBuilder {
	b.ArtistID = id
	b.ArtistName = name
	return b
}

func (b *BookingBuilder) WithService(name string, priceCents int64) *BookingBuilder {
	b.ServiceName = name
	b.PriceCents = priceCents
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(slot string) *BookingBuilder {
	b.TimeSlot = slot
	return b
}

func (b *BookingBuilder) WithPaymentMethod(method string) *BookingBuilder {
	b.PaymentMethod = method
	return b
}

func (b *BookingBuilder) WithCustomer(firstName, lastName, email, phone string) *BookingBuilder {
	b.FirstName = firstName
	b.LastName = lastName
	b.Email = email
	b.Phone = phone
	return b
}
