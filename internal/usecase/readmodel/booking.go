package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the flat persistence view of a booking handed to handlers.
type BookingRM struct {
	ID                uuid.UUID `json:"id"`
	Ref               string    `json:"bookingId"`
	UserID            uuid.UUID `json:"userId"`
	ArtistID          uuid.UUID `json:"artistId"`
	ArtistName        string    `json:"artistName"`
	ServiceName       string    `json:"serviceName"`
	ServicePriceCents int64     `json:"servicePriceCents"`
	CategoryName      *string   `json:"categoryName,omitempty"`
	Date              time.Time `json:"date"`
	TimeSlot          string    `json:"timeSlot"`
	Status            string    `json:"status"`
	PaymentMethod     string    `json:"paymentMethod"`
	FirstName         string    `json:"firstname"`
	LastName          string    `json:"lastname"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
