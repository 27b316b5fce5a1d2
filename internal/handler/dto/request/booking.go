package request

import (
	"salon-booking-api/internal/domain/booking"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ArtistID      uuid.UUID `json:"artistId" binding:"required"`
	ServiceID     uuid.UUID `json:"serviceId" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	TimeSlot      string    `json:"timeSlot" binding:"required"`
	PaymentMethod string    `json:"paymentMethod"`
	FirstName     string    `json:"firstname" binding:"required"`
	LastName      string    `json:"lastname" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Phone         string    `json:"phone" binding:"required"`
}

// ToDomain assembles the candidate booking from the request plus the catalog
// rows the usecase already resolved. The artist name and service price are
// snapshotted here, not joined at read time.
func (r CreateBookingRequest) ToDomain(
	userID uuid.UUID,
	artist *readmodel.ArtistRM,
	service *readmodel.ServiceRM,
	categoryName string,
) (*booking.Booking, error) {
	artistRef, err := booking.NewArtistRef(artist.ID, artist.Name)
	if err != nil {
		return nil, err
	}

	snapshot, err := booking.NewServiceSnapshot(service.Name, service.PriceCents)
	if err != nil {
		return nil, err
	}

	day, err := booking.ParseDay(r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	payment, err := booking.NewPaymentMethod(r.PaymentMethod)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomerDetails(r.FirstName, r.LastName, r.Email, r.Phone)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(userID, artistRef, snapshot, categoryName, day, slot, payment, customer)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}
