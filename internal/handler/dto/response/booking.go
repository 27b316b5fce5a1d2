package response

import (
	"time"

	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	Ref               string    `json:"bookingId"`
	UserID            uuid.UUID `json:"userId"`
	ArtistID          uuid.UUID `json:"artistId"`
	ArtistName        string    `json:"artistName"`
	ServiceName       string    `json:"serviceName"`
	ServicePriceCents int64     `json:"servicePriceCents"`
	CategoryName      *string   `json:"categoryName,omitempty"`
	Date              string    `json:"date"`
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

// FromBookingRM maps field-by-name via copier; only the date needs manual
// treatment since the API speaks calendar days, not timestamps.
func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.Date = rm.Date.Format("2006-01-02")
	return &resp
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromBookingRM(rm))
	}
	return result
}

type BookedSlotsResponse struct {
	Date        string   `json:"date"`
	BookedSlots []string `json:"bookedSlots"`
	AllSlots    []string `json:"allSlots"`
}
