package usecase

import (
	"context"
	"errors"
	"log/slog"

	"salon-booking-api/internal/domain/booking"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrArtistNotFound  = errors.New("artist not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrSlotTaken       = errors.New("slot already booked")
	ErrInvalidDay      = errors.New("invalid date")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	FindConflicting(ctx context.Context, artistID uuid.UUID, day booking.Day, slot booking.TimeSlot) (bool, error)
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	SlotsByDay(ctx context.Context, artistID *uuid.UUID, day booking.Day) ([]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	FindAll(ctx context.Context) ([]*readmodel.BookingRM, error)
}

type ArtistRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ArtistRM, error)
}

type ServiceRepository interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error)
	FindCategoryName(ctx context.Context, id uuid.UUID) (string, error)
}

// SlotCache is the optional read-through cache over SlotsByDay. Implementations
// must treat every failure as a miss; correctness rests on the database index.
type SlotCache interface {
	Get(ctx context.Context, artistID *uuid.UUID, day string) ([]string, bool)
	Set(ctx context.Context, artistID *uuid.UUID, day string, slots []string)
	Invalidate(ctx context.Context, artistID uuid.UUID, day string)
}

// Notifier delivers booking lifecycle emails. Calls are made on a detached
// goroutine; delivery failure never fails the booking operation.
type Notifier interface {
	SendBookingConfirmation(rm *readmodel.BookingRM) error
	SendStatusUpdate(rm *readmodel.BookingRM) error
}

type BookedSlots struct {
	Day    booking.Day
	Booked []string
	All    []string
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*readmodel.BookingRM, error)
	ListBookedSlots(ctx context.Context, artistID *uuid.UUID, date string) (*BookedSlots, error)
	GetBooking(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*readmodel.BookingRM, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
	GetAllBookings(ctx context.Context) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	artistRepo  ArtistRepository
	serviceRepo ServiceRepository
	slotCache   SlotCache
	notifier    Notifier
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	artistRepo ArtistRepository,
	serviceRepo ServiceRepository,
	slotCache SlotCache,
	notifier Notifier,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		artistRepo:  artistRepo,
		serviceRepo: serviceRepo,
		slotCache:   slotCache,
		notifier:    notifier,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*readmodel.BookingRM, error) {
	artistRM, err := u.artistRepo.FindByID(ctx, req.ArtistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, errs.Wrap(err, "failed to find artist")
	}

	serviceRM, err := u.serviceRepo.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to find service")
	}

	categoryName, err := u.serviceRepo.FindCategoryName(ctx, serviceRM.CategoryID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Wrap(err, "failed to find category")
	}

	bookingEntity, err := req.ToDomain(userID, artistRM, serviceRM, categoryName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	// Fast-path reject. The partial unique index still closes the race
	// between this check and the insert.
	taken, err := u.bookingRepo.FindConflicting(ctx, bookingEntity.Artist().ID(), bookingEntity.Day(), bookingEntity.TimeSlot())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	rm, err := u.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrSlotTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrArtistNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.invalidateSlots(ctx, rm)
	u.notifyAsync(func() error { return u.notifier.SendBookingConfirmation(rm) })

	return rm, nil
}

func (u *bookingUseCaseImpl) ListBookedSlots(ctx context.Context, artistID *uuid.UUID, date string) (*BookedSlots, error) {
	day, err := booking.ParseDay(date)
	if err != nil {
		return nil, ErrInvalidDay
	}

	if u.slotCache != nil {
		if slots, ok := u.slotCache.Get(ctx, artistID, day.String()); ok {
			return &BookedSlots{Day: day, Booked: slots, All: booking.AllTimeSlots()}, nil
		}
	}

	slots, err := u.bookingRepo.SlotsByDay(ctx, artistID, day)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find booked slots")
	}

	if u.slotCache != nil {
		u.slotCache.Set(ctx, artistID, day.String(), slots)
	}

	return &BookedSlots{Day: day, Booked: slots, All: booking.AllTimeSlots()}, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	// A booking carries the customer's contact details. Non-owners get the
	// same 404 as a missing booking so IDs cannot be enumerated.
	if !isAdmin && rm.UserID != requesterID {
		return nil, ErrBookingNotFound
	}

	return rm, nil
}

func (u *bookingUseCaseImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateBookingStatusRequest,
) (*readmodel.BookingRM, error) {
	status, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := u.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			// re-activating a cancelled booking whose slot has been retaken
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.invalidateSlots(ctx, rm)
	u.notifyAsync(func() error { return u.notifier.SendStatusUpdate(rm) })

	return rm, nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Wrap(err, "failed to find booking")
	}

	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.invalidateSlots(ctx, rm)
	return nil
}

func (u *bookingUseCaseImpl) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user bookings")
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) GetAllBookings(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rms, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) invalidateSlots(ctx context.Context, rm *readmodel.BookingRM) {
	if u.slotCache == nil {
		return
	}
	u.slotCache.Invalidate(ctx, rm.ArtistID, rm.Date.Format("2006-01-02"))
}

func (u *bookingUseCaseImpl) notifyAsync(send func() error) {
	if u.notifier == nil {
		return
	}
	go func() {
		if err := send(); err != nil {
			slog.Warn("notification delivery failed", "error", err)
		}
	}()
}
