package repository

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/domain/booking"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const bookingColumns = `id, ref, user_id, artist_id, artist_name, service_name,
	service_price_cents, category_name, date, time_slot, status, payment_method,
	first_name, last_name, email, phone, created_at, updated_at`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// FindConflicting returns true when another non-Cancelled booking already
// holds the same artist/day/slot tuple. This is the fast-path check; the
// partial unique index on bookings is the authoritative guard.
func (r *BookingRepository) FindConflicting(ctx context.Context, artistID uuid.UUID, day booking.Day, slot booking.TimeSlot) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE artist_id = $1 AND date = $2 AND time_slot = $3 AND status <> 'Cancelled'
		)`,
		artistID, day.Time(), slot.Label(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot conflict", err)
	}
	return exists, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	var categoryName *string
	if b.CategoryName() != "" {
		name := b.CategoryName()
		categoryName = &name
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO bookings (
			id, ref, user_id, artist_id, artist_name, service_name,
			service_price_cents, category_name, date, time_slot, status,
			payment_method, first_name, last_name, email, phone
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+bookingColumns,
		b.ID(), b.Ref(), b.UserID(), b.Artist().ID(), b.Artist().Name(),
		b.Service().Name(), b.Service().PriceCents(), categoryName,
		b.Day().Time(), b.TimeSlot().Label(), b.Status().String(),
		b.PaymentMethod().String(), b.Customer().FirstName(), b.Customer().LastName(),
		b.Customer().Email(), b.Customer().Phone(),
	)

	rm, err := scanBooking(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
			case pgForeignKeyViolation:
				return nil, infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return rm, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	rm, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

// SlotsByDay returns the distinct non-Cancelled slot labels held on the
// given day, optionally scoped to one artist. Order is not guaranteed.
func (r *BookingRepository) SlotsByDay(ctx context.Context, artistID *uuid.UUID, day booking.Day) ([]string, error) {
	query := `SELECT DISTINCT time_slot FROM bookings WHERE date = $1 AND status <> 'Cancelled'`
	args := []any{day.Time()}
	if artistID != nil {
		query += ` AND artist_id = $2`
		args = append(args, *artistID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked slots", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", err)
	}

	return slots, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+bookingColumns,
		id, status.String(),
	)

	rm, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// un-cancelling into an occupied slot
			return nil, infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}
	return rm, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user bookings", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBooking(row pgx.Row) (*readmodel.BookingRM, error) {
	var rm readmodel.BookingRM
	var date time.Time
	err := row.Scan(
		&rm.ID, &rm.Ref, &rm.UserID, &rm.ArtistID, &rm.ArtistName,
		&rm.ServiceName, &rm.ServicePriceCents, &rm.CategoryName,
		&date, &rm.TimeSlot, &rm.Status, &rm.PaymentMethod,
		&rm.FirstName, &rm.LastName, &rm.Email, &rm.Phone,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.Date = date
	return &rm, nil
}

func scanBookings(rows pgx.Rows) ([]*readmodel.BookingRM, error) {
	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
