//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"salon-booking-api/internal/domain/booking"
	"salon-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.IsActive())
		assert.True(t, strings.HasPrefix(actual.Ref(), "BK"))
		assert.Len(t, actual.Ref(), 8)
	})

	t.Run("予約refは毎回ユニーク", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			ref := booking.NewRef()
			assert.False(t, seen[ref], "duplicate ref %s", ref)
			seen[ref] = true
		}
	})

	t.Run("タイムスロット検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "定義済みスロットOK",
				mutate: func(b *builder.BookingBuilder) { b.WithTimeSlot("09:00 AM - 10:00 AM") },
			},
			{
				name:   "最終スロットOK",
				mutate: func(b *builder.BookingBuilder) { b.WithTimeSlot("04:00 PM - 05:00 PM") },
			},
			{
				name:   "未定義スロットNG",
				mutate: func(b *builder.BookingBuilder) { b.WithTimeSlot("12:00 PM - 01:00 PM") },
				errIs:  booking.ErrInvalidTimeSlot,
			},
			{
				name:   "空スロットNG",
				mutate: func(b *builder.BookingBuilder) { b.WithTimeSlot("") },
				errIs:  booking.ErrInvalidTimeSlot,
			},
		})
	})

	t.Run("顧客情報検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "全項目ありOK",
				mutate: func(b *builder.BookingBuilder) {},
			},
			{
				name:   "名なしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("", "Wanjiku", "jane@example.com", "0712345678") },
				errIs:  booking.ErrMissingCustomerDetails,
			},
			{
				name:   "姓なしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Jane", "", "jane@example.com", "0712345678") },
				errIs:  booking.ErrMissingCustomerDetails,
			},
			{
				name:   "メールなしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Jane", "Wanjiku", "", "0712345678") },
				errIs:  booking.ErrMissingCustomerDetails,
			},
			{
				name:   "電話なしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Jane", "Wanjiku", "jane@example.com", "") },
				errIs:  booking.ErrMissingCustomerDetails,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("  ", "Wanjiku", "jane@example.com", "0712345678") },
				errIs:  booking.ErrMissingCustomerDetails,
			},
		})
	})

	t.Run("アーティスト検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ID+名前ありOK",
				mutate: func(b *builder.BookingBuilder) {},
			},
			{
				name:   "nil IDはNG",
				mutate: func(b *builder.BookingBuilder) { b.WithArtist(uuid.Nil, "Amina") },
				errIs:  booking.ErrMissingArtist,
			},
			{
				name:   "名前なしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithArtist(uuid.New(), "") },
				errIs:  booking.ErrMissingArtist,
			},
		})
	})

	t.Run("サービススナップショット検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "名前+価格OK",
				mutate: func(b *builder.BookingBuilder) { b.WithService("Gel Manicure", 150000) },
			},
			{
				name:   "価格0はOK",
				mutate: func(b *builder.BookingBuilder) { b.WithService("Consultation", 0) },
			},
			{
				name:   "名前なしNG",
				mutate: func(b *builder.BookingBuilder) { b.WithService("", 150000) },
				errIs:  booking.ErrMissingService,
			},
			{
				name:   "負の価格NG",
				mutate: func(b *builder.BookingBuilder) { b.WithService("Gel Manicure", -1) },
				errIs:  booking.ErrNegativePrice,
			},
		})
	})

	t.Run("支払い方法検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "mpesa OK",
				mutate: func(b *builder.BookingBuilder) { b.WithPaymentMethod("mpesa") },
			},
			{
				name:   "cash OK",
				mutate: func(b *builder.BookingBuilder) { b.WithPaymentMethod("cash") },
			},
			{
				name:   "card OK",
				mutate: func(b *builder.BookingBuilder) { b.WithPaymentMethod("card") },
			},
			{
				name:   "未知の方法NG",
				mutate: func(b *builder.BookingBuilder) { b.WithPaymentMethod("bitcoin") },
				errIs:  booking.ErrInvalidPaymentMethod,
			},
		})
	})
}

func TestPaymentMethodDefault(t *testing.T) {
	method, err := booking.NewPaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentMpesa, method)
}

func TestStatusFlatTransitions(t *testing.T) {
	// any-to-any: membership is the only rule
	for _, s := range []string{"Pending", "Confirmed", "Cancelled"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.True(t, status.IsValid())
	}

	_, err := booking.NewStatus("Done")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	_, err = booking.NewStatus("pending") // case sensitive
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestParseDay(t *testing.T) {
	day, err := booking.ParseDay("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", day.String())
	assert.Equal(t, 0, day.Time().Hour())

	_, err = booking.ParseDay("10/03/2025")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
	_, err = booking.ParseDay("")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
