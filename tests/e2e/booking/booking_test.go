//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/tests/common/authtest"
	"salon-booking-api/tests/common/builder"
	"salon-booking-api/tests/common/dbtest"
	"salon-booking-api/tests/common/httptest"
	"salon-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	slotsURL        = "/api/appointments/slots?date=%s"
	statusURL       = "/api/appointments/%s/status"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seedCatalog creates the artist/category/service rows a booking references.
func (s *BookingSuite) seedCatalog(t *testing.T) (artistID, serviceID uuid.UUID) {
	artistID = dbtest.CreateTestArtist(t, s.DB, "Amina", "amina@infinitynailsalon.com")
	categoryID := dbtest.CreateTestCategory(t, s.DB, "Manicure")
	serviceID = dbtest.CreateTestService(t, s.DB, categoryID, "Gel Manicure", 150000)
	return artistID, serviceID
}

// =============================================================================
// TestCreateBooking - 予約作成とスロット排他のE2E
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("正常系: 予約を作成できる", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().
			WithArtist(artistID, "Amina").
			BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.Ref, "booking reference should be assigned")
		require.Equal(t, "Pending", created.Status)
		require.Equal(t, artistID, created.ArtistID)
		require.Equal(t, "Gel Manicure", created.ServiceName)
		require.Equal(t, int64(150000), created.ServicePriceCents)
	})

	s.Run("正常系: 同じスロットの衝突はキャンセル後に解消される", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		reqBody := builder.NewBookingBuilder().
			WithArtist(artistID, "Amina").
			BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		// 1回目の予約は成功する
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))

		// 同じアーティスト・日付・スロットの2回目は409
		second := builder.NewBookingBuilder().
			WithArtist(artistID, "Amina").
			WithCustomer("Grace", "Njeri", "grace@example.com", "0722000111").
			BuildCreateRequestDTO()
		second.ServiceID = serviceID

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, second, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already booked")

		// キャンセルするとスロットが解放される
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(statusURL, first.ID), map[string]string{"status": "Cancelled"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 解放後は再予約できる
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, second, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("正常系: 別スロット・別アーティストなら同日でも衝突しない", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		otherArtistID := dbtest.CreateTestArtist(t, s.DB, "Wanja", "wanja@infinitynailsalon.com")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		first := builder.NewBookingBuilder().WithArtist(artistID, "Amina").BuildCreateRequestDTO()
		first.ServiceID = serviceID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, first, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 同じアーティストでも別スロットならOK
		otherSlot := builder.NewBookingBuilder().
			WithArtist(artistID, "Amina").
			WithTimeSlot("11:00 AM - 12:00 PM").
			BuildCreateRequestDTO()
		otherSlot.ServiceID = serviceID
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, otherSlot, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 同じスロットでも別アーティストならOK
		otherArtist := builder.NewBookingBuilder().WithArtist(otherArtistID, "Wanja").BuildCreateRequestDTO()
		otherArtist.ServiceID = serviceID
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, otherArtist, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("異常系: 存在しないアーティストは404", func() {
		t := s.T()
		_, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID // ArtistIDはビルダーのランダム値のまま

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Artist not found")
	})

	s.Run("異常系: 未認証は401", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)

		reqBody := builder.NewBookingBuilder().WithArtist(artistID, "Amina").BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestBookedSlots - スロット照会のE2E
// =============================================================================

func (s *BookingSuite) TestBookedSlots() {
	s.Run("正常系: 予約済みスロットが日付で照会できる", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		b := builder.NewBookingBuilder().WithArtist(artistID, "Amina")
		reqBody := b.BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// スロット照会は未認証でも可能（予約ページがログイン前に表示するため）
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, b.Date), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var slots response.BookedSlotsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &slots))
		require.Equal(t, b.Date, slots.Date)
		require.Contains(t, slots.BookedSlots, b.TimeSlot)
		require.Len(t, slots.AllSlots, 7)
	})

	s.Run("正常系: 予約のない日は空配列が返る", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, "2026-12-24"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var slots response.BookedSlotsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &slots))
		require.NotNil(t, slots.BookedSlots)
		require.Empty(t, slots.BookedSlots)
	})

	s.Run("異常系: 日付形式が不正なら400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, "24-12-2026"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date format")
	})
}

// =============================================================================
// TestBookingLifecycle - 一覧・削除のE2E
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("正常系: 自分の予約一覧が新しい順に返る", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		for _, slot := range []string{"09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM"} {
			reqBody := builder.NewBookingBuilder().
				WithArtist(artistID, "Amina").
				WithTimeSlot(slot).
				BuildCreateRequestDTO()
			reqBody.ServiceID = serviceID
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"/mine", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 2)
	})

	s.Run("正常系: 管理者は予約を削除でき、スロットが解放される", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		reqBody := builder.NewBookingBuilder().WithArtist(artistID, "Amina").BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			appointmentsURL+"/"+created.ID.String(), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// 削除後は同じスロットを再予約できる
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("異常系: 一般ユーザーは全予約一覧を見られない", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestBookingAccess - 予約閲覧の権限E2E
// =============================================================================

func (s *BookingSuite) TestBookingAccess() {
	s.Run("正常系: 所有者と管理者は取得できるが他の顧客には404", func() {
		t := s.T()
		artistID, serviceID := s.seedCatalog(t)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleCustomer))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		reqBody := builder.NewBookingBuilder().WithArtist(artistID, "Amina").BuildCreateRequestDTO()
		reqBody.ServiceID = serviceID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		bookingURL := appointmentsURL + "/" + created.ID.String()

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 連絡先情報を含むため、他の顧客には存在ごと隠す
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

// =============================================================================
// TestSchemaGuards - DB制約のE2E
// =============================================================================

func (s *BookingSuite) TestSchemaGuards() {
	s.Run("異常系: 定義外のスロットラベルはDB制約で拒否される", func() {
		t := s.T()
		artistID, _ := s.seedCatalog(t)
		userID := dbtest.CreateTestUser(t, s.DB, "direct@example.com", string(user.RoleCustomer))

		// APIを迂回した書き込みでもスキーマが守る
		_, err := s.DB.Exec(t.Context(), `
			INSERT INTO bookings (id, ref, user_id, artist_id, artist_name,
				service_name, service_price_cents, date, time_slot,
				first_name, last_name, email, phone)
			VALUES ($1, $2, $3, $4, 'Amina', 'Gel Manicure', 150000,
				'2026-10-15', '12:00 PM - 01:00 PM',
				'Jane', 'Wanjiku', 'jane@example.com', '0712345678')`,
			uuid.New(), "BKAAAAAA", userID, artistID)
		require.Error(t, err)
		require.Contains(t, err.Error(), "time_slot")
	})
}
