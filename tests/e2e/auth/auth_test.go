//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/tests/common/authtest"
	"salon-booking-api/tests/common/dbtest"
	"salon-booking-api/tests/common/httptest"
	"salon-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL       = "/api/auth/register"
	loginURL          = "/api/auth/login"
	meURL             = "/api/auth/me"
	profileURL        = "/api/auth/profile"
	forgotPasswordURL = "/api/auth/forgot-password"
	resetPasswordURL  = "/api/auth/reset-password"
	usersURL          = "/api/users"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "existing@example.com", string(user.RoleCustomer))

	// 非アクティブユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		reqBody        request.RegisterRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "正常な登録",
			reqBody:        request.RegisterRequest{Name: "Jane Wanjiku", Email: "jane@example.com", Password: "password123"},
			expectedStatus: http.StatusCreated,
			description:    "新規ユーザーを登録できること",
		},
		{
			name:           "メールアドレス重複",
			reqBody:        request.RegisterRequest{Name: "Dup", Email: "existing@example.com", Password: "password123"},
			expectedStatus: http.StatusConflict,
			description:    "登録済みメールアドレスは拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			reqBody:        request.RegisterRequest{Name: "Short", Email: "short@example.com", Password: "short"},
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
		{
			name:           "不正なメールアドレス",
			reqBody:        request.RegisterRequest{Name: "Bad", Email: "not-an-email", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
			description:    "メール形式でない値は拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.reqBody.Email, loginRes.User.Email)
				// 公開APIからの登録は常に一般ユーザー
				require.Equal(t, string(user.RoleCustomer), loginRes.User.Role)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "existing@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "existing@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("正常系: トークンで自分の情報を取得できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "existing@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "existing@example.com", me["email"])
	})

	s.Run("異常系: トークンなしは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestUpdateProfile() {
	s.Run("正常系: 名前とパスワードを更新し新パスワードでログインできる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "existing@example.com", "password123")

		reqBody := request.UpdateProfileRequest{Name: "Renamed User", Password: "newpassword456"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "Renamed User", updated["name"])

		// 旧パスワードは無効、新パスワードでログインできる
		wOld := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "existing@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, wOld.Code)
		authtest.LoginUser(t, s.Router, "existing@example.com", "newpassword456")
	})

	s.Run("正常系: パスワード省略時は現在のパスワードを維持する", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "existing@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			request.UpdateProfileRequest{Name: "Only Name"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		authtest.LoginUser(t, s.Router, "existing@example.com", "password123")
	})

	s.Run("異常系: トークンなしは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			request.UpdateProfileRequest{Name: "Nobody"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestPasswordReset() {
	s.Run("正常系: リセットトークンで新しいパスワードを設定できる", func() {
		t := s.T()
		ctx := t.Context()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "existing@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// 本来はメールで届くトークンをDBから直接読む
		var token string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT reset_token FROM users WHERE email = 'existing@example.com'").Scan(&token))
		require.NotEmpty(t, token)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "resetpassword789"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		authtest.LoginUser(t, s.Router, "existing@example.com", "resetpassword789")

		// トークンは一度きり
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "anotherpassword1"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("正常系: 未登録メールでも200を返す", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "nobody@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("異常系: 期限切れトークンは400", func() {
		t := s.T()
		ctx := t.Context()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, forgotPasswordURL,
			request.ForgotPasswordRequest{Email: "existing@example.com"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var token string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT reset_token FROM users WHERE email = 'existing@example.com'").Scan(&token))

		_, err := s.DB.Exec(ctx,
			"UPDATE users SET reset_token_expires_at = now() - interval '1 minute' WHERE email = 'existing@example.com'")
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: token, Password: "resetpassword789"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("異常系: 不明なトークンは400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resetPasswordURL,
			request.ResetPasswordRequest{Token: "deadbeef", Password: "resetpassword789"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestUserManagement() {
	s.Run("正常系: 管理者はユーザーの一覧・更新・削除ができる", func() {
		t := s.T()
		ctx := t.Context()
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var users []map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &users))
		require.GreaterOrEqual(t, len(users), 2)

		var targetID string
		require.NoError(t, s.DB.QueryRow(ctx,
			"SELECT id FROM users WHERE email = 'existing@example.com'").Scan(&targetID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, usersURL+"/"+targetID,
			request.AdminUpdateUserRequest{Name: "Managed User"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "Managed User", updated["name"])
		require.Equal(t, "existing@example.com", updated["email"])

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, usersURL+"/"+targetID, nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL+"/"+targetID, nil, adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("異常系: 一般ユーザーは403", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "existing@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, usersURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
