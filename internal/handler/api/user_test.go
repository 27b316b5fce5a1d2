//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/handler/api"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/internal/usecase/readmodel"
	"salon-booking-api/tests/common/httptest"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockUserUseCase
	handler     *api.UserHandler
	userID      uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockUserUseCase(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockUseCase)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.PUT("/auth/profile", authMiddleware, s.handler.UpdateProfile)
	s.router.POST("/auth/forgot-password", s.handler.ForgotPassword)
	s.router.POST("/auth/reset-password", s.handler.ResetPassword)
	s.router.GET("/users", authMiddleware, s.handler.ListUsers)
	s.router.GET("/users/:id", authMiddleware, s.handler.GetUser)
	s.router.PUT("/users/:id", authMiddleware, s.handler.UpdateUser)
	s.router.DELETE("/users/:id", authMiddleware, s.handler.DeleteUser)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) userRM() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        s.userID,
		Name:      "Jane Wanjiku",
		Email:     "jane@example.com",
		Role:      "customer",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

// ================================================================================
// TestUpdateProfile
// ================================================================================

func (s *UserHandlerTestSuite) TestUpdateProfile() {
	url := "/auth/profile"
	reqBody := reqdto.UpdateProfileRequest{Name: "New Name"}

	s.Run("success: returns 200 OK with the updated user", func() {
		rm := s.userRM()
		rm.Name = "New Name"
		s.mockUseCase.EXPECT().UpdateProfile(gomock.Any(), s.userID, reqBody).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("New Name", response["name"])
	})

	s.Run("error: 400 Bad Request for a short password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"password": "short"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestForgotPassword
// ================================================================================

func (s *UserHandlerTestSuite) TestForgotPassword() {
	url := "/auth/forgot-password"

	s.Run("success: returns 200 OK with a neutral message", func() {
		reqBody := reqdto.ForgotPasswordRequest{Email: "jane@example.com"}
		s.mockUseCase.EXPECT().ForgotPassword(gomock.Any(), reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response["message"], "reset link")
	})

	s.Run("error: 400 Bad Request when email is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		reqBody := reqdto.ForgotPasswordRequest{Email: "jane@example.com"}
		s.mockUseCase.EXPECT().ForgotPassword(gomock.Any(), reqBody).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestResetPassword
// ================================================================================

func (s *UserHandlerTestSuite) TestResetPassword() {
	url := "/auth/reset-password"
	reqBody := reqdto.ResetPasswordRequest{Token: "sometoken", Password: "newpassword123"}

	s.Run("success: returns 200 OK", func() {
		s.mockUseCase.EXPECT().ResetPassword(gomock.Any(), reqBody).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid or expired token", func() {
		s.mockUseCase.EXPECT().ResetPassword(gomock.Any(), reqBody).
			Return(usecase.ErrResetTokenInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired reset token")
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"password": "newpassword123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request when password is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"token": "sometoken"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestListUsers / TestGetUser
// ================================================================================

func (s *UserHandlerTestSuite) TestListUsers() {
	s.Run("success: returns every user", func() {
		rms := []*readmodel.AuthorizedUserRM{s.userRM(), s.userRM()}
		s.mockUseCase.EXPECT().ListUsers(gomock.Any()).
			Return(rms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "bearer-token")

		var response []readmodel.AuthorizedUserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list serializes as []", func() {
		s.mockUseCase.EXPECT().ListUsers(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "bearer-token")

		var response []readmodel.AuthorizedUserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

func (s *UserHandlerTestSuite) TestGetUser() {
	rm := s.userRM()
	url := "/users/" + rm.ID.String()

	s.Run("success: returns 200 OK with the user", func() {
		s.mockUseCase.EXPECT().GetUser(gomock.Any(), rm.ID).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response readmodel.AuthorizedUserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.ID, response.ID)
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockUseCase.EXPECT().GetUser(gomock.Any(), rm.ID).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})
}

// ================================================================================
// TestUpdateUser / TestDeleteUser
// ================================================================================

func (s *UserHandlerTestSuite) TestUpdateUser() {
	rm := s.userRM()
	url := "/users/" + rm.ID.String()
	reqBody := reqdto.AdminUpdateUserRequest{Name: "Managed User"}

	s.Run("success: returns 200 OK with the updated user", func() {
		rm.Name = "Managed User"
		s.mockUseCase.EXPECT().UpdateUser(gomock.Any(), rm.ID, reqBody).
			Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Managed User", response["name"])
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.mockUseCase.EXPECT().UpdateUser(gomock.Any(), rm.ID, reqBody).
			Return(nil, usecase.ErrEmailAlreadyRegistered).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockUseCase.EXPECT().UpdateUser(gomock.Any(), rm.ID, reqBody).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *UserHandlerTestSuite) TestDeleteUser() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().DeleteUser(gomock.Any(), userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockUseCase.EXPECT().DeleteUser(gomock.Any(), userID).
			Return(usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
