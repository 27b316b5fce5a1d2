//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking-api/internal/domain/user"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/password"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/internal/usecase/readmodel"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *usecasemock.MockUserRepository
	mockMgmtRepo *usecasemock.MockUserManagementRepository
	mockMailer   *usecasemock.MockPasswordResetMailer
	clock        *clock.MockClock
	uc           usecase.UserUseCase
}

func (s *UserUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.mockMgmtRepo = usecasemock.NewMockUserManagementRepository(s.mockCtrl)
	s.mockMailer = usecasemock.NewMockPasswordResetMailer(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC))

	s.uc = usecase.NewUserUseCase(s.mockUserRepo, s.mockMgmtRepo, s.clock, s.mockMailer)
}

func (s *UserUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserUseCaseSuite(t *testing.T) {
	suite.Run(t, new(UserUseCaseTestSuite))
}

func testUserRM(email string) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        uuid.New(),
		Name:      "Jane Wanjiku",
		Email:     email,
		Role:      "customer",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}

// ================================================================================
// ForgotPassword
// ================================================================================

func (s *UserUseCaseTestSuite) TestForgotPassword() {
	ctx := context.Background()
	rm := testUserRM("jane@example.com")
	email, err := user.NewEmail(rm.Email)
	s.Require().NoError(err)
	wantExpiry := s.clock.Now().Add(time.Hour)

	s.Run("成功: トークンを保存しリセットメールを送る", func() {
		var storedToken string
		s.mockMgmtRepo.EXPECT().SetResetToken(ctx, email, gomock.Any(), wantExpiry).
			DoAndReturn(func(_ context.Context, _ user.Email, token string, _ time.Time) (*readmodel.AuthorizedUserRM, error) {
				storedToken = token
				return rm, nil
			}).Times(1)

		sent := make(chan struct{})
		s.mockMailer.EXPECT().SendPasswordReset(rm.Name, rm.Email, gomock.Any()).
			Do(func(_, _, token string) {
				s.NotEmpty(token)
				s.Equal(storedToken, token)
				close(sent)
			}).Return(nil).Times(1)

		s.NoError(s.uc.ForgotPassword(ctx, reqdto.ForgotPasswordRequest{Email: rm.Email}))
		s.waitSent(sent)
	})

	s.Run("成功: 未登録メールでも成功として扱いメールは送らない", func() {
		s.mockMgmtRepo.EXPECT().SetResetToken(ctx, email, gomock.Any(), wantExpiry).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		s.NoError(s.uc.ForgotPassword(ctx, reqdto.ForgotPasswordRequest{Email: rm.Email}))
	})

	s.Run("成功: メール送信失敗でも成功として扱う", func() {
		s.mockMgmtRepo.EXPECT().SetResetToken(ctx, email, gomock.Any(), wantExpiry).
			Return(rm, nil).Times(1)

		sent := make(chan struct{})
		s.mockMailer.EXPECT().SendPasswordReset(rm.Name, rm.Email, gomock.Any()).
			Do(func(_, _, _ string) { close(sent) }).
			Return(errors.New("smtp down")).Times(1)

		s.NoError(s.uc.ForgotPassword(ctx, reqdto.ForgotPasswordRequest{Email: rm.Email}))
		s.waitSent(sent)
	})

	s.Run("成功: メール形式でない値も成功として扱い何もしない", func() {
		s.NoError(s.uc.ForgotPassword(ctx, reqdto.ForgotPasswordRequest{Email: "not-an-email"}))
	})

	s.Run("失敗: トークン保存のDB障害はエラーになる", func() {
		s.mockMgmtRepo.EXPECT().SetResetToken(ctx, email, gomock.Any(), wantExpiry).
			Return(nil, infra.WrapRepoErr("update failed", errors.New("connection reset"), infra.KindDBFailure)).Times(1)

		s.Error(s.uc.ForgotPassword(ctx, reqdto.ForgotPasswordRequest{Email: rm.Email}))
	})
}

func (s *UserUseCaseTestSuite) waitSent(sent <-chan struct{}) {
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		s.Fail("reset mail goroutine did not run")
	}
}

// ================================================================================
// ResetPassword
// ================================================================================

func (s *UserUseCaseTestSuite) TestResetPassword() {
	ctx := context.Background()
	userID := uuid.New()
	token := "a3f1c2d4e5b6a7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f70"

	s.Run("成功: 新しいパスワードを保存する", func() {
		s.mockMgmtRepo.EXPECT().FindByResetToken(ctx, token).
			Return(userID, s.clock.Now().Add(30*time.Minute), nil).Times(1)
		s.mockMgmtRepo.EXPECT().ResetPassword(ctx, userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				s.NoError(password.ComparePassword(hash, "newpassword123"))
				return nil
			}).Times(1)

		s.NoError(s.uc.ResetPassword(ctx, reqdto.ResetPasswordRequest{Token: token, Password: "newpassword123"}))
	})

	s.Run("失敗: 不明なトークン", func() {
		s.mockMgmtRepo.EXPECT().FindByResetToken(ctx, token).
			Return(uuid.Nil, time.Time{}, infra.WrapRepoErr("reset token not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		err := s.uc.ResetPassword(ctx, reqdto.ResetPasswordRequest{Token: token, Password: "newpassword123"})
		s.ErrorIs(err, usecase.ErrResetTokenInvalid)
	})

	s.Run("失敗: 期限切れトークン", func() {
		s.mockMgmtRepo.EXPECT().FindByResetToken(ctx, token).
			Return(userID, s.clock.Now().Add(-time.Minute), nil).Times(1)

		err := s.uc.ResetPassword(ctx, reqdto.ResetPasswordRequest{Token: token, Password: "newpassword123"})
		s.ErrorIs(err, usecase.ErrResetTokenInvalid)
	})

	s.Run("失敗: 短すぎるパスワード", func() {
		s.mockMgmtRepo.EXPECT().FindByResetToken(ctx, token).
			Return(userID, s.clock.Now().Add(30*time.Minute), nil).Times(1)

		err := s.uc.ResetPassword(ctx, reqdto.ResetPasswordRequest{Token: token, Password: "short"})
		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})
}

// ================================================================================
// UpdateProfile
// ================================================================================

func (s *UserUseCaseTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	rm := testUserRM("jane@example.com")

	s.Run("成功: 名前だけ更新しパスワードは維持する", func() {
		s.mockMgmtRepo.EXPECT().UpdateProfile(ctx, rm.ID, "New Name", "").
			Return(rm, nil).Times(1)

		got, err := s.uc.UpdateProfile(ctx, rm.ID, reqdto.UpdateProfileRequest{Name: "New Name"})
		s.NoError(err)
		s.Equal(rm, got)
	})

	s.Run("成功: パスワードも更新する", func() {
		s.mockMgmtRepo.EXPECT().UpdateProfile(ctx, rm.ID, "New Name", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, hash string) (*readmodel.AuthorizedUserRM, error) {
				s.NoError(password.ComparePassword(hash, "newpassword123"))
				return rm, nil
			}).Times(1)

		got, err := s.uc.UpdateProfile(ctx, rm.ID, reqdto.UpdateProfileRequest{Name: "New Name", Password: "newpassword123"})
		s.NoError(err)
		s.Equal(rm, got)
	})

	s.Run("失敗: 短すぎるパスワード", func() {
		got, err := s.uc.UpdateProfile(ctx, rm.ID, reqdto.UpdateProfileRequest{Password: "short"})
		s.ErrorIs(err, user.ErrPasswordTooWeak)
		s.Nil(got)
	})

	s.Run("失敗: 存在しないユーザー", func() {
		s.mockMgmtRepo.EXPECT().UpdateProfile(ctx, rm.ID, "New Name", "").
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		got, err := s.uc.UpdateProfile(ctx, rm.ID, reqdto.UpdateProfileRequest{Name: "New Name"})
		s.ErrorIs(err, usecase.ErrUserNotFound)
		s.Nil(got)
	})
}

// ================================================================================
// UpdateUser / DeleteUser / ListUsers / GetUser
// ================================================================================

func (s *UserUseCaseTestSuite) TestUpdateUser() {
	ctx := context.Background()
	rm := testUserRM("jane@example.com")

	s.Run("成功: 名前とメールを更新する", func() {
		s.mockMgmtRepo.EXPECT().UpdateByAdmin(ctx, rm.ID, "New Name", "new@example.com").
			Return(rm, nil).Times(1)

		got, err := s.uc.UpdateUser(ctx, rm.ID, reqdto.AdminUpdateUserRequest{Name: "New Name", Email: "new@example.com"})
		s.NoError(err)
		s.Equal(rm, got)
	})

	s.Run("失敗: メールアドレスが既に使われている", func() {
		s.mockMgmtRepo.EXPECT().UpdateByAdmin(ctx, rm.ID, "", "taken@example.com").
			Return(nil, infra.WrapRepoErr("email already registered", errors.New("unique violation"), infra.KindDuplicateKey)).Times(1)

		_, err := s.uc.UpdateUser(ctx, rm.ID, reqdto.AdminUpdateUserRequest{Email: "taken@example.com"})
		s.ErrorIs(err, usecase.ErrEmailAlreadyRegistered)
	})

	s.Run("失敗: メール形式でない値は拒否される", func() {
		_, err := s.uc.UpdateUser(ctx, rm.ID, reqdto.AdminUpdateUserRequest{Email: "not-an-email"})
		s.ErrorIs(err, user.ErrInvalidEmail)
	})

	s.Run("失敗: 存在しないユーザー", func() {
		s.mockMgmtRepo.EXPECT().UpdateByAdmin(ctx, rm.ID, "New Name", "").
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.uc.UpdateUser(ctx, rm.ID, reqdto.AdminUpdateUserRequest{Name: "New Name"})
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *UserUseCaseTestSuite) TestDeleteUser() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("成功: ユーザーを削除する", func() {
		s.mockMgmtRepo.EXPECT().Delete(ctx, userID).Return(nil).Times(1)
		s.NoError(s.uc.DeleteUser(ctx, userID))
	})

	s.Run("失敗: 存在しないユーザー", func() {
		s.mockMgmtRepo.EXPECT().Delete(ctx, userID).
			Return(infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		s.ErrorIs(s.uc.DeleteUser(ctx, userID), usecase.ErrUserNotFound)
	})
}

func (s *UserUseCaseTestSuite) TestListUsers() {
	ctx := context.Background()

	s.Run("成功: 全ユーザーを返す", func() {
		rms := []*readmodel.AuthorizedUserRM{testUserRM("a@example.com"), testUserRM("b@example.com")}
		s.mockMgmtRepo.EXPECT().FindAll(ctx).Return(rms, nil).Times(1)

		got, err := s.uc.ListUsers(ctx)
		s.NoError(err)
		s.Len(got, 2)
	})
}

func (s *UserUseCaseTestSuite) TestGetUser() {
	ctx := context.Background()
	rm := testUserRM("jane@example.com")

	s.Run("成功: ユーザーを取得できる", func() {
		s.mockUserRepo.EXPECT().FindByID(ctx, rm.ID).Return(rm, nil).Times(1)

		got, err := s.uc.GetUser(ctx, rm.ID)
		s.NoError(err)
		s.Equal(rm, got)
	})

	s.Run("失敗: 存在しないユーザー", func() {
		missingID := uuid.New()
		s.mockUserRepo.EXPECT().FindByID(ctx, missingID).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.uc.GetUser(ctx, missingID)
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}
