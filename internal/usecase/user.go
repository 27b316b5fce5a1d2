package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"salon-booking-api/internal/domain/user"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/pkg/password"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrResetTokenInvalid = errors.New("reset token is invalid or expired")

const resetTokenTTL = time.Hour

type UserManagementRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
	// UpdateProfile keeps the stored name or hash when the argument is empty.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, passwordHash string) (*readmodel.AuthorizedUserRM, error)
	UpdateByAdmin(ctx context.Context, id uuid.UUID, name, email string) (*readmodel.AuthorizedUserRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetResetToken(ctx context.Context, email user.Email, token string, expiresAt time.Time) (*readmodel.AuthorizedUserRM, error)
	FindByResetToken(ctx context.Context, token string) (uuid.UUID, time.Time, error)
	// ResetPassword stores the new hash and clears the reset token.
	ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type PasswordResetMailer interface {
	SendPasswordReset(name, email, token string) error
}

type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error)
	GetUser(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.AuthorizedUserRM, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.AdminUpdateUserRequest) (*readmodel.AuthorizedUserRM, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ForgotPassword(ctx context.Context, req reqdto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error
}

type userUseCaseImpl struct {
	userRepo    UserRepository
	mgmtRepo    UserManagementRepository
	clock       clock.Clock
	resetMailer PasswordResetMailer
}

func NewUserUseCase(
	userRepo UserRepository,
	mgmtRepo UserManagementRepository,
	clk clock.Clock,
	resetMailer PasswordResetMailer,
) UserUseCase {
	return &userUseCaseImpl{
		userRepo:    userRepo,
		mgmtRepo:    mgmtRepo,
		clock:       clk,
		resetMailer: resetMailer,
	}
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	users, err := u.mgmtRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (u *userUseCaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return rm, nil
}

func (u *userUseCaseImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.AuthorizedUserRM, error) {
	var hash string
	if req.Password != "" {
		pw, err := user.NewPassword(req.Password)
		if err != nil {
			return nil, err
		}
		hash, err = password.HashPassword(pw.Value())
		if err != nil {
			return nil, errs.Wrap(err, "failed to hash password")
		}
	}

	rm, err := u.mgmtRepo.UpdateProfile(ctx, id, req.Name, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to update profile")
	}
	return rm, nil
}

func (u *userUseCaseImpl) UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.AdminUpdateUserRequest) (*readmodel.AuthorizedUserRM, error) {
	if req.Email != "" {
		if _, err := user.NewEmail(req.Email); err != nil {
			return nil, err
		}
	}

	rm, err := u.mgmtRepo.UpdateByAdmin(ctx, id, req.Name, req.Email)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Wrap(err, "failed to update user")
	}
	return rm, nil
}

func (u *userUseCaseImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := u.mgmtRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}

// ForgotPassword always reports success to the caller. Whether the address
// exists, the token was stored, or the mail went out must not be observable,
// or the endpoint becomes an account enumeration oracle.
func (u *userUseCaseImpl) ForgotPassword(ctx context.Context, req reqdto.ForgotPasswordRequest) error {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		return errs.Wrap(err, "failed to generate reset token")
	}

	rm, err := u.mgmtRepo.SetResetToken(ctx, email, token, u.clock.Now().Add(resetTokenTTL))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Wrap(err, "failed to store reset token")
	}

	go func() {
		if err := u.resetMailer.SendPasswordReset(rm.Name, rm.Email, token); err != nil {
			slog.Warn("password reset delivery failed", "error", err)
		}
	}()
	return nil
}

func (u *userUseCaseImpl) ResetPassword(ctx context.Context, req reqdto.ResetPasswordRequest) error {
	id, expiresAt, err := u.mgmtRepo.FindByResetToken(ctx, req.Token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResetTokenInvalid
		}
		return errs.Wrap(err, "failed to look up reset token")
	}
	if u.clock.Now().After(expiresAt) {
		return ErrResetTokenInvalid
	}

	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "failed to hash password")
	}

	if err := u.mgmtRepo.ResetPassword(ctx, id, hash); err != nil {
		return errs.Wrap(err, "failed to reset password")
	}
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
