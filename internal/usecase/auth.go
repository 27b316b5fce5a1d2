package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/jwt"
	"salon-booking-api/internal/pkg/password"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrAuthenticationFailed   = errors.New("authentication failed")
	ErrTokenGeneration        = errors.New("token generation failed")
	ErrTokenValidation        = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, name string, email user.Email, passwordHash string, role user.Role) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, name string, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a customer account. The first admin is seeded out of band;
// there is no self-service path to the admin role.
func (a *authUseCaseImpl) Register(ctx context.Context, name string, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	userRM, err := a.userRepo.Create(ctx, name, credentials.Email(), hash, user.RoleCustomer)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailAlreadyRegistered
		}
		return "", nil, err
	}

	token, err := a.generateToken(userRM)
	if err != nil {
		return "", nil, err
	}
	return token, userRM, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !userRM.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.generateToken(userRM)
	if err != nil {
		return "", nil, err
	}
	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	return userRM, nil
}

func (a *authUseCaseImpl) generateToken(userRM *readmodel.AuthorizedUserRM) (string, error) {
	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}
