package usecase

import (
	"context"
	"errors"

	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrArtistEmailTaken      = errors.New("artist email already exists")
)

type ArtistWriteRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.ArtistRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ArtistRM, error)
	Create(ctx context.Context, name, email string) (*readmodel.ArtistRM, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) (*readmodel.ArtistRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CatalogRepository interface {
	FindCategories(ctx context.Context) ([]*readmodel.CategoryRM, error)
	CreateCategory(ctx context.Context, name string) (*readmodel.CategoryRM, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	FindServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*readmodel.ServiceRM, error)
	CreateService(ctx context.Context, categoryID uuid.UUID, name, duration string, priceCents int64) (*readmodel.ServiceRM, error)
	UpdateService(ctx context.Context, id uuid.UUID, name, duration string, priceCents int64) (*readmodel.ServiceRM, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type CatalogUseCase interface {
	ListArtists(ctx context.Context) ([]*readmodel.ArtistRM, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*readmodel.ArtistRM, error)
	CreateArtist(ctx context.Context, req reqdto.CreateArtistRequest) (*readmodel.ArtistRM, error)
	UpdateArtist(ctx context.Context, id uuid.UUID, req reqdto.UpdateArtistRequest) (*readmodel.ArtistRM, error)
	DeleteArtist(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error)
	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*readmodel.CategoryRM, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListServices(ctx context.Context, categoryID uuid.UUID) ([]*readmodel.ServiceRM, error)
	CreateService(ctx context.Context, categoryID uuid.UUID, req reqdto.CreateServiceRequest) (*readmodel.ServiceRM, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*readmodel.ServiceRM, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	artistRepo  ArtistWriteRepository
	catalogRepo CatalogRepository
}

func NewCatalogUseCase(artistRepo ArtistWriteRepository, catalogRepo CatalogRepository) CatalogUseCase {
	return &catalogUseCaseImpl{
		artistRepo:  artistRepo,
		catalogRepo: catalogRepo,
	}
}

func (u *catalogUseCaseImpl) ListArtists(ctx context.Context) ([]*readmodel.ArtistRM, error) {
	artists, err := u.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list artists")
	}
	return artists, nil
}

func (u *catalogUseCaseImpl) GetArtist(ctx context.Context, id uuid.UUID) (*readmodel.ArtistRM, error) {
	rm, err := u.artistRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, errs.Wrap(err, "failed to find artist")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) CreateArtist(ctx context.Context, req reqdto.CreateArtistRequest) (*readmodel.ArtistRM, error) {
	rm, err := u.artistRepo.Create(ctx, req.Name, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrArtistEmailTaken
		}
		return nil, errs.Wrap(err, "failed to create artist")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) UpdateArtist(ctx context.Context, id uuid.UUID, req reqdto.UpdateArtistRequest) (*readmodel.ArtistRM, error) {
	rm, err := u.artistRepo.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrArtistNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrArtistEmailTaken
		}
		return nil, errs.Wrap(err, "failed to update artist")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	if err := u.artistRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrArtistNotFound
		}
		return errs.Wrap(err, "failed to delete artist")
	}
	return nil
}

func (u *catalogUseCaseImpl) ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error) {
	categories, err := u.catalogRepo.FindCategories(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list categories")
	}
	return categories, nil
}

func (u *catalogUseCaseImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (*readmodel.CategoryRM, error) {
	rm, err := u.catalogRepo.CreateCategory(ctx, req.Name)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCategoryAlreadyExists
		}
		return nil, errs.Wrap(err, "failed to create category")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := u.catalogRepo.DeleteCategory(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFound
		}
		return errs.Wrap(err, "failed to delete category")
	}
	return nil
}

func (u *catalogUseCaseImpl) ListServices(ctx context.Context, categoryID uuid.UUID) ([]*readmodel.ServiceRM, error) {
	services, err := u.catalogRepo.FindServicesByCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	return services, nil
}

func (u *catalogUseCaseImpl) CreateService(ctx context.Context, categoryID uuid.UUID, req reqdto.CreateServiceRequest) (*readmodel.ServiceRM, error) {
	rm, err := u.catalogRepo.CreateService(ctx, categoryID, req.Name, req.Duration, req.PriceCents)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Wrap(err, "failed to create service")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*readmodel.ServiceRM, error) {
	rm, err := u.catalogRepo.UpdateService(ctx, id, req.Name, req.Duration, req.PriceCents)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to update service")
	}
	return rm, nil
}

func (u *catalogUseCaseImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := u.catalogRepo.DeleteService(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Wrap(err, "failed to delete service")
	}
	return nil
}
