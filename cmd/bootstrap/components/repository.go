package components

import (
	"salon-booking-api/internal/infra/db"
	repo_impl "salon-booking-api/internal/infra/repository"
	"salon-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
			fx.As(new(usecase.UserManagementRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewArtistRepository,
			fx.As(new(usecase.ArtistRepository)),
			fx.As(new(usecase.ArtistWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(usecase.ServiceRepository)),
			fx.As(new(usecase.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewAnalyticsRepository,
			fx.As(new(usecase.AnalyticsRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
