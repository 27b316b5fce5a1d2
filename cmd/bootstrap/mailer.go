package bootstrap

import (
	"salon-booking-api/internal/infra/mailer"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(usecase.Notifier)),
			fx.As(new(usecase.PasswordResetMailer)),
		),
	),
)

func NewMailer(cfg config.Config) *mailer.Mailer {
	return mailer.NewMailer(cfg.SMTP)
}
