package bootstrap

import (
	"salon-booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
