package mail_fx

import (
	"campusvoice/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() services.IMailService {
	return services.NewSMTPMailService(services.SMTPConfigFromEnv())
}
