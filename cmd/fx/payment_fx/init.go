package payment_fx

import (
	"os"

	"go.uber.org/fx"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
)

var Module = fx.Provide(
	providePaymentService, providePaymentController)

func providePaymentService(
	transactionRepo repositories.TransactionRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	mail services.MailServiceInterface,
) services.PaymentServiceInterface {
	cfg := services.PayOSConfig{
		ClientID:    os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:      os.Getenv("PAYOS_API_KEY"),
		ChecksumKey: os.Getenv("PAYOS_CHECKSUM_KEY"),
		Provider:    "payos",
	}
	return services.NewPaymentService(cfg, transactionRepo, tripRepo, accountRepo, mail)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
