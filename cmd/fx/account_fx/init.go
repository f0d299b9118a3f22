package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
	"tobugo/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens *memcache.ResetTokenStore,
	mailService services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
