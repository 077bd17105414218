package services

import (
	portsrepo "github.com/bdpay/dashboard-backend/internal/core/ports/repositories"
	portssvc "github.com/bdpay/dashboard-backend/internal/core/ports/services"
	"github.com/bdpay/dashboard-backend/internal/platform/config"
)

// NewServiceContainer wires the service facades onto the repositories.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
