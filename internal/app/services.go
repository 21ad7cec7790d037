package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	"github.com/Bemyself19/sehatynet_backend/internal/service/auth"
	svcfile "github.com/Bemyself19/sehatynet_backend/internal/service/file"
	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/notification"
	"github.com/Bemyself19/sehatynet_backend/internal/service/payment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
	"github.com/Bemyself19/sehatynet_backend/internal/service/settings"
	"github.com/Bemyself19/sehatynet_backend/internal/service/user"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
	s3pkg "github.com/Bemyself19/sehatynet_backend/pkg/s3"
	"github.com/Bemyself19/sehatynet_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideProviderService,
		ProvideFulfillmentService,
		ProvideSettingsService,
		ProvidePaymentService,
		ProvideNotificationService,
		ProvideFileService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(client *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(client, authz)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	smsCli *sms.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) (auth.Service, error) {
	return auth.New(db, rdb, smsCli, paseto, authz, cfg)
}

func ProvideProviderService(db *repo.Client) provider.Service {
	return provider.New(db)
}

func ProvideFulfillmentService(db *repo.Client, providers provider.Service) fulfillment.Service {
	return fulfillment.New(db, providers)
}

func ProvideSettingsService(db *repo.Client, rdb *redis.Client) settings.Service {
	return settings.New(db, rdb)
}

func ProvidePaymentService(db *repo.Client, settingsSvc settings.Service, requests fulfillment.Service) payment.Service {
	return payment.New(db, settingsSvc, requests)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvideFileService(s3 *s3pkg.Client) svcfile.Service {
	return svcfile.New(s3)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
