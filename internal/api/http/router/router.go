package router

import (
	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/api/http/handler"
	"github.com/Bemyself19/sehatynet_backend/internal/api/http/middleware"
	"github.com/Bemyself19/sehatynet_backend/internal/service/auth"
	"github.com/Bemyself19/sehatynet_backend/internal/service/file"
	"github.com/Bemyself19/sehatynet_backend/internal/service/fulfillment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/notification"
	"github.com/Bemyself19/sehatynet_backend/internal/service/payment"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
	"github.com/Bemyself19/sehatynet_backend/internal/service/settings"
	"github.com/Bemyself19/sehatynet_backend/internal/service/user"
	"github.com/Bemyself19/sehatynet_backend/pkg/authorize"
	pasetotoken "github.com/Bemyself19/sehatynet_backend/pkg/paseto"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	UserSvc         user.Service
	AuthSvc         auth.Service
	ProviderSvc     provider.Service
	FulfillmentSvc  fulfillment.Service
	FileSvc         file.Service
	PaymentSvc      payment.Service
	SettingsSvc     settings.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	providerH := handler.NewProviderHandler(r.p.ProviderSvc)
	requestH := handler.NewRequestHandler(r.p.FulfillmentSvc, r.p.Auth)
	fileH := handler.NewFileHandler(r.p.FileSvc, r.p.FulfillmentSvc)
	paymentH := handler.NewPaymentHandler(r.p.PaymentSvc, r.p.Auth)
	settingsH := handler.NewSettingsHandler(r.p.SettingsSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerProviderRoutes(api, providerH, authRequired, requirePerm)
	r.registerRequestRoutes(api, requestH, fileH, paymentH, authRequired, requirePerm)
	r.registerPaymentRoutes(api, paymentH, authRequired, requirePerm)
	r.registerSettingsRoutes(api, settingsH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
