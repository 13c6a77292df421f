package handler

import (
	"net/http"

	"github.com/vfg2006/mko-api/internal/api/handler/router"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/internal/usecases/adserving"
	"github.com/vfg2006/mko-api/internal/usecases/authenticating"
	"github.com/vfg2006/mko-api/internal/usecases/contacting"
	"github.com/vfg2006/mko-api/internal/usecases/listing"
	"github.com/vfg2006/mko-api/pkg/metrics"
	"github.com/vfg2006/mko-api/pkg/middleware"
)

// CSRFIgnoredPaths recebem eventos do navegador e ficam fora da verificação de CSRF
var CSRFIgnoredPaths = []string{"/api/ad-event", "/api/ad-system/ad-event"}

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/ping",
			Method:  http.MethodGet,
			Handler: Ping(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func AdSystem(service adserving.AdServingService) []router.Route {
	var routes []router.Route

	for _, prefix := range []string{"/api", "/api/ad-system"} {
		routes = append(routes,
			router.Route{
				Path:    prefix + "/ad-serve",
				Method:  http.MethodGet,
				Handler: AdServe(service),
			},
			router.Route{
				Path:    prefix + "/ad-event",
				Method:  http.MethodPost,
				Handler: AdEvent(service),
			},
		)
	}

	return append(routes, router.Route{
		Path:        "/api/ad-system/ping",
		Method:      http.MethodGet,
		Handler:     AdSystemPing(),
		Middlewares: middlewares{middleware.AdminOnly()},
	})
}

func Authentication(service authenticating.PasswordResetter, csrfIssuer *authenticating.CSRFIssuer, resetConfig config.Reset) []router.Route {
	// o limitador é compartilhado entre as rotas equivalentes
	requestLimiter := middleware.RateLimitByIP(resetConfig.RequestLimit, resetConfig.LimitWindow)
	confirmLimiter := middleware.RateLimitByIP(resetConfig.ConfirmLimit, resetConfig.LimitWindow)

	routes := []router.Route{
		{
			Path:    "/api/auth/ping",
			Method:  http.MethodGet,
			Handler: AuthPing(),
		},
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: NotImplemented(),
		},
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: NotImplemented(),
		},
		{
			Path:        "/api/auth/reset/confirm",
			Method:      http.MethodPost,
			Handler:     ConfirmPasswordReset(service),
			Middlewares: middlewares{confirmLimiter},
		},
		{
			Path:    "/api/csrf",
			Method:  http.MethodGet,
			Handler: IssueCSRFToken(csrfIssuer),
		},
	}

	for _, path := range []string{"/api/auth/reset/request", "/api/auth/request-reset", "/api/auth/reset-password"} {
		routes = append(routes, router.Route{
			Path:        path,
			Method:      http.MethodPost,
			Handler:     RequestPasswordReset(service, resetConfig.Debug),
			Middlewares: middlewares{requestLimiter},
		})
	}

	return routes
}

func Admin(adminService adserving.AdminService, contactService contacting.ContactService, listingService listing.ListingService, cronServices CronJobServices) []router.Route {
	adminOnly := middlewares{middleware.AdminOnly()}

	return []router.Route{
		{Path: "/api/admin/ping", Method: http.MethodGet, Handler: AdminPing(), Middlewares: adminOnly},

		{Path: "/api/admin/ad-slots", Method: http.MethodGet, Handler: ListAdSlots(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-slots/:id", Method: http.MethodGet, Handler: GetAdSlot(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-slots/:id", Method: http.MethodPatch, Handler: UpdateAdSlot(adminService), Middlewares: adminOnly},

		{Path: "/api/admin/ad-creatives", Method: http.MethodGet, Handler: ListAdCreatives(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-creatives", Method: http.MethodPost, Handler: CreateAdCreative(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-creatives/:id", Method: http.MethodGet, Handler: GetAdCreative(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-creatives/:id", Method: http.MethodPatch, Handler: UpdateAdCreative(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/ad-creatives/:id", Method: http.MethodDelete, Handler: DeleteAdCreative(adminService), Middlewares: adminOnly},

		{Path: "/api/admin/ad-events", Method: http.MethodGet, Handler: ListAdEvents(adminService), Middlewares: adminOnly},
		{Path: "/api/admin/contacts", Method: http.MethodGet, Handler: ListContacts(contactService), Middlewares: adminOnly},
		{Path: "/api/admin/reports", Method: http.MethodGet, Handler: ListReports(listingService), Middlewares: adminOnly},

		{Path: "/api/admin/cron/status", Method: http.MethodGet, Handler: GetCronStatus(cronServices), Middlewares: adminOnly},
		{Path: "/api/admin/cron/:type/run", Method: http.MethodPost, Handler: RunCronJob(cronServices), Middlewares: adminOnly},
	}
}

func Listings(service listing.ListingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ads",
			Method:  http.MethodGet,
			Handler: ListListings(service),
		},
		{
			Path:    "/api/ads/:id",
			Method:  http.MethodGet,
			Handler: GetListing(service),
		},
		{
			Path:        "/api/ads",
			Method:      http.MethodPost,
			Handler:     CreateListing(service),
			Middlewares: middlewares{middleware.AuthRequired()},
		},
		{
			Path:        "/api/ads/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteListing(service),
			Middlewares: middlewares{middleware.AuthRequired()},
		},
		{
			Path:    "/api/ads/:id/report",
			Method:  http.MethodPost,
			Handler: ReportListing(service),
		},
	}
}

func Contact(service contacting.ContactService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/contact",
			Method:  http.MethodPost,
			Handler: SubmitContact(service),
		},
	}
}

func Uploads() []router.Route {
	return []router.Route{
		{
			Path:    "/api/uploads/ping",
			Method:  http.MethodGet,
			Handler: UploadsPing(),
		},
		{
			Path:    "/api/uploads",
			Method:  http.MethodPost,
			Handler: Upload(),
		},
	}
}
