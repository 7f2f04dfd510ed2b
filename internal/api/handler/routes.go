package handler

import (
	"net/http"

	"github.com/vfg2006/booker-targets-api/internal/api/handler/router"
	"github.com/vfg2006/booker-targets-api/internal/usecases/achievement"
	"github.com/vfg2006/booker-targets-api/internal/usecases/dashboard"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
	"github.com/vfg2006/booker-targets-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func MonthlyTargets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     CreateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodGet,
			Handler:     GetTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:id/achieved",
			Method:      http.MethodPut,
			Handler:     ReconcileTargetAchieved(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/periods/:year/:month/targets",
			Method:      http.MethodGet,
			Handler:     GetTargetsByPeriod(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/order-bookers/:id/targets",
			Method:      http.MethodGet,
			Handler:     GetTargetsByOrderBooker(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BatchTargets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/batch/targets",
			Method:      http.MethodPost,
			Handler:     BatchCreateTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/batch/targets",
			Method:      http.MethodPut,
			Handler:     BatchUpsertTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/batch/targets/copy",
			Method:      http.MethodPost,
			Handler:     CopyTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Achievement(service achievement.AchievementService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods/:year/:month/progress",
			Method:      http.MethodGet,
			Handler:     GetPeriodProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods/:year/:month/summary",
			Method:      http.MethodGet,
			Handler:     GetPeriodSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/reset",
			Method:      http.MethodPost,
			Handler:     ResetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/widgets/:kind/visibility",
			Method:      http.MethodPut,
			Handler:     SetWidgetVisibility(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/widgets/:kind/position",
			Method:      http.MethodPut,
			Handler:     UpdateWidgetPosition(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/widgets/:kind/data",
			Method:      http.MethodGet,
			Handler:     GetWidgetData(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
