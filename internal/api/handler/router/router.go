package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/middleware"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos da rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada: "+r.URL.Path, nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método "+r.Method+" não suportado", nil)
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos.
// Os parâmetros da rota viram campos de domínio no log da requisição.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, annotate(route.Path, handler))
	}
}

func annotate(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		middleware.AnnotateRequest(req.Context(), RouteFields(path, httprouter.ParamsFromContext(req.Context())))
		next.ServeHTTP(w, req)
	})
}

// RouteFields traduz os parâmetros de uma rota para os campos usados nos logs dos serviços
func RouteFields(path string, params httprouter.Params) log.Fields {
	fields := log.Fields{"route": path}

	if id := params.ByName("id"); id != "" {
		if strings.HasPrefix(path, "/v1/order-bookers/") {
			fields["order_booker_id"] = id
		} else {
			fields["target_id"] = id
		}
	}

	year, yerr := strconv.Atoi(params.ByName("year"))
	month, merr := strconv.Atoi(params.ByName("month"))
	if yerr == nil && merr == nil {
		fields["period"] = period.Label(year, month)
	}

	if kind := params.ByName("kind"); kind != "" {
		fields["widget_kind"] = kind
	}
	if cronType := params.ByName("type"); cronType != "" {
		fields["cron_type"] = cronType
	}

	return fields
}
