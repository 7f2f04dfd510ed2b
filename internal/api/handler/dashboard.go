package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/dashboard"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/middleware"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

type widgetVisibilityRequest struct {
	Visible *bool `json:"visible"`
}

func userKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok || claims.UserKey() == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.UserKey(), true
}

func widgetKind(r *http.Request) domain.WidgetKind {
	return domain.WidgetKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
}

func GetDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userKey(w, r)
		if !ok {
			return
		}

		config, err := service.GetConfig(r.Context(), user)
		if err != nil {
			writeServiceError(w, err, "Erro ao carregar painel")
			return
		}

		writeJSON(w, http.StatusOK, config)
	})
}

func SetWidgetVisibility(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userKey(w, r)
		if !ok {
			return
		}

		var request widgetVisibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}
		if request.Visible == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo visible é obrigatório", nil)
			return
		}

		config, err := service.SetWidgetVisibility(r.Context(), user, widgetKind(r), *request.Visible)
		if err != nil {
			writeServiceError(w, err, "Erro ao alterar visibilidade do widget")
			return
		}

		writeJSON(w, http.StatusOK, config)
	})
}

func UpdateWidgetPosition(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userKey(w, r)
		if !ok {
			return
		}

		var position domain.WidgetPosition
		if err := json.NewDecoder(r.Body).Decode(&position); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		config, err := service.UpdateWidgetPosition(r.Context(), user, widgetKind(r), position)
		if err != nil {
			writeServiceError(w, err, "Erro ao mover widget")
			return
		}

		writeJSON(w, http.StatusOK, config)
	})
}

func ResetDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userKey(w, r)
		if !ok {
			return
		}

		config, err := service.ResetToDefault(r.Context(), user)
		if err != nil {
			writeServiceError(w, err, "Erro ao restaurar painel")
			return
		}

		writeJSON(w, http.StatusOK, config)
	})
}

func GetWidgetData(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		asOf, err := asOfParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de referência inválida, use AAAA-MM-DD", nil)
			return
		}

		year, month := asOf.Year(), int(asOf.Month())
		if value := query.Get("year"); value != "" {
			if year, err = strconv.Atoi(value); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano inválido", nil)
				return
			}
		}
		if value := query.Get("month"); value != "" {
			if month, err = strconv.Atoi(value); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido", nil)
				return
			}
		}

		data, err := service.RenderWidget(r.Context(), widgetKind(r), domain.WidgetDataRequest{
			Year:           year,
			Month:          month,
			AsOf:           asOf,
			OrderBookerIDs: utils.SplitCSV(query.Get("order_booker_ids")),
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao carregar dados do widget")
			return
		}

		writeJSON(w, http.StatusOK, data)
	})
}
