package handler

import (
	"net/http"

	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/achievement"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

func GetPeriodProgress(service achievement.AchievementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano e mês devem ser numéricos", nil)
			return
		}

		asOf, err := asOfParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de referência inválida, use AAAA-MM-DD", nil)
			return
		}

		progress, err := service.GetTargetProgress(r.Context(), year, month, utils.SplitCSV(r.URL.Query().Get("order_booker_ids")), asOf)
		if err != nil {
			writeServiceError(w, err, "Erro ao calcular progresso das metas")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	})
}

func GetPeriodSummary(service achievement.AchievementService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano e mês devem ser numéricos", nil)
			return
		}

		summary, err := service.GetSummary(r.Context(), domain.MonthlyTargetFilters{
			Year:           &year,
			Month:          &month,
			OrderBookerIDs: utils.SplitCSV(r.URL.Query().Get("order_booker_ids")),
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao resumir metas do período")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}
