package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

func ListTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := utils.ParseOptionalInt(query.Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		month, err := utils.ParseOptionalInt(query.Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		targets, err := service.GetAll(r.Context(), domain.MonthlyTargetFilters{
			Year:           year,
			Month:          month,
			OrderBookerIDs: utils.SplitCSV(query.Get("order_booker_ids")),
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar metas")
			writeServiceError(w, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, http.StatusOK, targets)
	})
}

func GetTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		target, err := service.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar meta")
			return
		}

		writeJSON(w, http.StatusOK, target)
	})
}

func CreateTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateMonthlyTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		target, err := service.Create(r.Context(), request)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao criar meta")
			writeServiceError(w, err, "Erro ao criar meta")
			return
		}

		writeJSON(w, http.StatusCreated, target)
	})
}

func UpdateTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateMonthlyTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		target, err := service.Update(r.Context(), id, request)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, http.StatusOK, target)
	})
}

func DeleteTarget(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao remover meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ReconcileTargetAchieved(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.ReconcileAchievedRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		target, err := service.ReconcileAchieved(r.Context(), id, request.AchievedAmount)
		if err != nil {
			writeServiceError(w, err, "Erro ao gravar realizado da meta")
			return
		}

		writeJSON(w, http.StatusOK, target)
	})
}

func GetTargetsByPeriod(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, month, err := periodParams(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano e mês devem ser numéricos", nil)
			return
		}

		targets, err := service.GetByPeriod(r.Context(), year, month)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar metas do período")
			return
		}

		writeJSON(w, http.StatusOK, targets)
	})
}

func GetTargetsByOrderBooker(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderBookerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		targets, err := service.GetByOrderBooker(r.Context(), orderBookerID)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar metas do order booker")
			return
		}

		writeJSON(w, http.StatusOK, targets)
	})
}
