package handler

import (
	"net/http"

	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
)

type batchTargetsRequest struct {
	Targets []domain.CreateMonthlyTargetRequest `json:"targets"`
}

func decodeBatch(w http.ResponseWriter, r *http.Request) ([]domain.CreateMonthlyTargetRequest, bool) {
	var request batchTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return nil, false
	}
	if len(request.Targets) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de metas vazia", nil)
		return nil, false
	}
	return request.Targets, true
}

func BatchCreateTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests, ok := decodeBatch(w, r)
		if !ok {
			return
		}

		result, err := service.BatchCreate(r.Context(), requests)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao criar metas em lote")
			writeBatchError(w, result, err, "Erro ao criar metas em lote")
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}

func BatchUpsertTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests, ok := decodeBatch(w, r)
		if !ok {
			return
		}

		result, err := service.BatchUpsert(r.Context(), requests)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao gravar metas em lote")
			writeBatchError(w, result, err, "Erro ao gravar metas em lote")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func CopyTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CopyTargetsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.CopyFromPreviousPeriod(r.Context(), request)
		if err != nil {
			writeBatchError(w, result, err, "Erro ao copiar metas")
			return
		}

		writeJSON(w, http.StatusCreated, result)
	})
}
