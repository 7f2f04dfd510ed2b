package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/dashboard"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos serviços para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	writeBatchError(w, nil, err, fallback)
}

// writeBatchError inclui nos detalhes as metas já gravadas quando um lote sequencial para no meio
func writeBatchError(w http.ResponseWriter, result *domain.BatchResult, err error, fallback string) {
	var batchErr *targeting.BatchError
	if errors.As(err, &batchErr) {
		causeCode, _ := errorCode(batchErr.Err, fallback)
		details := map[string]any{
			"operation":  batchErr.Operation,
			"index":      batchErr.Index,
			"committed":  batchErr.Committed,
			"atomic":     batchErr.Atomic,
			"cause_code": causeCode,
		}

		code := causeCode
		if !batchErr.Atomic && batchErr.Committed > 0 {
			code = apiErrors.ErrBatchPartialWrite
			if result != nil {
				details["targets"] = result.Targets
			}
		}

		apiErrors.WriteError(w, code, batchErr.Error(), details)
		return
	}

	code, message := errorCode(err, fallback)
	apiErrors.WriteError(w, code, message, nil)
}

func errorCode(err error, fallback string) (string, string) {
	var targetErr *targeting.TargetError
	if errors.As(err, &targetErr) && targetErr.Code != "" {
		return targetErr.Code, targetErr.Error()
	}

	var dashboardErr *dashboard.DashboardError
	if errors.As(err, &dashboardErr) && dashboardErr.Code != "" {
		return dashboardErr.Code, dashboardErr.Error()
	}

	return apiErrors.ErrInternalServer, fallback
}

// periodParams lê :year e :month da rota
func periodParams(r *http.Request) (int, int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	year, err := strconv.Atoi(params.ByName("year"))
	if err != nil {
		return 0, 0, err
	}

	month, err := strconv.Atoi(params.ByName("month"))
	if err != nil {
		return 0, 0, err
	}

	return year, month, nil
}

// asOfParam lê as_of (yyyy-mm-dd); ausente usa o momento atual
func asOfParam(r *http.Request) (time.Time, error) {
	asOf, err := utils.ParseDate(r.URL.Query().Get("as_of"))
	if err != nil {
		return time.Time{}, err
	}
	if asOf == nil {
		return time.Now(), nil
	}
	return *asOf, nil
}
