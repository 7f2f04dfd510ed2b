package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/booker-targets-api/internal/api/handler/router"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	achievementMocks "github.com/vfg2006/booker-targets-api/internal/usecases/achievement/mocks"
	"github.com/vfg2006/booker-targets-api/internal/usecases/dashboard"
	dashboardMocks "github.com/vfg2006/booker-targets-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	targetingMocks "github.com/vfg2006/booker-targets-api/internal/usecases/targeting/mocks"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, routes []router.Route, role int, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != 0 {
		claims := &domain.Claims{UserID: 7, UserRoleID: role}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func defaultConfig() *domain.DashboardConfig {
	config := dashboard.DefaultConfig("7")
	return &config
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestListTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error) {
			require.NotNil(t, filters.Year)
			require.NotNil(t, filters.Month)
			assert.Equal(t, 2024, *filters.Year)
			assert.Equal(t, 6, *filters.Month)
			assert.Equal(t, []string{"OB1", "OB2"}, filters.OrderBookerIDs)
			return []*domain.MonthlyTarget{{ID: "T001", OrderBookerID: "OB1"}}, nil
		})

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/targets?year=2024&month=6&order_booker_ids=OB1,%20OB2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var targets []*domain.MonthlyTarget
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &targets))
	require.Len(t, targets, 1)
	assert.Equal(t, "T001", targets[0].ID)
}

func TestListTargets_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/targets?year=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCreateTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request domain.CreateMonthlyTargetRequest) (*domain.MonthlyTarget, error) {
			assert.Equal(t, "OB1", request.OrderBookerID)
			assert.True(t, request.TargetAmount.Equal(decimal.NewFromInt(700000)))
			return &domain.MonthlyTarget{ID: "T001", OrderBookerID: "OB1", Year: 2024, Month: 6, TargetAmount: request.TargetAmount}, nil
		})

	body := `{"order_booker_id":"OB1","year":2024,"month":6,"target_amount":"700000"}`
	rec := serve(t, MonthlyTargets(service), middleware.RoleSupervisor, http.MethodPost, "/v1/targets", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var target domain.MonthlyTarget
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &target))
	assert.Equal(t, "T001", target.ID)
}

func TestCreateTarget_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "corpo inválido",
			body:       `{"order_booker_id":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "período duplicado",
			body:       `{"order_booker_id":"OB1","year":2024,"month":6,"target_amount":"1000"}`,
			serviceErr: targeting.NewTargetError(targeting.ErrDuplicatePeriod, apiErrors.ErrDuplicatePeriod, "OB1 2024-06"),
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrDuplicatePeriod,
		},
		{
			name:       "erro sem código",
			body:       `{"order_booker_id":"OB1","year":2024,"month":6,"target_amount":"1000"}`,
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := targetingMocks.NewMockTargetService(ctrl)

			if tt.serviceErr != nil {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := serve(t, MonthlyTargets(service), middleware.RoleAdmin, http.MethodPost, "/v1/targets", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestCreateTarget_BookerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodPost, "/v1/targets", `{}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}

func TestGetTarget_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, targeting.NewTargetErrorWithID(targeting.ErrNotFound, apiErrors.ErrTargetNotFound, "missing", ""))

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/targets/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrTargetNotFound, decodeError(t, rec).Code)
}

func TestDeleteTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().Delete(gomock.Any(), "T001").Return(nil)

	rec := serve(t, MonthlyTargets(service), middleware.RoleAdmin, http.MethodDelete, "/v1/targets/T001", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReconcileTargetAchieved(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		ReconcileAchieved(gomock.Any(), "T001", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, achieved decimal.Decimal) (*domain.MonthlyTarget, error) {
			assert.True(t, achieved.Equal(decimal.NewFromInt(5500)))
			return &domain.MonthlyTarget{ID: id, AchievedAmount: achieved}, nil
		})

	rec := serve(t, MonthlyTargets(service), middleware.RoleAdmin, http.MethodPut, "/v1/targets/T001/achieved", `{"achieved_amount":"5500"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, MonthlyTargets(service), middleware.RoleSupervisor, http.MethodPut, "/v1/targets/T001/achieved", `{"achieved_amount":"5500"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetTargetsByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().GetByPeriod(gomock.Any(), 2024, 6).Return([]*domain.MonthlyTarget{}, nil)

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/periods/2024/6/targets", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/periods/2024/jun/targets", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidPeriod, decodeError(t, rec).Code)
}

func TestGetTargetsByOrderBooker(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		GetByOrderBooker(gomock.Any(), "OB9").
		Return([]*domain.MonthlyTarget{{ID: "T009", OrderBookerID: "OB9"}}, nil)

	rec := serve(t, MonthlyTargets(service), middleware.RoleBooker, http.MethodGet, "/v1/order-bookers/OB9/targets", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"T009"`)
}

func TestUnauthenticatedRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	rec := serve(t, MonthlyTargets(service), 0, http.MethodGet, "/v1/targets", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBatchCreateTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		BatchCreate(gomock.Any(), gomock.Len(2)).
		Return(&domain.BatchResult{Targets: []*domain.MonthlyTarget{{ID: "T001"}, {ID: "T002"}}, Created: 2}, nil)

	body := `{"targets":[{"order_booker_id":"OB1","year":2024,"month":6,"target_amount":"100"},{"order_booker_id":"OB2","year":2024,"month":6,"target_amount":"200"}]}`
	rec := serve(t, BatchTargets(service), middleware.RoleAdmin, http.MethodPost, "/v1/batch/targets", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var result domain.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Created)
}

func TestBatchCreateTargets_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	rec := serve(t, BatchTargets(service), middleware.RoleAdmin, http.MethodPost, "/v1/batch/targets", `{"targets":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestBatchErrors(t *testing.T) {
	duplicate := targeting.NewTargetError(targeting.ErrDuplicatePeriod, apiErrors.ErrDuplicatePeriod, "OB2 2024-06")

	tests := []struct {
		name       string
		err        *targeting.BatchError
		wantStatus int
		wantCode   string
	}{
		{
			name:       "sequencial com itens gravados",
			err:        &targeting.BatchError{Operation: "create", Index: 1, Committed: 1, Atomic: false, Err: duplicate},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrBatchPartialWrite,
		},
		{
			name:       "atômico desfeito",
			err:        &targeting.BatchError{Operation: "create", Index: 1, Committed: 0, Atomic: true, Err: duplicate},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrDuplicatePeriod,
		},
		{
			name: "sequencial no primeiro item",
			err: &targeting.BatchError{Operation: "create", Index: 0, Committed: 0, Atomic: false,
				Err: targeting.NewTargetError(targeting.ErrInvalidAmount, apiErrors.ErrInvalidAmount, "")},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := targetingMocks.NewMockTargetService(ctrl)

			written := &domain.BatchResult{Targets: []*domain.MonthlyTarget{}}
			for i := 0; i < tt.err.Committed; i++ {
				written.Targets = append(written.Targets, &domain.MonthlyTarget{ID: fmt.Sprintf("T%03d", i+1), OrderBookerID: "OB1"})
			}
			service.EXPECT().BatchUpsert(gomock.Any(), gomock.Any()).Return(written, tt.err)

			body := `{"targets":[{"order_booker_id":"OB1","year":2024,"month":6,"target_amount":"100"}]}`
			rec := serve(t, BatchTargets(service), middleware.RoleAdmin, http.MethodPut, "/v1/batch/targets", body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload struct {
				Code    string         `json:"code"`
				Details map[string]any `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, tt.wantCode, payload.Code)
			assert.EqualValues(t, tt.err.Index, payload.Details["index"])
			assert.EqualValues(t, tt.err.Committed, payload.Details["committed"])
			assert.Equal(t, tt.err.Atomic, payload.Details["atomic"])

			targets, listed := payload.Details["targets"].([]any)
			if tt.wantCode == apiErrors.ErrBatchPartialWrite {
				require.True(t, listed)
				require.Len(t, targets, tt.err.Committed)
				assert.Equal(t, "T001", targets[0].(map[string]any)["id"])
			} else {
				assert.False(t, listed)
			}
		})
	}
}

func TestCopyTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := targetingMocks.NewMockTargetService(ctrl)

	service.EXPECT().
		CopyFromPreviousPeriod(gomock.Any(), domain.CopyTargetsRequest{FromYear: 2023, FromMonth: 12, ToYear: 2024, ToMonth: 1}).
		Return(&domain.BatchResult{Created: 3}, nil)

	body := `{"from_year":2023,"from_month":12,"to_year":2024,"to_month":1}`
	rec := serve(t, BatchTargets(service), middleware.RoleSupervisor, http.MethodPost, "/v1/batch/targets/copy", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetPeriodProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := achievementMocks.NewMockAchievementService(ctrl)

	asOf := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
	service.EXPECT().
		GetTargetProgress(gomock.Any(), 2024, 6, []string{"OB1"}, asOf).
		Return([]*domain.TargetProgress{{TargetID: "T001", Status: domain.PaceAtRisk}}, nil)

	rec := serve(t, Achievement(service), middleware.RoleBooker, http.MethodGet, "/v1/periods/2024/6/progress?as_of=2024-06-20&order_booker_ids=OB1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"T001"`)
}

func TestGetPeriodProgress_InvalidAsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := achievementMocks.NewMockAchievementService(ctrl)

	rec := serve(t, Achievement(service), middleware.RoleBooker, http.MethodGet, "/v1/periods/2024/6/progress?as_of=20-06-2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestGetPeriodSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := achievementMocks.NewMockAchievementService(ctrl)

	service.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.MonthlyTargetFilters) (*domain.TargetRollup, error) {
			assert.Equal(t, 2024, *filters.Year)
			assert.Equal(t, 6, *filters.Month)
			return &domain.TargetRollup{TotalTargets: 4}, nil
		})

	rec := serve(t, Achievement(service), middleware.RoleAdmin, http.MethodGet, "/v1/periods/2024/6/summary", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboard_UsesUserKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().GetConfig(gomock.Any(), "7").Return(defaultConfig(), nil)

	rec := serve(t, Dashboard(service), middleware.RoleBooker, http.MethodGet, "/v1/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var config domain.DashboardConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &config))
	assert.Len(t, config.Widgets, len(domain.WidgetKinds))
}

func TestSetWidgetVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		SetWidgetVisibility(gomock.Any(), "7", domain.WidgetTargetSummary, false).
		Return(defaultConfig(), nil)

	rec := serve(t, Dashboard(service), middleware.RoleBooker, http.MethodPut, "/v1/dashboard/widgets/target-summary/visibility", `{"visible":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, Dashboard(service), middleware.RoleBooker, http.MethodPut, "/v1/dashboard/widgets/target-summary/visibility", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestUpdateWidgetPosition_InvalidPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		UpdateWidgetPosition(gomock.Any(), "7", domain.WidgetTargetProgress, domain.WidgetPosition{X: -1, Y: 0, W: 6, H: 3}).
		Return(nil, dashboard.NewDashboardError(dashboard.ErrInvalidPosition, apiErrors.ErrInvalidRequest, ""))

	rec := serve(t, Dashboard(service), middleware.RoleBooker, http.MethodPut, "/v1/dashboard/widgets/target-progress/position", `{"x":-1,"y":0,"w":6,"h":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestResetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().ResetToDefault(gomock.Any(), "7").Return(defaultConfig(), nil)

	rec := serve(t, Dashboard(service), middleware.RoleSupervisor, http.MethodPost, "/v1/dashboard/reset", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetWidgetData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		RenderWidget(gomock.Any(), domain.WidgetTargetStatus, gomock.Any()).
		DoAndReturn(func(_ context.Context, kind domain.WidgetKind, request domain.WidgetDataRequest) (*domain.WidgetData, error) {
			assert.Equal(t, 2024, request.Year)
			assert.Equal(t, 5, request.Month)
			assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), request.AsOf)
			return &domain.WidgetData{Kind: kind, Data: map[string]int{"total": 0}}, nil
		})

	rec := serve(t, Dashboard(service), middleware.RoleBooker, http.MethodGet, "/v1/dashboard/widgets/target-status/data?month=5&as_of=2024-06-03", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"target-status"`)
}

func TestGetWidgetData_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := dashboardMocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		RenderWidget(gomock.Any(), domain.WidgetKind("weather"), gomock.Any()).
		Return(nil, dashboard.NewDashboardError(dashboard.ErrUnknownWidget, apiErrors.ErrUnknownWidget, "weather"))

	rec := serve(t, Dashboard(service), middleware.RoleBooker, http.MethodGet, "/v1/dashboard/widgets/weather/data", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownWidget, decodeError(t, rec).Code)
}

type fakeTrigger struct {
	started bool
	calls   int
}

func (f *fakeTrigger) TriggerManualSync() bool {
	f.calls++
	return f.started
}

func (f *fakeTrigger) GetStatus() map[string]any {
	return map[string]any{"running": !f.started}
}

func TestRunCronJob(t *testing.T) {
	trigger := &fakeTrigger{started: true}
	routes := CronJobs(CronJobServices{TargetReconciliationSyncService: trigger})

	rec := serve(t, routes, middleware.RoleAdmin, http.MethodPost, "/v1/cron/targets/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, trigger.calls)

	rec = serve(t, routes, middleware.RoleAdmin, http.MethodPost, "/v1/cron/meta/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, trigger.calls)

	rec = serve(t, routes, middleware.RoleSupervisor, http.MethodPost, "/v1/cron/all/run", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRunCronJob_AlreadyRunning(t *testing.T) {
	trigger := &fakeTrigger{started: false}

	rec := serve(t, CronJobs(CronJobServices{TargetReconciliationSyncService: trigger}), middleware.RoleAdmin, http.MethodPost, "/v1/cron/all/run", "")

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["started"])
}

func TestGetCronStatus(t *testing.T) {
	trigger := &fakeTrigger{started: true}

	rec := serve(t, CronJobs(CronJobServices{TargetReconciliationSyncService: trigger}), middleware.RoleSupervisor, http.MethodGet, "/v1/cron/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"targets":{"running":false}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), 0, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}
