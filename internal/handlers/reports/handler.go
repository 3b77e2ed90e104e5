package reports

import (
	"net/http"

	"ecoparking/infras/otel"
	earningService "ecoparking/internal/domains/earning/service"
	vehicleStatService "ecoparking/internal/domains/vehiclestat/service"
	visitService "ecoparking/internal/domains/visitlog/service"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	earnings     earningService.Earning
	visits       visitService.Visit
	vehicleStats vehicleStatService.VehicleStat
	otel         otel.Otel
}

func New(earnings earningService.Earning, visits visitService.Visit, vehicleStats vehicleStatService.VehicleStat, otel otel.Otel) Handler {
	return Handler{
		earnings:     earnings,
		visits:       visits,
		vehicleStats: vehicleStats,
		otel:         otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/earnings", handler.GetEarnings)
		r.Get("/earnings/range", handler.GetEarningsRange)
		r.Get("/earnings/export", handler.ExportEarnings)
		r.Get("/visits", handler.GetVisits)
		r.Get("/visits/history", handler.GetVisitHistory)
		r.Get("/vehicles", handler.GetVehicles)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// GetEarnings returns the earnings windows and breakdowns
// @Summary Earnings summary
// @Description Week, month, year and all-time totals, daily average, breakdown by method and top locations.
// @Tags Reports
// @Produce json
// @Success 200 {object} report.EarningsSummary
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reports/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	res, err := handler.earnings.Summary(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to summarize earnings")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetEarningsRange lists earnings between two dates
// @Summary Earnings in a date range
// @Tags Reports
// @Produce json
// @Param from query string true "Start date (yyyy-mm-dd)"
// @Param to query string true "End date (yyyy-mm-dd), inclusive"
// @Success 200 {object} dto.RangeResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/reports/earnings/range [get]
// @Security BearerAuth
func (handler *Handler) GetEarningsRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarningsRange")
	defer scope.End()

	var rng gDto.DateRange

	if err := rng.FromRequest(r); err != nil {
		handler.fail(w, scope, failure.BadRequest(err), "failed to parse date range")

		return
	}

	res, err := handler.earnings.Range(ctx, rng)
	if err != nil {
		handler.fail(w, scope, err, "failed to list earnings in range")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ExportEarnings writes the earnings CSV report
// @Summary Export earnings as CSV
// @Description Writes the report under the report directory and uploads it when object storage is enabled.
// @Description Without from and to every entry is exported.
// @Tags Reports
// @Produce json
// @Param from query string false "Start date (yyyy-mm-dd)"
// @Param to query string false "End date (yyyy-mm-dd), inclusive"
// @Success 201 {object} dto.ExportResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/reports/earnings/export [get]
// @Security BearerAuth
func (handler *Handler) ExportEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportEarnings")
	defer scope.End()

	var rng *gDto.DateRange

	query := r.URL.Query()
	if query.Get(constant.RequestParamFrom) != constant.Empty || query.Get(constant.RequestParamTo) != constant.Empty {
		rng = &gDto.DateRange{}

		if err := rng.FromRequest(r); err != nil {
			handler.fail(w, scope, failure.BadRequest(err), "failed to parse date range")

			return
		}
	}

	res, err := handler.earnings.ExportCSV(ctx, rng)
	if err != nil {
		handler.fail(w, scope, err, "failed to export earnings")

		return
	}

	scope.AddEvent("Earnings report exported")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVisits returns the visitor flow statistics
// @Summary Visit statistics
// @Tags Reports
// @Produce json
// @Success 200 {object} report.VisitSummary
// @Failure 401 {object} response.Error
// @Router /v1/reports/visits [get]
// @Security BearerAuth
func (handler *Handler) GetVisits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisits")
	defer scope.End()

	res, err := handler.visits.Stats(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to summarize visits")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVisitHistory pages through the visit log
// @Summary Visit log
// @Tags Reports
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetVisitsResponse
// @Failure 401 {object} response.Error
// @Router /v1/reports/visits/history [get]
// @Security BearerAuth
func (handler *Handler) GetVisitHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitHistory")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.visits.History(ctx, params)
	if err != nil {
		handler.fail(w, scope, err, "failed to list visits")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetVehicles returns usage and revenue per vehicle type
// @Summary Vehicle statistics
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} response.Error
// @Router /v1/reports/vehicles [get]
// @Security BearerAuth
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	res, err := handler.vehicleStats.Stats(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to get vehicle statistics")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
