package review

import (
	"net/http"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/review/service"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/reviews", handler.GetReviews)
	r.Get("/reviews/stats", handler.GetReviewStats)
}

// GetReviews lists reviews, newest first
// @Summary List reviews
// @Description With space set, only that location's reviews are returned and paging is ignored.
// @Tags Reviews
// @Produce json
// @Param space query string false "Parking space location"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetReviewsResponse
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	if space := r.URL.Query().Get(constant.RequestParamSpace); space != constant.Empty {
		res, err := handler.service.BySpace(ctx, space)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("space", space).Msg("failed to list reviews by space")

			response.WithError(w, err)

			return
		}

		response.WithJSON(w, http.StatusOK, res)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReviewStats returns the rating distribution
// @Summary Review statistics
// @Tags Reviews
// @Produce json
// @Success 200 {object} report.ReviewSummary
// @Failure 500 {object} response.Error
// @Router /v1/reviews/stats [get]
func (handler *Handler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
