package citation

import (
	"net/http"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/citation/service"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Citation
	otel    otel.Otel
}

func New(service service.Citation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/citations", handler.GetCitations)
}

// GetCitations lists overstay citations
// @Summary List citations
// @Tags Citations
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetCitationsResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/citations [get]
// @Security BearerAuth
func (handler *Handler) GetCitations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCitations")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list citations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
