package space

import (
	"net/http"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/space/service"
	"ecoparking/shared/constant"
	"ecoparking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Space
	otel    otel.Otel
}

func New(service service.Space, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/spaces", handler.GetSpaces)
}

// GetSpaces lists every parking space with its live availability
// @Summary List parking spaces
// @Description Location, vehicle type, hourly rate, available units and state of every space.
// @Tags Spaces
// @Produce json
// @Success 200 {object} dto.GetSpacesResponse
// @Failure 500 {object} response.Error
// @Router /v1/spaces [get]
func (handler *Handler) GetSpaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaces")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list parking spaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
