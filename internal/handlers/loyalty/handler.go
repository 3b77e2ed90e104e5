package loyalty

import (
	"net/http"

	"ecoparking/infras/otel"
	"ecoparking/internal/domains/loyalty/service"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	"ecoparking/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Loyalty
	otel    otel.Otel
}

func New(service service.Loyalty, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/loyalty", handler.GetMembers)
}

// GetMembers lists loyalty program members
// @Summary List loyalty members
// @Tags Loyalty
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetRecordsResponse
// @Failure 401 {object} response.Error
// @Router /v1/loyalty [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list loyalty members")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
