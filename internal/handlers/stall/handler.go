package stall

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"fairhall/infras/otel"
	"fairhall/internal/domains/stall/model/dto"
	"fairhall/internal/domains/stall/service"
	"fairhall/shared/constant"
	"fairhall/shared/validator"
	"fairhall/transport/http/middleware"
	"fairhall/transport/http/response"
)

type Handler struct {
	service    service.Stall
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Stall, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stalls", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStalls)
		routerGroup.Get("/stats", handler.GetStats)

		routerGroup.Group(func(vendorGroup chi.Router) {
			vendorGroup.Use(handler.middleware.Auth)
			vendorGroup.Use(handler.middleware.RequireRole(constant.RoleVendor))

			vendorGroup.Post("/request", handler.RequestStalls)
			vendorGroup.Post("/{id}/cancel", handler.CancelStall)
		})

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.middleware.Auth)
			adminGroup.Use(handler.middleware.RequireRole(constant.RoleAdmin, constant.RoleSuperAdmin))

			adminGroup.Post("/generate", handler.GenerateStalls)
			adminGroup.Post("/{id}/approve", handler.ApproveStall)
			adminGroup.Post("/{id}/reject", handler.RejectStall)
			adminGroup.Delete("/{id}", handler.DeleteStall)
		})
	})
}

// GetStalls lists every stall in the hall.
// @Summary List all stalls
// @Description Retrieve the full stall inventory with status and identity per stall.
// @Tags Stall
// @Produce json
// @Success 200 {object} dto.GetStallsResponse "List of stalls"
// @Failure 500 {object} response.Error
// @Router /v1/stalls [get]
func (handler *Handler) GetStalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStalls")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stalls")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStats reports occupancy counts for the dashboards.
// @Summary Get stall occupancy stats
// @Description Retrieve total, available, pending and reserved stall counts.
// @Tags Stall
// @Produce json
// @Success 200 {object} dto.StatsResponse "Occupancy counts"
// @Failure 500 {object} response.Error
// @Router /v1/stalls/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stall stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RequestStalls places a reservation request for up to three stalls.
// @Summary Request stalls
// @Description Mark the selected available stalls as pending for the authenticated vendor.
// @Tags Stall
// @Accept json
// @Produce json
// @Param request body dto.RequestStallsRequest true "Request Stalls Request"
// @Success 200 {object} response.Message "Reservation requested"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/request [post]
// @Security BearerAuth
func (handler *Handler) RequestStalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestStalls")
	defer scope.End()

	req := dto.RequestStallsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Request(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request stalls")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stalls requested successfully")

	response.WithMessage(w, http.StatusOK, "Reservation requested")
}

// CancelStall releases the vendor's own reservation or pending request.
// @Summary Cancel a reservation
// @Description Return the stall to available when it belongs to the authenticated vendor.
// @Tags Stall
// @Produce json
// @Param id path string true "Stall ID"
// @Success 200 {object} response.Message "Reservation cancelled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelStall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelStall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel stall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation cancelled")
}

// ApproveStall confirms a pending reservation request.
// @Summary Approve a pending request
// @Description Move a pending stall to reserved. Non-pending stalls are left untouched.
// @Tags Stall
// @Produce json
// @Param id path string true "Stall ID"
// @Success 200 {object} response.Message "Reservation approved"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveStall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveStall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve stall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation approved")
}

// RejectStall declines a pending reservation request.
// @Summary Reject a pending request
// @Description Return a pending stall to available and clear the requester identity.
// @Tags Stall
// @Produce json
// @Param id path string true "Stall ID"
// @Success 200 {object} response.Message "Reservation rejected"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectStall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectStall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Reject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject stall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation rejected")
}

// GenerateStalls replaces the inventory with a generated layout.
// @Summary Generate stall inventory
// @Description Generate a fresh inventory from counts and a naming pattern. Requires confirm when reservations exist.
// @Tags Stall
// @Accept json
// @Produce json
// @Param request body dto.GenerateStallsRequest true "Generate Stalls Request"
// @Success 200 {object} response.Message "Inventory generated"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateStalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateStalls")
	defer scope.End()

	req := dto.GenerateStallsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Generate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate stalls")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stall inventory generated successfully")

	response.WithMessage(w, http.StatusOK, "Inventory generated")
}

// DeleteStall removes one stall from the inventory.
// @Summary Delete a stall
// @Description Remove a stall by ID.
// @Tags Stall
// @Produce json
// @Param id path string true "Stall ID"
// @Success 200 {object} response.Message "Stall deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stalls/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStall")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Stall deleted")
}
