package floorplan

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"fairhall/infras/otel"
	"fairhall/internal/domains/floorplan/model/dto"
	"fairhall/internal/domains/floorplan/service"
	"fairhall/shared/constant"
	"fairhall/shared/validator"
	"fairhall/transport/http/middleware"
	"fairhall/transport/http/response"
)

type Handler struct {
	service    service.FloorPlan
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.FloorPlan, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/floorplan", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFloorPlan)
		routerGroup.Post("/locate", handler.Locate)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.middleware.Auth)
			adminGroup.Use(handler.middleware.RequireRole(constant.RoleAdmin, constant.RoleSuperAdmin))

			adminGroup.Put("/", handler.UploadFloorPlan)
			adminGroup.Post("/clear", handler.ClearFloorPlan)
			adminGroup.Put("/position", handler.SetPosition)
		})
	})
}

// GetFloorPlan returns the stored floor-plan image.
// @Summary Get the floor plan
// @Description Retrieve the floor-plan image as a data URI. Empty when none is uploaded.
// @Tags FloorPlan
// @Produce json
// @Success 200 {object} dto.FloorPlanResponse "Floor plan"
// @Failure 500 {object} response.Error
// @Router /v1/floorplan [get]
func (handler *Handler) GetFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFloorPlan")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get floor plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadFloorPlan stores a new floor-plan image.
// @Summary Upload the floor plan
// @Description Store an image data URI as the hall floor plan, mirrored to object storage when enabled.
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param request body dto.UploadFloorPlanRequest true "Upload Floor Plan Request"
// @Success 200 {object} dto.UploadFloorPlanResponse "Floor plan uploaded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplan [put]
// @Security BearerAuth
func (handler *Handler) UploadFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFloorPlan")
	defer scope.End()

	req := dto.UploadFloorPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload floor plan")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Floor plan uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ClearFloorPlan deletes the floor plan and unmaps every stall.
// @Summary Clear the floor plan
// @Description Delete the floor-plan image and null every stall map position. Requires confirm.
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param request body dto.ClearFloorPlanRequest true "Clear Floor Plan Request"
// @Success 200 {object} response.Message "Floor plan cleared"
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplan/clear [post]
// @Security BearerAuth
func (handler *Handler) ClearFloorPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearFloorPlan")
	defer scope.End()

	req := dto.ClearFloorPlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Clear(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear floor plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Floor plan cleared")
}

// SetPosition pins a stall onto the floor plan.
// @Summary Set a stall position
// @Description Assign percentage coordinates on the floor plan to one stall.
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param request body dto.PositionRequest true "Position Request"
// @Success 200 {object} response.Message "Position saved"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplan/position [put]
// @Security BearerAuth
func (handler *Handler) SetPosition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPosition")
	defer scope.End()

	req := dto.PositionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetPosition(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set stall position")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Position saved")
}

// Locate hit-tests a click on the floor plan.
// @Summary Locate a stall by coordinates
// @Description Find the nearest available stall within tolerance of the given percentage coordinates.
// @Tags FloorPlan
// @Accept json
// @Produce json
// @Param request body dto.LocateRequest true "Locate Request"
// @Success 200 {object} dto.LocateResponse "Hit-test result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/floorplan/locate [post]
func (handler *Handler) Locate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Locate")
	defer scope.End()

	req := dto.LocateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Locate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to locate stall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
