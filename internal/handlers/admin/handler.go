package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"fairhall/infras/otel"
	"fairhall/internal/domains/directory/model/dto"
	"fairhall/internal/domains/directory/service"
	"fairhall/shared/constant"
	"fairhall/shared/validator"
	"fairhall/transport/http/middleware"
	"fairhall/transport/http/response"
)

type Handler struct {
	service    service.Admin
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Admin, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admins", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RequireRole(constant.RoleSuperAdmin))

		routerGroup.Get("/", handler.GetAdmins)
		routerGroup.Post("/", handler.CreateAdmin)
		routerGroup.Put("/{id}", handler.UpdateAdmin)
		routerGroup.Delete("/{id}", handler.DeleteAdmin)
	})
}

// GetAdmins lists all admin accounts.
// @Summary List admins
// @Description Retrieve every admin account without password hashes.
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.GetAdminsResponse "List of admins"
// @Failure 500 {object} response.Error
// @Router /v1/admins [get]
// @Security BearerAuth
func (handler *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdmins")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateAdmin adds an admin account.
// @Summary Create an admin
// @Description Create an admin account with a unique email.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} response.Message "Admin created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins [post]
// @Security BearerAuth
func (handler *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdmin")
	defer scope.End()

	req := dto.CreateAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin created successfully")

	response.WithMessage(w, http.StatusCreated, "Admin created successfully")
}

// UpdateAdmin edits an admin account.
// @Summary Update an admin
// @Description Update name and email; password only when supplied.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Update Admin Request"
// @Success 200 {object} response.Message "Admin updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Admin updated successfully")
}

// DeleteAdmin removes an admin account.
// @Summary Delete an admin
// @Description Delete an admin account by ID.
// @Tags Admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Message "Admin deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete admin")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Admin deleted successfully")
}
