// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspectors

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shutterdesk/inspection-service/internal/identity"
	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/rest"
	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

var (
	postNumberRegex = regexp.MustCompile(`^(\d{7}|\d{3}-\d{4})$`)
	phoneRegex      = regexp.MustCompile(`^[0-9-]+$`)
)

type inspectorRequest struct {
	Name                          string  `json:"name" validate:"required"`
	Furigana                      string  `json:"furigana" validate:"required"`
	InspectorNumber               *string `json:"inspector_number,omitempty"`
	ArchitectName                 *string `json:"architect_name,omitempty"`
	ArchitectRegistrationName     *string `json:"architect_registration_name,omitempty"`
	ArchitectRegistrationNumber   *string `json:"architect_registration_number,omitempty"`
	FireProtectionInspectorNumber *string `json:"fire_protection_inspector_number,omitempty"`
	WorkplaceName                 string  `json:"workplace_name" validate:"required"`
	ArchitectOfficeName           *string `json:"architect_office_name,omitempty"`
	GovernorRegistrationName      *string `json:"governor_registration_name,omitempty"`
	GovernorRegistrationNumber    *string `json:"governor_registration_number,omitempty"`
	PostNumber                    string  `json:"post_number" validate:"required,post_number"`
	Address                       string  `json:"address" validate:"required"`
	PhoneNumber                   string  `json:"phone_number" validate:"required,phone_number"`
}

func (req *inspectorRequest) toInspector() *types.Inspector {
	return &types.Inspector{
		Name:                          req.Name,
		Furigana:                      req.Furigana,
		InspectorNumber:               req.InspectorNumber,
		ArchitectName:                 req.ArchitectName,
		ArchitectRegistrationName:     req.ArchitectRegistrationName,
		ArchitectRegistrationNumber:   req.ArchitectRegistrationNumber,
		FireProtectionInspectorNumber: req.FireProtectionInspectorNumber,
		WorkplaceName:                 req.WorkplaceName,
		ArchitectOfficeName:           req.ArchitectOfficeName,
		GovernorRegistrationName:      req.GovernorRegistrationName,
		GovernorRegistrationNumber:    req.GovernorRegistrationNumber,
		PostNumber:                    req.PostNumber,
		Address:                       req.Address,
		PhoneNumber:                   req.PhoneNumber,
	}
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	validate := validator.New()
	_ = validate.RegisterValidation("post_number", func(fl validator.FieldLevel) bool {
		return postNumberRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return &API{
		service:  service,
		validate: validate,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/inspectors", a.create)
	mux.Get("/api/v0/inspectors", a.list)
	mux.Get("/api/v0/inspectors/{id}", a.get)
	mux.Put("/api/v0/inspectors/{id}", a.update)
	mux.Delete("/api/v0/inspectors/{id}", a.delete)
}

func (a *API) writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		rest.WriteError(w, http.StatusNotFound, "inspector not found")
	case errors.Is(err, ErrNotAllowed):
		rest.WriteError(w, http.StatusForbidden, "no access to this inspector")
	default:
		a.logger.Errorf("failed to %s: %v", action, err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspectors.API.create")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req inspectorRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	i := req.toInspector()
	i.CompanyID = companyID

	created, err := a.service.Create(ctx, i)
	if err != nil {
		a.writeError(w, err, "create inspector")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspectors.API.list")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var (
		inspectors []*types.Inspector
		err        error
	)
	if ids := r.URL.Query().Get("ids"); ids != "" {
		inspectors, err = a.service.GetByIDs(ctx, companyID, strings.Split(ids, ","))
	} else {
		inspectors, err = a.service.List(ctx, companyID)
	}
	if err != nil {
		a.writeError(w, err, "list inspectors")
		return
	}
	if inspectors == nil {
		inspectors = []*types.Inspector{}
	}

	rest.WriteJSON(w, http.StatusOK, inspectors)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspectors.API.get")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	i, err := a.service.Get(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err, "get inspector")
		return
	}

	rest.WriteJSON(w, http.StatusOK, i)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspectors.API.update")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req inspectorRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	i := req.toInspector()
	i.ID = chi.URLParam(r, "id")

	updated, err := a.service.Update(ctx, companyID, i)
	if err != nil {
		a.writeError(w, err, "update inspector")
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspectors.API.delete")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := a.service.Delete(ctx, companyID, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err, "delete inspector")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
