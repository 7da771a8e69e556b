// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"errors"
	"net/http"

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

type registerRequest struct {
	Name               string `json:"name" validate:"required"`
	RepresentativeName string `json:"representative_name" validate:"required"`
	Type               string `json:"type" validate:"required,oneof=management contractor"`
}

type updateRequest struct {
	Name                 *string `json:"name,omitempty"`
	RepresentativeName   *string `json:"representative_name,omitempty"`
	CanAccessSettingPage *bool   `json:"can_access_setting_page,omitempty"`
	PageLockPassword     *string `json:"page_lock_password,omitempty"`
}

type verifyLockRequest struct {
	Password string `json:"password" validate:"required"`
}

type verifyLockResponse struct {
	Verified bool `json:"verified"`
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
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/companies", a.register)
	mux.Get("/api/v0/companies", a.list)
	mux.Get("/api/v0/companies/me", a.me)
	mux.Patch("/api/v0/companies/me", a.update)
	mux.Post("/api/v0/companies/me/verify-lock", a.verifyLock)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "companies.API.register")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req registerRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := a.service.Register(ctx, &types.Company{
		ID:                 companyID,
		Name:               req.Name,
		RepresentativeName: req.RepresentativeName,
		Type:               req.Type,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			rest.WriteError(w, http.StatusConflict, "company already registered")
			return
		}
		a.logger.Errorf("failed to register company: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to register company")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "companies.API.list")
	defer span.End()

	if identity.CompanyIDFromContext(ctx) == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	companies, err := a.service.ListCompanies(ctx, r.URL.Query().Get("type"))
	if err != nil {
		a.logger.Errorf("failed to list companies: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	rest.WriteJSON(w, http.StatusOK, companies)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "companies.API.me")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	c, err := a.service.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rest.WriteError(w, http.StatusNotFound, "company not found")
			return
		}
		a.logger.Errorf("failed to get company: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to get company")
		return
	}

	rest.WriteJSON(w, http.StatusOK, c)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "companies.API.update")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req updateRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := &types.Company{ID: companyID}
	var paths []string
	if req.Name != nil {
		c.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.RepresentativeName != nil {
		c.RepresentativeName = *req.RepresentativeName
		paths = append(paths, "representative_name")
	}
	if req.CanAccessSettingPage != nil {
		c.CanAccessSettingPage = *req.CanAccessSettingPage
		paths = append(paths, "can_access_setting_page")
	}
	if req.PageLockPassword != nil {
		c.PageLockPassword = req.PageLockPassword
		paths = append(paths, "page_lock_password")
	}

	if len(paths) == 0 {
		rest.WriteError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	updated, err := a.service.UpdateProfile(ctx, c, paths)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rest.WriteError(w, http.StatusNotFound, "company not found")
			return
		}
		a.logger.Errorf("failed to update company: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to update company")
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) verifyLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "companies.API.verifyLock")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req verifyLockRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	verified, err := a.service.VerifyPageLock(ctx, companyID, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rest.WriteError(w, http.StatusNotFound, "company not found")
			return
		}
		a.logger.Errorf("failed to verify page lock: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to verify page lock")
		return
	}

	rest.WriteJSON(w, http.StatusOK, verifyLockResponse{Verified: verified})
}
