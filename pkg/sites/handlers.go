// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package sites

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

type createSiteRequest struct {
	types.Site
	ContractorCompanyID string `json:"contractor_company_id" validate:"required"`
}

type attachContractorRequest struct {
	ContractorCompanyID string `json:"contractor_company_id" validate:"required"`
}

type swapContractorRequest struct {
	OldContractorCompanyID string `json:"old_contractor_company_id" validate:"required"`
	NewContractorCompanyID string `json:"new_contractor_company_id" validate:"required"`
}

type shutterRequest struct {
	Name                 string  `json:"name" validate:"required"`
	ModelNumber          *string `json:"model_number,omitempty"`
	Width                *string `json:"width,omitempty"`
	Height               *string `json:"height,omitempty"`
	UsageCount           *int    `json:"usage_count,omitempty"`
	InstallationLocation *string `json:"installation_location,omitempty"`
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
	mux.Post("/api/v0/sites", a.createSite)
	mux.Get("/api/v0/sites", a.listSites)
	mux.Get("/api/v0/sites/{id}", a.getSite)
	mux.Put("/api/v0/sites/{id}", a.updateSite)
	mux.Delete("/api/v0/sites/{id}", a.deleteSite)
	mux.Post("/api/v0/sites/{id}/contractors", a.attachContractor)
	mux.Put("/api/v0/sites/{id}/contractor", a.swapContractor)
	mux.Get("/api/v0/sites/{id}/shutters", a.listShutters)
	mux.Post("/api/v0/sites/{id}/shutters", a.createShutter)
	mux.Get("/api/v0/shutters/{id}", a.getShutter)
	mux.Patch("/api/v0/shutters/{id}", a.updateShutter)
	mux.Delete("/api/v0/shutters/{id}", a.deleteShutter)
}

// writeSiteError maps service errors onto the API's error contract.
func (a *API) writeSiteError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		rest.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		rest.WriteError(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		rest.WriteError(w, http.StatusBadRequest, "referenced entity does not exist")
	case errors.Is(err, ErrNotAllowed):
		rest.WriteError(w, http.StatusForbidden, "no access to this site")
	case errors.Is(err, ErrContractorNotApproved):
		rest.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("failed to %s: %v", action, err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func (a *API) createSite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.createSite")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req createSiteRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" || req.Address == "" || req.OwnerName == "" || req.OwnerAddress == "" {
		rest.WriteError(w, http.StatusBadRequest, "name, address, owner_name and owner_address are required")
		return
	}

	site := req.Site
	site.ID = ""
	site.CompanyID = companyID

	created, err := a.service.CreateSite(ctx, &site, req.ContractorCompanyID)
	if err != nil {
		a.writeSiteError(w, err, "create site")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) listSites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.listSites")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	sites, err := a.service.ListSitesForCompany(ctx, companyID)
	if err != nil {
		a.writeSiteError(w, err, "list sites")
		return
	}
	if sites == nil {
		sites = []*types.Site{}
	}

	rest.WriteJSON(w, http.StatusOK, sites)
}

func (a *API) getSite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.getSite")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	site, err := a.service.GetSite(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeSiteError(w, err, "get site")
		return
	}

	rest.WriteJSON(w, http.StatusOK, site)
}

func (a *API) updateSite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.updateSite")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var site types.Site
	if err := rest.Decode(r, &site); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	site.ID = chi.URLParam(r, "id")

	updated, err := a.service.UpdateSite(ctx, companyID, &site)
	if err != nil {
		a.writeSiteError(w, err, "update site")
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteSite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.deleteSite")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := a.service.DeleteSite(ctx, companyID, chi.URLParam(r, "id")); err != nil {
		a.writeSiteError(w, err, "delete site")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) attachContractor(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.attachContractor")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req attachContractorRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.service.AttachContractor(ctx, companyID, chi.URLParam(r, "id"), req.ContractorCompanyID); err != nil {
		a.writeSiteError(w, err, "attach contractor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) swapContractor(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.swapContractor")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req swapContractorRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := a.service.SwapContractor(ctx, companyID, chi.URLParam(r, "id"),
		req.OldContractorCompanyID, req.NewContractorCompanyID)
	if err != nil {
		a.writeSiteError(w, err, "swap contractor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listShutters(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.listShutters")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	shutters, err := a.service.ListShutters(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeSiteError(w, err, "list shutters")
		return
	}
	if shutters == nil {
		shutters = []*types.Shutter{}
	}

	rest.WriteJSON(w, http.StatusOK, shutters)
}

func (a *API) createShutter(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.createShutter")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req shutterRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := a.service.CreateShutter(ctx, companyID, &types.Shutter{
		SiteID:               chi.URLParam(r, "id"),
		Name:                 req.Name,
		ModelNumber:          req.ModelNumber,
		Width:                req.Width,
		Height:               req.Height,
		UsageCount:           req.UsageCount,
		InstallationLocation: req.InstallationLocation,
	})
	if err != nil {
		a.writeSiteError(w, err, "create shutter")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) getShutter(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.getShutter")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	sh, err := a.service.GetShutter(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeSiteError(w, err, "get shutter")
		return
	}

	rest.WriteJSON(w, http.StatusOK, sh)
}

func (a *API) updateShutter(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.updateShutter")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req shutterRequest
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := a.service.UpdateShutter(ctx, companyID, &types.Shutter{
		ID:                   chi.URLParam(r, "id"),
		Name:                 req.Name,
		ModelNumber:          req.ModelNumber,
		Width:                req.Width,
		Height:               req.Height,
		UsageCount:           req.UsageCount,
		InstallationLocation: req.InstallationLocation,
	})
	if err != nil {
		a.writeSiteError(w, err, "update shutter")
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) deleteShutter(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "sites.API.deleteShutter")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := a.service.DeleteShutter(ctx, companyID, chi.URLParam(r, "id")); err != nil {
		a.writeSiteError(w, err, "delete shutter")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
