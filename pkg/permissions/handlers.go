// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package permissions

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
)

type requestBody struct {
	GranterCompanyID  string `json:"granter_company_id" validate:"required"`
	ReceiverCompanyID string `json:"receiver_company_id,omitempty"`
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
	mux.Get("/api/v0/permissions", a.list)
	mux.Post("/api/v0/permissions", a.request)
	mux.Post("/api/v0/permissions/{id}/approve", a.approve)
	mux.Delete("/api/v0/permissions/{id}", a.revoke)
	mux.Get("/api/v0/permissions/approved-contractors", a.approvedContractors)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.list")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	partitioned, err := a.service.ListForCompany(ctx, companyID)
	if err != nil {
		a.logger.Errorf("failed to list permissions: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to list permissions")
		return
	}

	rest.WriteJSON(w, http.StatusOK, partitioned)
}

func (a *API) request(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.request")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req requestBody
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The caller asks for itself: a contractor requests access from a
	// granter, or a management company invites a contractor directly.
	receiverID := req.ReceiverCompanyID
	if receiverID == "" {
		receiverID = companyID
	}
	if companyID != req.GranterCompanyID && companyID != receiverID {
		rest.WriteError(w, http.StatusForbidden, "caller must be a party to the permission")
		return
	}

	created, err := a.service.Request(ctx, req.GranterCompanyID, receiverID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			rest.WriteError(w, http.StatusConflict, "permission already requested")
		case errors.Is(err, storage.ErrNotFound):
			rest.WriteError(w, http.StatusNotFound, "company not found")
		case errors.Is(err, ErrWrongCompanyType):
			rest.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			a.logger.Errorf("failed to request permission: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "failed to request permission")
		}
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.approve")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	updated, err := a.service.Approve(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			rest.WriteError(w, http.StatusNotFound, "permission not found")
		case errors.Is(err, ErrNotAllowed):
			rest.WriteError(w, http.StatusForbidden, "only the granter may approve")
		default:
			a.logger.Errorf("failed to approve permission: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "failed to approve permission")
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.revoke")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := a.service.Revoke(ctx, companyID, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			rest.WriteError(w, http.StatusNotFound, "permission not found")
		case errors.Is(err, ErrNotAllowed):
			rest.WriteError(w, http.StatusForbidden, "caller is not a party to the permission")
		default:
			a.logger.Errorf("failed to revoke permission: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "failed to revoke permission")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) approvedContractors(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "permissions.API.approvedContractors")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	contractors, err := a.service.ListApprovedContractors(ctx, companyID)
	if err != nil {
		a.logger.Errorf("failed to list approved contractors: %v", err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to list approved contractors")
		return
	}

	rest.WriteJSON(w, http.StatusOK, contractors)
}
