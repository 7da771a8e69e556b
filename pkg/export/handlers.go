// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shutterdesk/inspection-service/internal/identity"
	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/rest"
	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/tracing"
)

type exportResponse struct {
	DownloadURL string `json:"download_url"`
}

type API struct {
	service ServiceInterface

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
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/records/{id}/export", a.export)
}

func (a *API) export(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "export.API.export")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	url, err := a.service.Export(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			rest.WriteError(w, http.StatusNotFound, "inspection record not found")
		case errors.Is(err, ErrNotAllowed):
			rest.WriteError(w, http.StatusForbidden, "no access to this inspection")
		case errors.Is(err, ErrExportFailed):
			rest.WriteError(w, http.StatusBadGateway, ErrExportFailed.Error())
		default:
			a.logger.Errorf("failed to export record: %v", err)
			rest.WriteError(w, http.StatusInternalServerError, "failed to export record")
		}
		return
	}

	rest.WriteJSON(w, http.StatusOK, exportResponse{DownloadURL: url})
}
