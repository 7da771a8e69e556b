// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspections

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

type resultPayload struct {
	ID                string `json:"id,omitempty"`
	InspectionName    string `json:"inspection_name" validate:"required"`
	TargetExistence   bool   `json:"target_existence"`
	InspectionResult  string `json:"inspection_result" validate:"required,oneof=no_issue needs_correction alert existing_non_compliance"`
	SituationMeasures string `json:"situation_measures"`
	InspectorNumber   string `json:"inspector_number"`
}

type recordPayload struct {
	ShutterID       string           `json:"shutter_id" validate:"required"`
	InspectionDate  string           `json:"inspection_date" validate:"required,datetime=2006-01-02"`
	LeadInspectorID string           `json:"lead_inspector_id" validate:"required"`
	SubInspectorID1 *string          `json:"sub_inspector_id_1,omitempty"`
	SubInspectorID2 *string          `json:"sub_inspector_id_2,omitempty"`
	SpecialNote     *string          `json:"special_note,omitempty"`
	Results         []*resultPayload `json:"inspection_results,omitempty" validate:"dive"`
}

func (p *recordPayload) toRecord() *types.InspectionRecord {
	return &types.InspectionRecord{
		ShutterID:       p.ShutterID,
		InspectionDate:  p.InspectionDate,
		LeadInspectorID: p.LeadInspectorID,
		SubInspectorID1: p.SubInspectorID1,
		SubInspectorID2: p.SubInspectorID2,
		SpecialNote:     p.SpecialNote,
	}
}

func (p *recordPayload) toResults() []*types.InspectionResult {
	results := make([]*types.InspectionResult, 0, len(p.Results))
	for _, r := range p.Results {
		results = append(results, &types.InspectionResult{
			ID:                r.ID,
			InspectionName:    r.InspectionName,
			TargetExistence:   r.TargetExistence,
			InspectionResult:  r.InspectionResult,
			SituationMeasures: r.SituationMeasures,
			InspectorNumber:   r.InspectorNumber,
		})
	}
	return results
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
	mux.Post("/api/v0/records", a.create)
	mux.Get("/api/v0/records", a.listByShutter)
	mux.Get("/api/v0/records/{id}", a.get)
	mux.Patch("/api/v0/records/{id}", a.edit)
	mux.Delete("/api/v0/records/{id}", a.delete)
}

func (a *API) writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		rest.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		rest.WriteError(w, http.StatusConflict, "an inspection record for this shutter and date already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		rest.WriteError(w, http.StatusBadRequest, "referenced entity does not exist")
	case errors.Is(err, ErrNotAllowed):
		rest.WriteError(w, http.StatusForbidden, "no access to this inspection")
	default:
		a.logger.Errorf("failed to %s: %v", action, err)
		rest.WriteError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspections.API.create")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req recordPayload
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := a.service.Create(ctx, companyID, req.toRecord(), req.toResults())
	if err != nil {
		a.writeError(w, err, "create inspection record")
		return
	}

	rest.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) listByShutter(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspections.API.listByShutter")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	shutterID := r.URL.Query().Get("shutter_id")
	if shutterID == "" {
		rest.WriteError(w, http.StatusBadRequest, "shutter_id is required")
		return
	}

	records, err := a.service.ListByShutter(ctx, companyID, shutterID)
	if err != nil {
		a.writeError(w, err, "list inspection records")
		return
	}
	if records == nil {
		records = []*types.InspectionRecord{}
	}

	rest.WriteJSON(w, http.StatusOK, records)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspections.API.get")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	record, err := a.service.Get(ctx, companyID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err, "get inspection record")
		return
	}

	rest.WriteJSON(w, http.StatusOK, record)
}

func (a *API) edit(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspections.API.edit")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req recordPayload
	if err := rest.Decode(r, &req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := req.toRecord()
	rec.ID = chi.URLParam(r, "id")

	updated, err := a.service.Edit(ctx, companyID, rec, req.toResults())
	if err != nil {
		a.writeError(w, err, "edit inspection record")
		return
	}

	rest.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "inspections.API.delete")
	defer span.End()

	companyID := identity.CompanyIDFromContext(ctx)
	if companyID == "" {
		rest.WriteError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	if err := a.service.Delete(ctx, companyID, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err, "delete inspection record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
