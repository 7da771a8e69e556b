// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shutterdesk/inspection-service/internal/checklist"
	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

var (
	// ErrExportFailed is the single condition the caller sees for any
	// renderer-side failure: network, non-2xx, or a malformed response.
	ErrExportFailed = errors.New("report export failed")

	// ErrNotAllowed marks an export attempt on a record whose site the
	// company neither owns nor is attached to.
	ErrNotAllowed = errors.New("company has no access to this inspection")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	renderer RendererInterface
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	renderer RendererInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		renderer: renderer,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) authorizeSite(ctx context.Context, companyID string, site *types.Site) error {
	if site.CompanyID == companyID {
		return nil
	}

	attachments, err := s.storage.ListSiteCompanies(ctx, site.ID)
	if err != nil {
		return fmt.Errorf("failed to check site access: %w", err)
	}
	for _, a := range attachments {
		if a.CompanyID == companyID {
			return nil
		}
	}

	s.logger.Security().AccessDenied(companyID, "site "+site.ID)
	return ErrNotAllowed
}

// Export loads the record's full graph, builds the renderer payload and
// returns the download URL for the rendered report.
func (s *Service) Export(ctx context.Context, companyID, recordID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "export.Service.Export")
	defer span.End()

	record, err := s.storage.GetInspectionRecordByID(ctx, recordID)
	if err != nil {
		return "", err
	}

	shutter, err := s.storage.GetShutterByID(ctx, record.ShutterID)
	if err != nil {
		return "", fmt.Errorf("failed to load shutter: %w", err)
	}

	site, err := s.storage.GetSiteByID(ctx, shutter.SiteID)
	if err != nil {
		return "", fmt.Errorf("failed to load site: %w", err)
	}

	if err := s.authorizeSite(ctx, companyID, site); err != nil {
		return "", err
	}

	results, err := s.storage.ListInspectionResultsByRecord(ctx, recordID)
	if err != nil {
		return "", fmt.Errorf("failed to load results: %w", err)
	}
	checklist.Sort(results)

	lead, err := s.storage.GetInspectorByID(ctx, record.LeadInspectorID)
	if err != nil {
		return "", fmt.Errorf("failed to load lead inspector: %w", err)
	}

	var sub *types.Inspector
	if record.SubInspectorID1 != nil {
		sub, err = s.storage.GetInspectorByID(ctx, *record.SubInspectorID1)
		if err != nil {
			return "", fmt.Errorf("failed to load sub inspector: %w", err)
		}
	}

	payload := BuildPayload(record, results, shutter, site, lead, sub, s.now())

	url, err := s.renderer.Render(ctx, payload)
	if err != nil {
		s.logger.Errorf("renderer call failed for record %s: %v", recordID, err)
		return "", ErrExportFailed
	}

	return url, nil
}
