// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspections

import (
	"context"
	"errors"
	"fmt"

	"github.com/shutterdesk/inspection-service/internal/checklist"
	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

// ErrNotAllowed marks access to a record on a site the company neither
// owns nor is attached to.
var ErrNotAllowed = errors.New("company has no access to this inspection")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// authorizeShutter checks the company owns the shutter's site or is
// attached to it as a contractor.
func (s *Service) authorizeShutter(ctx context.Context, companyID, shutterID string) (*types.Shutter, error) {
	sh, err := s.storage.GetShutterByID(ctx, shutterID)
	if err != nil {
		return nil, err
	}

	site, err := s.storage.GetSiteByID(ctx, sh.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site: %w", err)
	}
	if site.CompanyID == companyID {
		return sh, nil
	}

	attachments, err := s.storage.ListSiteCompanies(ctx, sh.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to check site access: %w", err)
	}
	for _, a := range attachments {
		if a.CompanyID == companyID {
			return sh, nil
		}
	}

	s.logger.Security().AccessDenied(companyID, "shutter "+shutterID)
	return nil, ErrNotAllowed
}

// snapshotInspectors copies the inspectors' current directory names onto
// the record. Names are snapshots: renaming an inspector later does not
// rewrite history.
func (s *Service) snapshotInspectors(ctx context.Context, rec *types.InspectionRecord) error {
	lead, err := s.storage.GetInspectorByID(ctx, rec.LeadInspectorID)
	if err != nil {
		return fmt.Errorf("failed to resolve lead inspector: %w", err)
	}
	rec.LeadInspector = lead.Name

	if rec.SubInspectorID1 != nil {
		sub, err := s.storage.GetInspectorByID(ctx, *rec.SubInspectorID1)
		if err != nil {
			return fmt.Errorf("failed to resolve sub inspector 1: %w", err)
		}
		rec.SubInspector1 = &sub.Name
	} else {
		rec.SubInspector1 = nil
	}

	if rec.SubInspectorID2 != nil {
		sub, err := s.storage.GetInspectorByID(ctx, *rec.SubInspectorID2)
		if err != nil {
			return fmt.Errorf("failed to resolve sub inspector 2: %w", err)
		}
		rec.SubInspector2 = &sub.Name
	} else {
		rec.SubInspector2 = nil
	}

	return nil
}

// Create inserts the record and seeds one result row per catalog item,
// all in one transaction: a failure on any row leaves neither the record
// nor any results behind. Overrides replace the seeded judgement fields
// for matching inspection names.
func (s *Service) Create(ctx context.Context, companyID string, rec *types.InspectionRecord, overrides []*types.InspectionResult) (*RecordWithResults, error) {
	ctx, span := s.tracer.Start(ctx, "inspections.Service.Create")
	defer span.End()

	if _, err := s.authorizeShutter(ctx, companyID, rec.ShutterID); err != nil {
		return nil, err
	}

	rec.CompanyID = companyID
	if err := s.snapshotInspectors(ctx, rec); err != nil {
		return nil, err
	}

	seeded := checklist.Seed(companyID)
	overrideByName := make(map[string]*types.InspectionResult, len(overrides))
	for _, o := range overrides {
		overrideByName[o.InspectionName] = o
	}
	for _, r := range seeded {
		if o, ok := overrideByName[r.InspectionName]; ok {
			r.TargetExistence = o.TargetExistence
			r.InspectionResult = o.InspectionResult
			r.SituationMeasures = o.SituationMeasures
			if o.InspectorNumber != "" {
				r.InspectorNumber = o.InspectorNumber
			}
		}
	}

	var (
		created *types.InspectionRecord
		results []*types.InspectionResult
	)
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.storage.CreateInspectionRecord(txCtx, rec)
		if err != nil {
			return err
		}

		results = make([]*types.InspectionResult, 0, len(seeded))
		for _, r := range seeded {
			r.InspectionRecordID = created.ID
			row, err := s.storage.CreateInspectionResult(txCtx, r)
			if err != nil {
				return err
			}
			results = append(results, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	checklist.Sort(results)
	return &RecordWithResults{Record: created, Results: results}, nil
}

func (s *Service) Get(ctx context.Context, companyID, recordID string) (*RecordWithResults, error) {
	ctx, span := s.tracer.Start(ctx, "inspections.Service.Get")
	defer span.End()

	rec, err := s.storage.GetInspectionRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeShutter(ctx, companyID, rec.ShutterID); err != nil {
		return nil, err
	}

	results, err := s.storage.ListInspectionResultsByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	checklist.Sort(results)

	return &RecordWithResults{Record: rec, Results: results}, nil
}

// resultChanged compares the judgement fields, the only ones an edit may
// touch.
func resultChanged(stored, submitted *types.InspectionResult) bool {
	return stored.TargetExistence != submitted.TargetExistence ||
		stored.InspectionResult != submitted.InspectionResult ||
		stored.SituationMeasures != submitted.SituationMeasures ||
		stored.InspectorNumber != submitted.InspectorNumber
}

// Edit updates the record and then diffs the submitted results against
// the stored set by full value comparison: only rows that actually
// changed are written. One changed checklist item means one row update.
func (s *Service) Edit(ctx context.Context, companyID string, rec *types.InspectionRecord, results []*types.InspectionResult) (*RecordWithResults, error) {
	ctx, span := s.tracer.Start(ctx, "inspections.Service.Edit")
	defer span.End()

	current, err := s.storage.GetInspectionRecordByID(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeShutter(ctx, companyID, current.ShutterID); err != nil {
		return nil, err
	}

	rec.CompanyID = current.CompanyID
	rec.ShutterID = current.ShutterID
	if err := s.snapshotInspectors(ctx, rec); err != nil {
		return nil, err
	}

	stored, err := s.storage.ListInspectionResultsByRecord(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	storedByID := make(map[string]*types.InspectionResult, len(stored))
	for _, r := range stored {
		storedByID[r.ID] = r
	}

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.UpdateInspectionRecord(txCtx, rec); err != nil {
			return err
		}

		for _, submitted := range results {
			prev, ok := storedByID[submitted.ID]
			if !ok || !resultChanged(prev, submitted) {
				continue
			}
			if err := s.storage.UpdateInspectionResult(txCtx, submitted); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, companyID, rec.ID)
}

// Delete removes the record and its result rows together.
func (s *Service) Delete(ctx context.Context, companyID, recordID string) error {
	ctx, span := s.tracer.Start(ctx, "inspections.Service.Delete")
	defer span.End()

	rec, err := s.storage.GetInspectionRecordByID(ctx, recordID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeShutter(ctx, companyID, rec.ShutterID); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.DeleteInspectionResultsByRecord(txCtx, recordID); err != nil {
			return err
		}
		return s.storage.DeleteInspectionRecord(txCtx, recordID)
	})
}

func (s *Service) ListByShutter(ctx context.Context, companyID, shutterID string) ([]*types.InspectionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "inspections.Service.ListByShutter")
	defer span.End()

	if _, err := s.authorizeShutter(ctx, companyID, shutterID); err != nil {
		return nil, err
	}

	return s.storage.ListInspectionRecordsByShutter(ctx, shutterID)
}
