// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspectors

import (
	"context"
	"errors"
	"fmt"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

// ErrNotAllowed marks access to an inspector owned by another company.
var ErrNotAllowed = errors.New("inspector belongs to another company")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Create(ctx context.Context, i *types.Inspector) (*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.Create")
	defer span.End()

	return s.storage.CreateInspector(ctx, i)
}

func (s *Service) Get(ctx context.Context, companyID, inspectorID string) (*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.Get")
	defer span.End()

	i, err := s.storage.GetInspectorByID(ctx, inspectorID)
	if err != nil {
		return nil, err
	}
	if i.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "inspector "+inspectorID)
		return nil, ErrNotAllowed
	}

	return i, nil
}

func (s *Service) List(ctx context.Context, companyID string) ([]*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.List")
	defer span.End()

	return s.storage.ListInspectorsByCompany(ctx, companyID)
}

// GetByIDs returns the company's inspectors in the order the ids were
// requested; ids that resolve to nothing, or to another company's
// inspector, are skipped.
func (s *Service) GetByIDs(ctx context.Context, companyID string, ids []string) ([]*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.GetByIDs")
	defer span.End()

	fetched, err := s.storage.ListInspectorsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inspectors: %w", err)
	}

	byID := make(map[string]*types.Inspector, len(fetched))
	for _, i := range fetched {
		if i.CompanyID == companyID {
			byID[i.ID] = i
		}
	}

	ordered := make([]*types.Inspector, 0, len(ids))
	for _, id := range ids {
		if i, ok := byID[id]; ok {
			ordered = append(ordered, i)
		}
	}

	return ordered, nil
}

func (s *Service) Update(ctx context.Context, companyID string, i *types.Inspector) (*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.Update")
	defer span.End()

	current, err := s.storage.GetInspectorByID(ctx, i.ID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "inspector "+i.ID)
		return nil, ErrNotAllowed
	}

	if err := s.storage.UpdateInspector(ctx, i); err != nil {
		return nil, fmt.Errorf("failed to update inspector: %w", err)
	}

	return s.storage.GetInspectorByID(ctx, i.ID)
}

func (s *Service) Delete(ctx context.Context, companyID, inspectorID string) error {
	ctx, span := s.tracer.Start(ctx, "inspectors.Service.Delete")
	defer span.End()

	current, err := s.storage.GetInspectorByID(ctx, inspectorID)
	if err != nil {
		return err
	}
	if current.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "inspector "+inspectorID)
		return ErrNotAllowed
	}

	return s.storage.DeleteInspector(ctx, inspectorID)
}
