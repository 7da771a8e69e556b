// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

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

// Register creates the company row for the authenticated principal. The
// id comes from the identity header so the auth subject and the tenant
// row share a key.
func (s *Service) Register(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.Register")
	defer span.End()

	created, err := s.storage.CreateCompany(ctx, c)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("registered company %s (%s)", created.ID, created.Type)
	return created, nil
}

func (s *Service) GetCompany(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.GetCompany")
	defer span.End()

	return s.storage.GetCompanyByID(ctx, id)
}

func (s *Service) ListCompanies(ctx context.Context, companyType string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.ListCompanies")
	defer span.End()

	return s.storage.ListCompanies(ctx, companyType)
}

func (s *Service) UpdateProfile(ctx context.Context, c *types.Company, paths []string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.UpdateProfile")
	defer span.End()

	if err := s.storage.UpdateCompany(ctx, c, paths); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	updated, err := s.storage.GetCompanyByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated company: %w", err)
	}

	return updated, nil
}

// VerifyPageLock checks the settings-page lock password. A company with
// no password set never verifies.
func (s *Service) VerifyPageLock(ctx context.Context, companyID, password string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.VerifyPageLock")
	defer span.End()

	c, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return false, err
	}

	if c.PageLockPassword == nil {
		return false, nil
	}

	ok := subtle.ConstantTimeCompare([]byte(*c.PageLockPassword), []byte(password)) == 1
	if !ok {
		s.logger.Security().AccessDenied(companyID, "settings-page lock")
	}

	return ok, nil
}
