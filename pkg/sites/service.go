// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package sites

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/monitoring"
	"github.com/shutterdesk/inspection-service/internal/tracing"
	"github.com/shutterdesk/inspection-service/internal/types"
)

var (
	// ErrNotAllowed marks access to a site the company neither owns nor
	// is attached to.
	ErrNotAllowed = errors.New("company has no access to this site")

	// ErrContractorNotApproved marks an attempt to attach a contractor
	// the owner has not approved in the permission ledger.
	ErrContractorNotApproved = errors.New("contractor is not approved by the site owner")
)

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

// authorizeSite loads the site and checks the company is the owner or an
// attached contractor.
func (s *Service) authorizeSite(ctx context.Context, companyID, siteID string) (*types.Site, error) {
	site, err := s.storage.GetSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	if site.CompanyID == companyID {
		return site, nil
	}

	attachments, err := s.storage.ListSiteCompanies(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to check site access: %w", err)
	}
	for _, a := range attachments {
		if a.CompanyID == companyID {
			return site, nil
		}
	}

	s.logger.Security().AccessDenied(companyID, "site "+siteID)
	return nil, ErrNotAllowed
}

func (s *Service) requireApprovedContractor(ctx context.Context, ownerID, contractorID string) error {
	approved, err := s.storage.ListApprovedReceiverIDs(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to list approved contractors: %w", err)
	}
	if !slices.Contains(approved, contractorID) {
		return ErrContractorNotApproved
	}
	return nil
}

// CreateSite inserts the site and attaches the owner and the chosen
// contractor in a single transaction; a failure on any join row leaves
// no site behind.
func (s *Service) CreateSite(ctx context.Context, site *types.Site, contractorID string) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.CreateSite")
	defer span.End()

	owner, err := s.storage.GetCompanyByID(ctx, site.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}
	if owner.Type != types.CompanyTypeManagement {
		return nil, ErrNotAllowed
	}

	if err := s.requireApprovedContractor(ctx, owner.ID, contractorID); err != nil {
		return nil, err
	}

	var created *types.Site
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.storage.CreateSite(txCtx, site)
		if err != nil {
			return err
		}
		if _, err := s.storage.CreateSiteCompany(txCtx, created.ID, owner.ID); err != nil {
			return err
		}
		if _, err := s.storage.CreateSiteCompany(txCtx, created.ID, contractorID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	return created, nil
}

func (s *Service) GetSite(ctx context.Context, companyID, siteID string) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.GetSite")
	defer span.End()

	return s.authorizeSite(ctx, companyID, siteID)
}

// ListSitesForCompany returns the sites a management company owns, or the
// sites a contractor is attached to. A contractor with no attachments
// gets an empty list, same as one whose sites were all deleted.
func (s *Service) ListSitesForCompany(ctx context.Context, companyID string) ([]*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.ListSitesForCompany")
	defer span.End()

	company, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	if company.Type == types.CompanyTypeManagement {
		return s.storage.ListSitesByOwner(ctx, companyID)
	}

	ids, err := s.storage.ListSiteIDsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attached sites: %w", err)
	}

	return s.storage.ListSitesByIDs(ctx, ids)
}

func (s *Service) UpdateSite(ctx context.Context, companyID string, site *types.Site) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.UpdateSite")
	defer span.End()

	current, err := s.storage.GetSiteByID(ctx, site.ID)
	if err != nil {
		return nil, err
	}
	if current.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "site "+site.ID)
		return nil, ErrNotAllowed
	}

	if err := s.storage.UpdateSite(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	return s.storage.GetSiteByID(ctx, site.ID)
}

func (s *Service) DeleteSite(ctx context.Context, companyID, siteID string) error {
	ctx, span := s.tracer.Start(ctx, "sites.Service.DeleteSite")
	defer span.End()

	site, err := s.storage.GetSiteByID(ctx, siteID)
	if err != nil {
		return err
	}
	if site.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "site "+siteID)
		return ErrNotAllowed
	}

	return s.storage.DeleteSite(ctx, siteID)
}

// AttachContractor adds an approved contractor to the site. Attaching
// the same contractor twice hits the unique (site, company) index.
func (s *Service) AttachContractor(ctx context.Context, companyID, siteID, contractorID string) error {
	ctx, span := s.tracer.Start(ctx, "sites.Service.AttachContractor")
	defer span.End()

	site, err := s.storage.GetSiteByID(ctx, siteID)
	if err != nil {
		return err
	}
	if site.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "site "+siteID)
		return ErrNotAllowed
	}

	if err := s.requireApprovedContractor(ctx, companyID, contractorID); err != nil {
		return err
	}

	_, err = s.storage.CreateSiteCompany(ctx, siteID, contractorID)
	return err
}

// SwapContractor detaches the old contractor and attaches the new one in
// a single transaction, so the site never observably has both or neither.
func (s *Service) SwapContractor(ctx context.Context, companyID, siteID, oldContractorID, newContractorID string) error {
	ctx, span := s.tracer.Start(ctx, "sites.Service.SwapContractor")
	defer span.End()

	site, err := s.storage.GetSiteByID(ctx, siteID)
	if err != nil {
		return err
	}
	if site.CompanyID != companyID {
		s.logger.Security().AccessDenied(companyID, "site "+siteID)
		return ErrNotAllowed
	}

	if err := s.requireApprovedContractor(ctx, companyID, newContractorID); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.storage.DeleteSiteCompany(txCtx, siteID, oldContractorID); err != nil {
			return err
		}
		if _, err := s.storage.CreateSiteCompany(txCtx, siteID, newContractorID); err != nil {
			return err
		}
		return nil
	})
}

func (s *Service) ListShutters(ctx context.Context, companyID, siteID string) ([]*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.ListShutters")
	defer span.End()

	if _, err := s.authorizeSite(ctx, companyID, siteID); err != nil {
		return nil, err
	}

	return s.storage.ListShuttersBySite(ctx, siteID)
}

func (s *Service) CreateShutter(ctx context.Context, companyID string, sh *types.Shutter) (*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.CreateShutter")
	defer span.End()

	site, err := s.authorizeSite(ctx, companyID, sh.SiteID)
	if err != nil {
		return nil, err
	}

	// Shutters belong to the site owner regardless of who registers them.
	sh.CompanyID = site.CompanyID

	return s.storage.CreateShutter(ctx, sh)
}

func (s *Service) GetShutter(ctx context.Context, companyID, shutterID string) (*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.GetShutter")
	defer span.End()

	sh, err := s.storage.GetShutterByID(ctx, shutterID)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeSite(ctx, companyID, sh.SiteID); err != nil {
		return nil, err
	}

	return sh, nil
}

func (s *Service) UpdateShutter(ctx context.Context, companyID string, sh *types.Shutter) (*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "sites.Service.UpdateShutter")
	defer span.End()

	current, err := s.storage.GetShutterByID(ctx, sh.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeSite(ctx, companyID, current.SiteID); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateShutter(ctx, sh); err != nil {
		return nil, fmt.Errorf("failed to update shutter: %w", err)
	}

	return s.storage.GetShutterByID(ctx, sh.ID)
}

func (s *Service) DeleteShutter(ctx context.Context, companyID, shutterID string) error {
	ctx, span := s.tracer.Start(ctx, "sites.Service.DeleteShutter")
	defer span.End()

	sh, err := s.storage.GetShutterByID(ctx, shutterID)
	if err != nil {
		return err
	}
	if _, err := s.authorizeSite(ctx, companyID, sh.SiteID); err != nil {
		return err
	}

	return s.storage.DeleteShutter(ctx, shutterID)
}
