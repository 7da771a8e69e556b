// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package sites

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type ServiceInterface interface {
	CreateSite(ctx context.Context, site *types.Site, contractorID string) (*types.Site, error)
	GetSite(ctx context.Context, companyID, siteID string) (*types.Site, error)
	ListSitesForCompany(ctx context.Context, companyID string) ([]*types.Site, error)
	UpdateSite(ctx context.Context, companyID string, site *types.Site) (*types.Site, error)
	DeleteSite(ctx context.Context, companyID, siteID string) error
	AttachContractor(ctx context.Context, companyID, siteID, contractorID string) error
	SwapContractor(ctx context.Context, companyID, siteID, oldContractorID, newContractorID string) error

	ListShutters(ctx context.Context, companyID, siteID string) ([]*types.Shutter, error)
	CreateShutter(ctx context.Context, companyID string, sh *types.Shutter) (*types.Shutter, error)
	GetShutter(ctx context.Context, companyID, shutterID string) (*types.Shutter, error)
	UpdateShutter(ctx context.Context, companyID string, sh *types.Shutter) (*types.Shutter, error)
	DeleteShutter(ctx context.Context, companyID, shutterID string) error
}

type StorageInterface interface {
	CreateSite(ctx context.Context, s *types.Site) (*types.Site, error)
	GetSiteByID(ctx context.Context, id string) (*types.Site, error)
	ListSitesByOwner(ctx context.Context, companyID string) ([]*types.Site, error)
	ListSitesByIDs(ctx context.Context, ids []string) ([]*types.Site, error)
	UpdateSite(ctx context.Context, s *types.Site) error
	DeleteSite(ctx context.Context, id string) error
	CreateSiteCompany(ctx context.Context, siteID, companyID string) (*types.SiteCompany, error)
	ListSiteCompanies(ctx context.Context, siteID string) ([]*types.SiteCompany, error)
	ListSiteIDsByCompany(ctx context.Context, companyID string) ([]string, error)
	DeleteSiteCompany(ctx context.Context, siteID, companyID string) error
	CreateShutter(ctx context.Context, sh *types.Shutter) (*types.Shutter, error)
	GetShutterByID(ctx context.Context, id string) (*types.Shutter, error)
	ListShuttersBySite(ctx context.Context, siteID string) ([]*types.Shutter, error)
	UpdateShutter(ctx context.Context, sh *types.Shutter) error
	DeleteShutter(ctx context.Context, id string) error
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListApprovedReceiverIDs(ctx context.Context, granterCompanyID string) ([]string, error)
}

// TxRunnerInterface is the slice of the db client the service needs to
// make multi-row writes atomic.
type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
