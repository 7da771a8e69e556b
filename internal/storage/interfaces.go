// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type StorageInterface interface {
	// Tenant directory
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListCompanies(ctx context.Context, companyType string) ([]*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company, paths []string) error

	// Permission ledger
	CreatePermission(ctx context.Context, p *types.CompanyPermission) (*types.CompanyPermission, error)
	GetPermissionByID(ctx context.Context, id string) (*types.CompanyPermission, error)
	SetPermissionApproval(ctx context.Context, id string, approval bool) error
	DeletePermission(ctx context.Context, id string) error
	ListPermissionsForCompany(ctx context.Context, companyID string) ([]*types.CompanyPermission, error)
	ListApprovedReceiverIDs(ctx context.Context, granterCompanyID string) ([]string, error)

	// Site/shutter registry
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

	// Inspector directory
	CreateInspector(ctx context.Context, i *types.Inspector) (*types.Inspector, error)
	GetInspectorByID(ctx context.Context, id string) (*types.Inspector, error)
	ListInspectorsByCompany(ctx context.Context, companyID string) ([]*types.Inspector, error)
	ListInspectorsByIDs(ctx context.Context, ids []string) ([]*types.Inspector, error)
	UpdateInspector(ctx context.Context, i *types.Inspector) error
	DeleteInspector(ctx context.Context, id string) error

	// Inspection workflow
	CreateInspectionRecord(ctx context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error)
	GetInspectionRecordByID(ctx context.Context, id string) (*types.InspectionRecord, error)
	ListInspectionRecordsByShutter(ctx context.Context, shutterID string) ([]*types.InspectionRecord, error)
	UpdateInspectionRecord(ctx context.Context, r *types.InspectionRecord) error
	DeleteInspectionRecord(ctx context.Context, id string) error
	CreateInspectionResult(ctx context.Context, r *types.InspectionResult) (*types.InspectionResult, error)
	ListInspectionResultsByRecord(ctx context.Context, recordID string) ([]*types.InspectionResult, error)
	UpdateInspectionResult(ctx context.Context, r *types.InspectionResult) error
	DeleteInspectionResultsByRecord(ctx context.Context, recordID string) error
}
