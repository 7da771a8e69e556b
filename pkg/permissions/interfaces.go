// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type ServiceInterface interface {
	Request(ctx context.Context, granterID, receiverID string) (*types.CompanyPermission, error)
	Approve(ctx context.Context, companyID, permissionID string) (*types.CompanyPermission, error)
	Revoke(ctx context.Context, companyID, permissionID string) error
	ListForCompany(ctx context.Context, companyID string) (*PartitionedPermissions, error)
	ListApprovedContractors(ctx context.Context, granterID string) ([]*types.Company, error)
}

type StorageInterface interface {
	CreatePermission(ctx context.Context, p *types.CompanyPermission) (*types.CompanyPermission, error)
	GetPermissionByID(ctx context.Context, id string) (*types.CompanyPermission, error)
	SetPermissionApproval(ctx context.Context, id string, approval bool) error
	DeletePermission(ctx context.Context, id string) error
	ListPermissionsForCompany(ctx context.Context, companyID string) ([]*types.CompanyPermission, error)
	ListApprovedReceiverIDs(ctx context.Context, granterCompanyID string) ([]string, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
}
