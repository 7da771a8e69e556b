// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompany(ctx context.Context, id string) (*types.Company, error)
	ListCompanies(ctx context.Context, companyType string) ([]*types.Company, error)
	UpdateProfile(ctx context.Context, c *types.Company, paths []string) (*types.Company, error)
	VerifyPageLock(ctx context.Context, companyID, password string) (bool, error)
}

type StorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListCompanies(ctx context.Context, companyType string) ([]*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company, paths []string) error
}
