// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspectors

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, i *types.Inspector) (*types.Inspector, error)
	Get(ctx context.Context, companyID, inspectorID string) (*types.Inspector, error)
	List(ctx context.Context, companyID string) ([]*types.Inspector, error)
	GetByIDs(ctx context.Context, companyID string, ids []string) ([]*types.Inspector, error)
	Update(ctx context.Context, companyID string, i *types.Inspector) (*types.Inspector, error)
	Delete(ctx context.Context, companyID, inspectorID string) error
}

type StorageInterface interface {
	CreateInspector(ctx context.Context, i *types.Inspector) (*types.Inspector, error)
	GetInspectorByID(ctx context.Context, id string) (*types.Inspector, error)
	ListInspectorsByCompany(ctx context.Context, companyID string) ([]*types.Inspector, error)
	ListInspectorsByIDs(ctx context.Context, ids []string) ([]*types.Inspector, error)
	UpdateInspector(ctx context.Context, i *types.Inspector) error
	DeleteInspector(ctx context.Context, id string) error
}
