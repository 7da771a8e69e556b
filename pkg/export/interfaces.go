// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type ServiceInterface interface {
	Export(ctx context.Context, companyID, recordID string) (string, error)
}

// RendererInterface is the external Excel renderer collaborator.
type RendererInterface interface {
	Render(ctx context.Context, payload *Payload) (string, error)
}

type StorageInterface interface {
	GetInspectionRecordByID(ctx context.Context, id string) (*types.InspectionRecord, error)
	ListInspectionResultsByRecord(ctx context.Context, recordID string) ([]*types.InspectionResult, error)
	GetShutterByID(ctx context.Context, id string) (*types.Shutter, error)
	GetSiteByID(ctx context.Context, id string) (*types.Site, error)
	ListSiteCompanies(ctx context.Context, siteID string) ([]*types.SiteCompany, error)
	GetInspectorByID(ctx context.Context, id string) (*types.Inspector, error)
}
