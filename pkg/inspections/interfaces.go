// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspections

import (
	"context"

	"github.com/shutterdesk/inspection-service/internal/types"
)

// RecordWithResults is a record with its checklist rows in catalog order.
type RecordWithResults struct {
	Record  *types.InspectionRecord   `json:"inspection_record"`
	Results []*types.InspectionResult `json:"inspection_results"`
}

type ServiceInterface interface {
	Create(ctx context.Context, companyID string, rec *types.InspectionRecord, overrides []*types.InspectionResult) (*RecordWithResults, error)
	Get(ctx context.Context, companyID, recordID string) (*RecordWithResults, error)
	Edit(ctx context.Context, companyID string, rec *types.InspectionRecord, results []*types.InspectionResult) (*RecordWithResults, error)
	Delete(ctx context.Context, companyID, recordID string) error
	ListByShutter(ctx context.Context, companyID, shutterID string) ([]*types.InspectionRecord, error)
}

type StorageInterface interface {
	CreateInspectionRecord(ctx context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error)
	GetInspectionRecordByID(ctx context.Context, id string) (*types.InspectionRecord, error)
	ListInspectionRecordsByShutter(ctx context.Context, shutterID string) ([]*types.InspectionRecord, error)
	UpdateInspectionRecord(ctx context.Context, r *types.InspectionRecord) error
	DeleteInspectionRecord(ctx context.Context, id string) error
	CreateInspectionResult(ctx context.Context, r *types.InspectionResult) (*types.InspectionResult, error)
	ListInspectionResultsByRecord(ctx context.Context, recordID string) ([]*types.InspectionResult, error)
	UpdateInspectionResult(ctx context.Context, r *types.InspectionResult) error
	DeleteInspectionResultsByRecord(ctx context.Context, recordID string) error
	GetShutterByID(ctx context.Context, id string) (*types.Shutter, error)
	GetSiteByID(ctx context.Context, id string) (*types.Site, error)
	ListSiteCompanies(ctx context.Context, siteID string) ([]*types.SiteCompany, error)
	GetInspectorByID(ctx context.Context, id string) (*types.Inspector, error)
}

// TxRunnerInterface is the slice of the db client the service needs to
// keep a record and its result rows atomic.
type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
