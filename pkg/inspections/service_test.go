// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspections

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/checklist"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package inspections -destination ./mock_inspections.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspections -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspections -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspections -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	ownerID    = "mgmt-1"
	shutterID  = "shutter-1"
	siteID     = "site-1"
	recordID   = "record-1"
	leadID     = "inspector-1"
	leadName   = "Tanaka Ichiro"
	expectedAt = "2025-11-04"
)

func expectOwnedShutter(mockStorage *MockStorageInterface) {
	mockStorage.EXPECT().GetShutterByID(gomock.Any(), shutterID).Return(&types.Shutter{ID: shutterID, SiteID: siteID, CompanyID: ownerID}, nil)
	mockStorage.EXPECT().GetSiteByID(gomock.Any(), siteID).Return(&types.Site{ID: siteID, CompanyID: ownerID}, nil)
}

// passthroughTx makes the mock tx runner behave like the real one: run
// the callback, propagate its error.
func passthroughTx(mockTx *MockTxRunnerInterface) {
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_Create(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		overrides     []*types.InspectionResult
		setupMocks    func(*MockStorageInterface, *MockTxRunnerInterface)
		expectedErr   error
		expectedCount int
	}{
		{
			name: "seeds one row per catalog item",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				expectOwnedShutter(mockStorage)
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), leadID).Return(&types.Inspector{ID: leadID, Name: leadName}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().CreateInspectionRecord(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error) {
						if r.LeadInspector != leadName {
							t.Errorf("expected snapshotted lead name %q, got %q", leadName, r.LeadInspector)
						}
						r.ID = recordID
						return r, nil
					},
				)
				mockStorage.EXPECT().CreateInspectionResult(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.InspectionResult) (*types.InspectionResult, error) {
						if r.InspectionRecordID != recordID {
							t.Errorf("expected result bound to %s, got %s", recordID, r.InspectionRecordID)
						}
						return r, nil
					},
				).Times(checklist.Size())
			},
			expectedCount: checklist.Size(),
		},
		{
			name: "override replaces judgement fields for the named item",
			overrides: []*types.InspectionResult{
				{
					InspectionName:    "Closing time and closing force",
					TargetExistence:   true,
					InspectionResult:  types.ResultNeedsCorrection,
					SituationMeasures: "closing time exceeds 30s, spring re-tensioned",
				},
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				expectOwnedShutter(mockStorage)
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), leadID).Return(&types.Inspector{ID: leadID, Name: leadName}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().CreateInspectionRecord(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error) {
						r.ID = recordID
						return r, nil
					},
				)
				mockStorage.EXPECT().CreateInspectionResult(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.InspectionResult) (*types.InspectionResult, error) {
						if r.InspectionName == "Closing time and closing force" {
							if r.InspectionResult != types.ResultNeedsCorrection {
								t.Errorf("expected overridden result, got %s", r.InspectionResult)
							}
							if r.InspectorNumber != "1" {
								t.Errorf("expected empty override to keep seeded inspector number, got %s", r.InspectorNumber)
							}
						} else if r.InspectionResult != types.ResultNoIssue {
							t.Errorf("expected untouched item %q to keep seed, got %s", r.InspectionName, r.InspectionResult)
						}
						return r, nil
					},
				).Times(checklist.Size())
			},
			expectedCount: checklist.Size(),
		},
		{
			name: "mid-seed failure aborts the whole write",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				expectOwnedShutter(mockStorage)
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), leadID).Return(&types.Inspector{ID: leadID, Name: leadName}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().CreateInspectionRecord(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error) {
						r.ID = recordID
						return r, nil
					},
				)
				gomock.InOrder(
					mockStorage.EXPECT().CreateInspectionResult(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, r *types.InspectionResult) (*types.InspectionResult, error) {
							return r, nil
						},
					).Times(4),
					mockStorage.EXPECT().CreateInspectionResult(gomock.Any(), gomock.Any()).Return(nil, dbErr),
				)
			},
			expectedErr: dbErr,
		},
		{
			name: "stranger is rejected before any write",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetShutterByID(gomock.Any(), shutterID).Return(&types.Shutter{ID: shutterID, SiteID: siteID, CompanyID: ownerID}, nil)
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), siteID).Return(&types.Site{ID: siteID, CompanyID: ownerID}, nil)
				mockStorage.EXPECT().ListSiteCompanies(gomock.Any(), siteID).Return([]*types.SiteCompany{
					{SiteID: siteID, CompanyID: ownerID},
				}, nil)
			},
			expectedErr: ErrNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			mockSecurity.EXPECT().AccessDenied(gomock.Any(), gomock.Any()).AnyTimes()

			s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "inspections.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx)

			companyID := ownerID
			if tc.expectedErr == ErrNotAllowed {
				companyID = "stranger"
			}
			rec := &types.InspectionRecord{
				ShutterID:       shutterID,
				InspectionDate:  expectedAt,
				LeadInspectorID: leadID,
			}

			got, err := s.Create(context.Background(), companyID, rec, tc.overrides)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if got != nil {
					t.Errorf("expected no record on failure, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.Results) != tc.expectedCount {
				t.Errorf("expected %d result rows, got %d", tc.expectedCount, len(got.Results))
			}
			for i, r := range got.Results {
				if idx := checklist.Index(r.InspectionName); idx != i {
					t.Errorf("expected results in catalog order, item %d is %q", i, r.InspectionName)
				}
			}
		})
	}
}

func TestService_Edit(t *testing.T) {
	current := &types.InspectionRecord{
		ID:              recordID,
		CompanyID:       ownerID,
		ShutterID:       shutterID,
		InspectionDate:  expectedAt,
		LeadInspectorID: leadID,
	}
	stored := []*types.InspectionResult{
		{ID: "res-1", InspectionRecordID: recordID, InspectionName: "Obstructions around the shutter opening", TargetExistence: true, InspectionResult: types.ResultNoIssue, InspectorNumber: "1"},
		{ID: "res-2", InspectionRecordID: recordID, InspectionName: "Signage and markings of the closing area", TargetExistence: true, InspectionResult: types.ResultNoIssue, InspectorNumber: "1"},
		{ID: "res-3", InspectionRecordID: recordID, InspectionName: "Corrosion and damage of the case", TargetExistence: true, InspectionResult: types.ResultNoIssue, InspectorNumber: "1"},
	}
	submitted := []*types.InspectionResult{
		{ID: "res-1", InspectionRecordID: recordID, InspectionName: "Obstructions around the shutter opening", TargetExistence: true, InspectionResult: types.ResultNoIssue, InspectorNumber: "1"},
		{ID: "res-2", InspectionRecordID: recordID, InspectionName: "Signage and markings of the closing area", TargetExistence: true, InspectionResult: types.ResultNeedsCorrection, SituationMeasures: "signage faded, replaced", InspectorNumber: "1"},
		{ID: "res-3", InspectionRecordID: recordID, InspectionName: "Corrosion and damage of the case", TargetExistence: true, InspectionResult: types.ResultNoIssue, InspectorNumber: "1"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "inspections.Service.Edit").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockTracer.EXPECT().Start(gomock.Any(), "inspections.Service.Get").Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), recordID).Return(current, nil)
	expectOwnedShutter(mockStorage)
	mockStorage.EXPECT().GetInspectorByID(gomock.Any(), leadID).Return(&types.Inspector{ID: leadID, Name: leadName}, nil)
	mockStorage.EXPECT().ListInspectionResultsByRecord(gomock.Any(), recordID).Return(stored, nil)
	passthroughTx(mockTx)
	mockStorage.EXPECT().UpdateInspectionRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.InspectionRecord) error {
			if r.ShutterID != shutterID || r.CompanyID != ownerID {
				t.Errorf("expected ownership preserved from stored record, got %+v", r)
			}
			return nil
		},
	)
	// exactly one result row changed, so exactly one row update
	mockStorage.EXPECT().UpdateInspectionResult(gomock.Any(), submitted[1]).Return(nil)

	// reload via Get
	mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), recordID).Return(current, nil)
	expectOwnedShutter(mockStorage)
	mockStorage.EXPECT().ListInspectionResultsByRecord(gomock.Any(), recordID).Return(submitted, nil)

	rec := &types.InspectionRecord{ID: recordID, InspectionDate: expectedAt, LeadInspectorID: leadID}
	got, err := s.Edit(context.Background(), ownerID, rec, submitted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Results) != 3 {
		t.Errorf("expected 3 result rows, got %d", len(got.Results))
	}
}

func TestService_Delete(t *testing.T) {
	current := &types.InspectionRecord{ID: recordID, CompanyID: ownerID, ShutterID: shutterID}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface)
		expectedErr error
	}{
		{
			name: "removes results and record together",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), recordID).Return(current, nil)
				expectOwnedShutter(mockStorage)
				passthroughTx(mockTx)
				gomock.InOrder(
					mockStorage.EXPECT().DeleteInspectionResultsByRecord(gomock.Any(), recordID).Return(nil),
					mockStorage.EXPECT().DeleteInspectionRecord(gomock.Any(), recordID).Return(nil),
				)
			},
		},
		{
			name: "result wipe failure keeps the record",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), recordID).Return(current, nil)
				expectOwnedShutter(mockStorage)
				passthroughTx(mockTx)
				mockStorage.EXPECT().DeleteInspectionResultsByRecord(gomock.Any(), recordID).Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "inspections.Service.Delete").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx)

			err := s.Delete(context.Background(), ownerID, recordID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Get_SortsResults(t *testing.T) {
	current := &types.InspectionRecord{ID: recordID, CompanyID: ownerID, ShutterID: shutterID}
	// stored out of catalog order, plus one legacy row the catalog no
	// longer knows
	stored := []*types.InspectionResult{
		{ID: "res-3", InspectionName: "Corrosion and damage of the case"},
		{ID: "res-x", InspectionName: "Manual chain operation"},
		{ID: "res-1", InspectionName: "Obstructions around the shutter opening"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "inspections.Service.Get").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), recordID).Return(current, nil)
	expectOwnedShutter(mockStorage)
	mockStorage.EXPECT().ListInspectionResultsByRecord(gomock.Any(), recordID).Return(stored, nil)

	got, err := s.Get(context.Background(), ownerID, recordID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"res-1", "res-3", "res-x"}
	for i, id := range wantOrder {
		if got.Results[i].ID != id {
			t.Errorf("expected %s at position %d, got %s", id, i, got.Results[i].ID)
		}
	}
}
