// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspectors

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package inspectors -destination ./mock_inspectors.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspectors -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspectors -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package inspectors -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_GetByIDs(t *testing.T) {
	fetched := []*types.Inspector{
		{ID: "ins-1", CompanyID: "ctr-1", Name: "Tanaka Ichiro"},
		{ID: "ins-2", CompanyID: "ctr-1", Name: "Suzuki Jiro"},
		{ID: "ins-other", CompanyID: "ctr-2", Name: "Sato Saburo"},
	}

	testCases := []struct {
		name          string
		ids           []string
		setupMocks    func(*MockStorageInterface)
		expectedOrder []string
	}{
		{
			name: "returns inspectors in requested order",
			ids:  []string{"ins-2", "ins-1"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				// storage returns them in directory order, not request order
				mockStorage.EXPECT().ListInspectorsByIDs(gomock.Any(), []string{"ins-2", "ins-1"}).Return(fetched[:2], nil)
			},
			expectedOrder: []string{"ins-2", "ins-1"},
		},
		{
			name: "skips unknown ids and other companies' inspectors",
			ids:  []string{"ins-1", "ins-gone", "ins-other"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListInspectorsByIDs(gomock.Any(), []string{"ins-1", "ins-gone", "ins-other"}).Return(
					[]*types.Inspector{fetched[0], fetched[2]}, nil)
			},
			expectedOrder: []string{"ins-1"},
		},
		{
			name: "empty ids yields empty list",
			ids:  []string{},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListInspectorsByIDs(gomock.Any(), []string{}).Return([]*types.Inspector{}, nil)
			},
			expectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "inspectors.Service.GetByIDs").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			got, err := s.GetByIDs(context.Background(), "ctr-1", tc.ids)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.expectedOrder) {
				t.Fatalf("expected %d inspectors, got %d", len(tc.expectedOrder), len(got))
			}
			for i, id := range tc.expectedOrder {
				if got[i].ID != id {
					t.Errorf("expected %s at position %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	stored := &types.Inspector{ID: "ins-1", CompanyID: "ctr-1", Name: "Tanaka Ichiro"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		companyID   string
		setupMocks  func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:      "owner updates",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(stored, nil)
				mockStorage.EXPECT().UpdateInspector(gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(stored, nil)
			},
		},
		{
			name:      "another company is rejected",
			companyID: "ctr-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(stored, nil)
				mockSecurity.EXPECT().AccessDenied("ctr-2", "inspector ins-1")
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name:      "unknown inspector",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "write failure surfaces",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(stored, nil)
				mockStorage.EXPECT().UpdateInspector(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "inspectors.Service.Update").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			_, err := s.Update(context.Background(), tc.companyID, &types.Inspector{ID: stored.ID, Name: "Tanaka Ichiro"})

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

func TestService_Delete(t *testing.T) {
	stored := &types.Inspector{ID: "ins-1", CompanyID: "ctr-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "inspectors.Service.Delete").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetInspectorByID(gomock.Any(), stored.ID).Return(stored, nil)
	mockStorage.EXPECT().DeleteInspector(gomock.Any(), stored.ID).Return(nil)

	if err := s.Delete(context.Background(), "ctr-1", stored.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
