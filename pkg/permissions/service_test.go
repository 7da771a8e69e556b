// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_permissions.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package permissions -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Request(t *testing.T) {
	granter := &types.Company{ID: "mgmt-1", Name: "Meguro Estates", Type: types.CompanyTypeManagement}
	receiver := &types.Company{ID: "ctr-1", Name: "Ohta Fire Services", Type: types.CompanyTypeContractor}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), granter.ID).Return(granter, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), receiver.ID).Return(receiver, nil)
				mockStorage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.CompanyPermission) (*types.CompanyPermission, error) {
						if p.GranterCompanyName != granter.Name || p.ReceiverCompanyName != receiver.Name {
							t.Errorf("expected snapshotted names, got %q / %q", p.GranterCompanyName, p.ReceiverCompanyName)
						}
						if p.Approval {
							t.Error("expected new permission to start pending")
						}
						p.ID = "perm-1"
						return p, nil
					},
				)
				mockSecurity.EXPECT().PermissionChange("perm-1", "requested")
			},
			expectedErr: nil,
		},
		{
			name: "duplicate request surfaces conflict without a second row",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), granter.ID).Return(granter, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), receiver.ID).Return(receiver, nil)
				mockStorage.EXPECT().CreatePermission(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "contractor cannot grant",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), granter.ID).Return(receiver, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), receiver.ID).Return(receiver, nil)
			},
			expectedErr: ErrWrongCompanyType,
		},
		{
			name: "management cannot receive",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), granter.ID).Return(granter, nil)
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), receiver.ID).Return(granter, nil)
			},
			expectedErr: ErrWrongCompanyType,
		},
		{
			name: "granter lookup error",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), granter.ID).Return(nil, dbErr)
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

			mockTracer.EXPECT().Start(gomock.Any(), "permissions.Service.Request").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			p, err := s.Request(context.Background(), granter.ID, receiver.ID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if p != nil {
					t.Errorf("expected no permission, got %+v", p)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Approve(t *testing.T) {
	pending := &types.CompanyPermission{
		ID:                "perm-1",
		GranterCompanyID:  "mgmt-1",
		ReceiverCompanyID: "ctr-1",
		Approval:          false,
	}
	approved := &types.CompanyPermission{
		ID:                "perm-1",
		GranterCompanyID:  "mgmt-1",
		ReceiverCompanyID: "ctr-1",
		Approval:          true,
	}

	testCases := []struct {
		name        string
		companyID   string
		setupMocks  func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:      "granter approves",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), pending.ID).Return(pending, nil)
				mockStorage.EXPECT().SetPermissionApproval(gomock.Any(), pending.ID, true).Return(nil)
				mockSecurity.EXPECT().PermissionChange(pending.ID, "approved")
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), pending.ID).Return(approved, nil)
			},
			expectedErr: nil,
		},
		{
			name:      "receiver may not approve",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), pending.ID).Return(pending, nil)
				mockSecurity.EXPECT().AccessDenied("ctr-1", "permission perm-1")
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name:      "unknown permission",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), pending.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
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

			mockTracer.EXPECT().Start(gomock.Any(), "permissions.Service.Approve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			p, err := s.Approve(context.Background(), tc.companyID, pending.ID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if p == nil || !p.Approval {
				t.Errorf("expected approved permission, got %+v", p)
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	perm := &types.CompanyPermission{
		ID:                "perm-1",
		GranterCompanyID:  "mgmt-1",
		ReceiverCompanyID: "ctr-1",
		Approval:          true,
	}

	testCases := []struct {
		name        string
		companyID   string
		setupMocks  func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:      "granter revokes",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), perm.ID).Return(perm, nil)
				mockStorage.EXPECT().DeletePermission(gomock.Any(), perm.ID).Return(nil)
				mockSecurity.EXPECT().PermissionChange(perm.ID, "revoked")
			},
			expectedErr: nil,
		},
		{
			name:      "receiver revokes",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), perm.ID).Return(perm, nil)
				mockStorage.EXPECT().DeletePermission(gomock.Any(), perm.ID).Return(nil)
				mockSecurity.EXPECT().PermissionChange(perm.ID, "revoked")
			},
			expectedErr: nil,
		},
		{
			name:      "third party is rejected",
			companyID: "mgmt-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPermissionByID(gomock.Any(), perm.ID).Return(perm, nil)
				mockSecurity.EXPECT().AccessDenied("mgmt-2", "permission perm-1")
			},
			expectedErr: ErrNotAllowed,
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

			mockTracer.EXPECT().Start(gomock.Any(), "permissions.Service.Revoke").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			err := s.Revoke(context.Background(), tc.companyID, perm.ID)

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

func TestService_ListForCompany(t *testing.T) {
	perms := []*types.CompanyPermission{
		{ID: "p-1", GranterCompanyID: "mgmt-1", ReceiverCompanyID: "ctr-1", Approval: true},
		{ID: "p-2", GranterCompanyID: "mgmt-1", ReceiverCompanyID: "ctr-2", Approval: false},
		{ID: "p-3", GranterCompanyID: "mgmt-2", ReceiverCompanyID: "mgmt-1", Approval: false},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "permissions.Service.ListForCompany").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListPermissionsForCompany(gomock.Any(), "mgmt-1").Return(perms, nil)
	// name resolution is cached per call: each distinct company resolves once
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(&types.Company{ID: "mgmt-1", Name: "Meguro Estates"}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-1").Return(&types.Company{ID: "ctr-1", Name: "Ohta Fire Services"}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-2").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-2").Return(&types.Company{ID: "mgmt-2", Name: "Kita Holdings"}, nil)

	got, err := s.ListForCompany(context.Background(), "mgmt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Granted.Approved) != 1 || got.Granted.Approved[0].ID != "p-1" {
		t.Errorf("expected p-1 in granted approved, got %+v", got.Granted.Approved)
	}
	if len(got.Granted.Pending) != 1 || got.Granted.Pending[0].ID != "p-2" {
		t.Errorf("expected p-2 in granted pending, got %+v", got.Granted.Pending)
	}
	if len(got.Received.Pending) != 1 || got.Received.Pending[0].ID != "p-3" {
		t.Errorf("expected p-3 in received pending, got %+v", got.Received.Pending)
	}
	if len(got.Received.Approved) != 0 {
		t.Errorf("expected no received approved rows, got %+v", got.Received.Approved)
	}
	if got.Granted.Pending[0].ReceiverCompanyCurrentName != "" {
		t.Errorf("expected empty current name for deleted receiver, got %q", got.Granted.Pending[0].ReceiverCompanyCurrentName)
	}
	if got.Granted.Approved[0].ReceiverCompanyCurrentName != "Ohta Fire Services" {
		t.Errorf("expected resolved receiver name, got %q", got.Granted.Approved[0].ReceiverCompanyCurrentName)
	}
}

func TestPartition(t *testing.T) {
	views := []*PermissionView{
		{CompanyPermission: &types.CompanyPermission{ID: "p-1", GranterCompanyID: "a", ReceiverCompanyID: "b", Approval: true}},
		{CompanyPermission: &types.CompanyPermission{ID: "p-2", GranterCompanyID: "b", ReceiverCompanyID: "a", Approval: false}},
		{CompanyPermission: &types.CompanyPermission{ID: "p-3", GranterCompanyID: "c", ReceiverCompanyID: "d", Approval: true}},
	}

	got := Partition("a", views)

	if len(got.Granted.Approved) != 1 || got.Granted.Approved[0].ID != "p-1" {
		t.Errorf("expected p-1 granted approved, got %+v", got.Granted.Approved)
	}
	if len(got.Received.Pending) != 1 || got.Received.Pending[0].ID != "p-2" {
		t.Errorf("expected p-2 received pending, got %+v", got.Received.Pending)
	}
	// rows where the company is neither party are dropped
	total := len(got.Granted.Approved) + len(got.Granted.Pending) + len(got.Received.Approved) + len(got.Received.Pending)
	if total != 2 {
		t.Errorf("expected 2 bucketed rows, got %d", total)
	}
}

func TestService_ListApprovedContractors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "permissions.Service.ListApprovedContractors").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), "mgmt-1").Return([]string{"ctr-1", "ctr-gone", "ctr-2"}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-1").Return(&types.Company{ID: "ctr-1"}, nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-gone").Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-2").Return(&types.Company{ID: "ctr-2"}, nil)

	got, err := s.ListApprovedContractors(context.Background(), "mgmt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "ctr-1" || got[1].ID != "ctr-2" {
		t.Errorf("expected contractors ctr-1 and ctr-2, got %+v", got)
	}
}
