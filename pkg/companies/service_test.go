// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package companies -destination ./mock_companies.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package companies -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package companies -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package companies -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Register(t *testing.T) {
	company := &types.Company{ID: "mgmt-1", Name: "Meguro Estates", Type: types.CompanyTypeManagement}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateCompany(gomock.Any(), company).Return(company, nil)
			},
		},
		{
			name: "second registration conflicts",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateCompany(gomock.Any(), company).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
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
			mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "companies.Service.Register").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			created, err := s.Register(context.Background(), company)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != company.ID {
				t.Errorf("expected company %s, got %s", company.ID, created.ID)
			}
		})
	}
}

func TestService_VerifyPageLock(t *testing.T) {
	lockPassword := "hunter2"

	testCases := []struct {
		name       string
		password   string
		setupMocks func(*MockStorageInterface, *MockSecurityLoggerInterface)
		expectedOK bool
	}{
		{
			name:     "matching password verifies",
			password: "hunter2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(&types.Company{ID: "mgmt-1", PageLockPassword: &lockPassword}, nil)
			},
			expectedOK: true,
		},
		{
			name:     "wrong password is denied and audited",
			password: "hunter3",
			setupMocks: func(mockStorage *MockStorageInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(&types.Company{ID: "mgmt-1", PageLockPassword: &lockPassword}, nil)
				mockSecurity.EXPECT().AccessDenied("mgmt-1", "settings-page lock")
			},
			expectedOK: false,
		},
		{
			name:     "company without a lock never verifies",
			password: "",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(&types.Company{ID: "mgmt-1"}, nil)
			},
			expectedOK: false,
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

			mockTracer.EXPECT().Start(gomock.Any(), "companies.Service.VerifyPageLock").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSecurity)

			ok, err := s.VerifyPageLock(context.Background(), "mgmt-1", tc.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expectedOK {
				t.Errorf("expected %v, got %v", tc.expectedOK, ok)
			}
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	updated := &types.Company{ID: "mgmt-1", Name: "Meguro Estates KK"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "companies.Service.UpdateProfile").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().UpdateCompany(gomock.Any(), updated, []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(updated, nil)

	got, err := s.UpdateProfile(context.Background(), updated, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != updated.Name {
		t.Errorf("expected updated name %q, got %q", updated.Name, got.Name)
	}
}
