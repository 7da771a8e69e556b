// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package sites

import (
	"context"
	"errors"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package sites -destination ./mock_sites.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sites -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sites -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package sites -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func passthroughTx(mockTx *MockTxRunnerInterface) {
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_CreateSite(t *testing.T) {
	owner := &types.Company{ID: "mgmt-1", Name: "Meguro Estates", Type: types.CompanyTypeManagement}
	site := &types.Site{CompanyID: owner.ID, Name: "Meguro Dai-ichi Building"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface)
		expectedErr error
	}{
		{
			name: "attaches owner and contractor atomically",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), owner.ID).Return(owner, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), owner.ID).Return([]string{"ctr-1", "ctr-2"}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().CreateSite(gomock.Any(), site).DoAndReturn(
					func(_ context.Context, s *types.Site) (*types.Site, error) {
						created := *s
						created.ID = "site-1"
						return &created, nil
					},
				)
				mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), "site-1", owner.ID).Return(&types.SiteCompany{}, nil)
				mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), "site-1", "ctr-1").Return(&types.SiteCompany{}, nil)
			},
		},
		{
			name: "contractor without approval is rejected before any write",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), owner.ID).Return(owner, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), owner.ID).Return([]string{"ctr-2"}, nil)
			},
			expectedErr: ErrContractorNotApproved,
		},
		{
			name: "contractor cannot own sites",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), owner.ID).Return(&types.Company{ID: owner.ID, Type: types.CompanyTypeContractor}, nil)
			},
			expectedErr: ErrNotAllowed,
		},
		{
			name: "join row failure aborts the site insert",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), owner.ID).Return(owner, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), owner.ID).Return([]string{"ctr-1"}, nil)
				passthroughTx(mockTx)
				mockStorage.EXPECT().CreateSite(gomock.Any(), site).DoAndReturn(
					func(_ context.Context, s *types.Site) (*types.Site, error) {
						created := *s
						created.ID = "site-1"
						return &created, nil
					},
				)
				mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), "site-1", owner.ID).Return(&types.SiteCompany{}, nil)
				mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), "site-1", "ctr-1").Return(nil, dbErr)
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

			mockTracer.EXPECT().Start(gomock.Any(), "sites.Service.CreateSite").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx)

			created, err := s.CreateSite(context.Background(), site, "ctr-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				if created != nil {
					t.Errorf("expected no site on failure, got %+v", created)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created == nil || created.ID != "site-1" {
				t.Errorf("expected created site, got %+v", created)
			}
		})
	}
}

func TestService_SwapContractor(t *testing.T) {
	site := &types.Site{ID: "site-1", CompanyID: "mgmt-1"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		companyID   string
		setupMocks  func(*MockStorageInterface, *MockTxRunnerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:      "detach and attach happen in one transaction",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), "mgmt-1").Return([]string{"ctr-new"}, nil)
				passthroughTx(mockTx)
				gomock.InOrder(
					mockStorage.EXPECT().DeleteSiteCompany(gomock.Any(), site.ID, "ctr-old").Return(nil),
					mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), site.ID, "ctr-new").Return(&types.SiteCompany{}, nil),
				)
			},
		},
		{
			name:      "attach failure rolls the detach back",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockTx *MockTxRunnerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), "mgmt-1").Return([]string{"ctr-new"}, nil)
				passthroughTx(mockTx)
				gomock.InOrder(
					mockStorage.EXPECT().DeleteSiteCompany(gomock.Any(), site.ID, "ctr-old").Return(nil),
					mockStorage.EXPECT().CreateSiteCompany(gomock.Any(), site.ID, "ctr-new").Return(nil, dbErr),
				)
			},
			expectedErr: dbErr,
		},
		{
			name:      "new contractor must be approved",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockTxRunnerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
				mockStorage.EXPECT().ListApprovedReceiverIDs(gomock.Any(), "mgmt-1").Return([]string{}, nil)
			},
			expectedErr: ErrContractorNotApproved,
		},
		{
			name:      "only the owner swaps",
			companyID: "mgmt-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockTxRunnerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
				mockSecurity.EXPECT().AccessDenied("mgmt-2", "site site-1")
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

			s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "sites.Service.SwapContractor").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockTx, mockSecurity)

			err := s.SwapContractor(context.Background(), tc.companyID, site.ID, "ctr-old", "ctr-new")

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

func TestService_ListSitesForCompany(t *testing.T) {
	ownedSites := []*types.Site{
		{ID: "site-1", CompanyID: "mgmt-1"},
		{ID: "site-2", CompanyID: "mgmt-1"},
	}

	testCases := []struct {
		name          string
		companyID     string
		setupMocks    func(*MockStorageInterface)
		expectedCount int
	}{
		{
			name:      "management company lists owned sites",
			companyID: "mgmt-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "mgmt-1").Return(&types.Company{ID: "mgmt-1", Type: types.CompanyTypeManagement}, nil)
				mockStorage.EXPECT().ListSitesByOwner(gomock.Any(), "mgmt-1").Return(ownedSites, nil)
			},
			expectedCount: 2,
		},
		{
			name:      "contractor fans out through attachments",
			companyID: "ctr-1",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-1").Return(&types.Company{ID: "ctr-1", Type: types.CompanyTypeContractor}, nil)
				mockStorage.EXPECT().ListSiteIDsByCompany(gomock.Any(), "ctr-1").Return([]string{"site-1"}, nil)
				mockStorage.EXPECT().ListSitesByIDs(gomock.Any(), []string{"site-1"}).Return(ownedSites[:1], nil)
			},
			expectedCount: 1,
		},
		{
			name:      "contractor with no attachments gets an empty list",
			companyID: "ctr-2",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetCompanyByID(gomock.Any(), "ctr-2").Return(&types.Company{ID: "ctr-2", Type: types.CompanyTypeContractor}, nil)
				mockStorage.EXPECT().ListSiteIDsByCompany(gomock.Any(), "ctr-2").Return([]string{}, nil)
				mockStorage.EXPECT().ListSitesByIDs(gomock.Any(), []string{}).Return([]*types.Site{}, nil)
			},
			expectedCount: 0,
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

			mockTracer.EXPECT().Start(gomock.Any(), "sites.Service.ListSitesForCompany").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			got, err := s.ListSitesForCompany(context.Background(), tc.companyID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.expectedCount {
				t.Errorf("expected %d sites, got %d", tc.expectedCount, len(got))
			}
		})
	}
}

func TestService_CreateShutter(t *testing.T) {
	site := &types.Site{ID: "site-1", CompanyID: "mgmt-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTx, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "sites.Service.CreateShutter").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
	// contractor registers the shutter, attached to the site
	mockStorage.EXPECT().ListSiteCompanies(gomock.Any(), site.ID).Return([]*types.SiteCompany{
		{SiteID: site.ID, CompanyID: "mgmt-1"},
		{SiteID: site.ID, CompanyID: "ctr-1"},
	}, nil)
	mockStorage.EXPECT().CreateShutter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sh *types.Shutter) (*types.Shutter, error) {
			if sh.CompanyID != "mgmt-1" {
				t.Errorf("expected shutter owned by site owner, got %s", sh.CompanyID)
			}
			return sh, nil
		},
	)

	_, err := s.CreateShutter(context.Background(), "ctr-1", &types.Shutter{SiteID: site.ID, Name: "East stairwell shutter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
