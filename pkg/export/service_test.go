// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package export -destination ./mock_export.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package export -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package export -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package export -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Export(t *testing.T) {
	record := &types.InspectionRecord{ID: "record-1", ShutterID: "shutter-1", LeadInspectorID: "inspector-1"}
	shutter := &types.Shutter{ID: "shutter-1", SiteID: "site-1"}
	site := &types.Site{ID: "site-1", CompanyID: "mgmt-1"}
	lead := &types.Inspector{ID: "inspector-1", Name: "Tanaka Ichiro"}
	results := []*types.InspectionResult{{ID: "res-1", InspectionName: "Obstructions around the shutter opening"}}

	expectGraph := func(mockStorage *MockStorageInterface) {
		mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), record.ID).Return(record, nil)
		mockStorage.EXPECT().GetShutterByID(gomock.Any(), shutter.ID).Return(shutter, nil)
		mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
		mockStorage.EXPECT().ListInspectionResultsByRecord(gomock.Any(), record.ID).Return(results, nil)
		mockStorage.EXPECT().GetInspectorByID(gomock.Any(), lead.ID).Return(lead, nil)
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockRendererInterface)
		expectedURL string
		expectedErr error
	}{
		{
			name: "returns the renderer download url",
			setupMocks: func(mockStorage *MockStorageInterface, mockRenderer *MockRendererInterface) {
				expectGraph(mockStorage)
				mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *Payload) (string, error) {
						if p.Sheet1.InspectionRecord.ID != record.ID {
							t.Errorf("expected record %s in payload, got %s", record.ID, p.Sheet1.InspectionRecord.ID)
						}
						if p.Sheet2.LeadInspector.Name != lead.Name {
							t.Errorf("expected lead inspector in sheet2, got %+v", p.Sheet2.LeadInspector)
						}
						if p.Sheet2.SubInspector != nil {
							t.Errorf("expected no sub inspector, got %+v", p.Sheet2.SubInspector)
						}
						return "https://renderer.example.com/reports/abc.xlsx", nil
					},
				)
			},
			expectedURL: "https://renderer.example.com/reports/abc.xlsx",
		},
		{
			name: "renderer failure is opaque to the caller",
			setupMocks: func(mockStorage *MockStorageInterface, mockRenderer *MockRendererInterface) {
				expectGraph(mockStorage)
				mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return("", errors.New("upstream returned 500"))
			},
			expectedErr: ErrExportFailed,
		},
		{
			name: "missing record passes through as not found",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockRendererInterface) {
				mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), record.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockRenderer := NewMockRendererInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			s := NewService(mockStorage, mockRenderer, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "export.Service.Export").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockRenderer)

			url, err := s.Export(context.Background(), "mgmt-1", record.ID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if url != tc.expectedURL {
				t.Errorf("expected url %q, got %q", tc.expectedURL, url)
			}
		})
	}
}

func TestService_Export_DeniesStrangers(t *testing.T) {
	record := &types.InspectionRecord{ID: "record-1", ShutterID: "shutter-1"}
	shutter := &types.Shutter{ID: "shutter-1", SiteID: "site-1"}
	site := &types.Site{ID: "site-1", CompanyID: "mgmt-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockRenderer := NewMockRendererInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)
	mockLogger.EXPECT().Security().Return(mockSecurity)

	s := NewService(mockStorage, mockRenderer, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "export.Service.Export").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetInspectionRecordByID(gomock.Any(), record.ID).Return(record, nil)
	mockStorage.EXPECT().GetShutterByID(gomock.Any(), shutter.ID).Return(shutter, nil)
	mockStorage.EXPECT().GetSiteByID(gomock.Any(), site.ID).Return(site, nil)
	mockStorage.EXPECT().ListSiteCompanies(gomock.Any(), site.ID).Return([]*types.SiteCompany{
		{SiteID: site.ID, CompanyID: "mgmt-1"},
	}, nil)
	mockSecurity.EXPECT().AccessDenied("stranger", "site site-1")

	_, err := s.Export(context.Background(), "stranger", record.ID)
	if !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed, got %v", err)
	}
}

func TestBuildPayload(t *testing.T) {
	confirmation := "1995-03-20"
	badDate := "not-a-date"
	site := &types.Site{
		ID:                          "site-1",
		ConfirmationCertificateDate: &confirmation,
		InspectionCertificateDate:   &badDate,
	}
	record := &types.InspectionRecord{ID: "record-1"}
	shutter := &types.Shutter{ID: "shutter-1"}
	now := time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

	p := BuildPayload(record, nil, shutter, site, &types.Inspector{ID: "inspector-1"}, nil, now)

	if p.Sheet2.Date.TodayEra != "Reiwa" || p.Sheet2.Date.TodayYear != 7 {
		t.Errorf("expected Reiwa 7, got %s %d", p.Sheet2.Date.TodayEra, p.Sheet2.Date.TodayYear)
	}
	if p.Sheet2.Date.TodayMonth != 11 || p.Sheet2.Date.TodayDay != 4 {
		t.Errorf("expected 11/4, got %d/%d", p.Sheet2.Date.TodayMonth, p.Sheet2.Date.TodayDay)
	}

	s2 := p.Sheet2.Site
	if s2.ConfirmationCertificateEra == nil || *s2.ConfirmationCertificateEra != "Heisei" {
		t.Errorf("expected Heisei confirmation era, got %v", s2.ConfirmationCertificateEra)
	}
	if s2.ConfirmationCertificateYear == nil || *s2.ConfirmationCertificateYear != 7 {
		t.Errorf("expected Heisei year 7, got %v", s2.ConfirmationCertificateYear)
	}
	if s2.ConfirmationCertificateMonth == nil || *s2.ConfirmationCertificateMonth != 3 {
		t.Errorf("expected month 3, got %v", s2.ConfirmationCertificateMonth)
	}

	// malformed date leaves all four fields blank
	if s2.InspectionCertificateEra != nil || s2.InspectionCertificateYear != nil ||
		s2.InspectionCertificateMonth != nil || s2.InspectionCertificateDay != nil {
		t.Error("expected nil era fields for malformed inspection certificate date")
	}

	if p.Sheet1.Shutter.ID != shutter.ID {
		t.Errorf("expected shutter in sheet1, got %+v", p.Sheet1.Shutter)
	}
}

func TestBuildPayload_NilCertificateDates(t *testing.T) {
	p := BuildPayload(
		&types.InspectionRecord{ID: "record-1"},
		nil,
		&types.Shutter{ID: "shutter-1"},
		&types.Site{ID: "site-1"},
		&types.Inspector{ID: "inspector-1"},
		nil,
		time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC),
	)

	s2 := p.Sheet2.Site
	if s2.ConfirmationCertificateEra != nil || s2.InspectionCertificateEra != nil {
		t.Error("expected nil era fields for unset certificate dates")
	}
	// first day of Reiwa
	if p.Sheet2.Date.TodayEra != "Reiwa" || p.Sheet2.Date.TodayYear != 1 {
		t.Errorf("expected Reiwa 1, got %s %d", p.Sheet2.Date.TodayEra, p.Sheet2.Date.TodayYear)
	}
}
