// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package inspections

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shutterdesk/inspection-service/internal/identity"
	"github.com/shutterdesk/inspection-service/internal/storage"
	"github.com/shutterdesk/inspection-service/internal/types"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func TestAPI_Create(t *testing.T) {
	validBody := map[string]interface{}{
		"shutter_id":        "shutter-1",
		"inspection_date":   "2025-11-04",
		"lead_inspector_id": "inspector-1",
	}

	tests := []struct {
		name           string
		companyID      string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			companyID:   "mgmt-1",
			requestBody: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "mgmt-1", gomock.Any(), gomock.Any()).Return(
					&RecordWithResults{Record: &types.InspectionRecord{ID: "record-1"}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing identity",
			companyID:      "",
			requestBody:    validBody,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			companyID:      "mgmt-1",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "malformed inspection date",
			companyID: "mgmt-1",
			requestBody: map[string]interface{}{
				"shutter_id":        "shutter-1",
				"inspection_date":   "04/11/2025",
				"lead_inspector_id": "inspector-1",
			},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate date for the shutter",
			companyID:   "mgmt-1",
			requestBody: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "mgmt-1", gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "no site access",
			companyID:   "stranger",
			requestBody: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "stranger", gomock.Any(), gomock.Any()).Return(nil, ErrNotAllowed)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "service error",
			companyID:   "mgmt-1",
			requestBody: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "mgmt-1", gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/records", bytes.NewBuffer(body))
			req = req.WithContext(identity.ContextWithCompanyID(req.Context(), tt.companyID))
			w := httptest.NewRecorder()

			mockTracer.EXPECT().Start(gomock.Any(), "inspections.API.create").
				Return(req.Context(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_ListByShutter(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedLen    int
	}{
		{
			name:   "success",
			target: "/api/v0/records?shutter_id=shutter-1",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListByShutter(gomock.Any(), "mgmt-1", "shutter-1").Return(
					[]*types.InspectionRecord{{ID: "record-1"}, {ID: "record-2"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "nil service result renders as empty array",
			target: "/api/v0/records?shutter_id=shutter-1",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().ListByShutter(gomock.Any(), "mgmt-1", "shutter-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "missing shutter_id",
			target:         "/api/v0/records",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(identity.ContextWithCompanyID(req.Context(), "mgmt-1"))
			w := httptest.NewRecorder()

			mockTracer.EXPECT().Start(gomock.Any(), "inspections.API.listByShutter").
				Return(req.Context(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedStatus == http.StatusOK {
				var records []*types.InspectionRecord
				if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(records) != tt.expectedLen {
					t.Errorf("expected %d records, got %d", tt.expectedLen, len(records))
				}
			}
		})
	}
}

func TestAPI_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/records/record-1", nil)
	req = req.WithContext(identity.ContextWithCompanyID(req.Context(), "mgmt-1"))
	w := httptest.NewRecorder()

	mockTracer.EXPECT().Start(gomock.Any(), "inspections.API.delete").
		Return(req.Context(), trace.SpanFromContext(context.Background()))
	mockService.EXPECT().Delete(gomock.Any(), "mgmt-1", "record-1").Return(nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Result().StatusCode)
	}
}
