// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"bytes"
	"context"
	"encoding/json"
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

func TestAPI_Register(t *testing.T) {
	validBody := map[string]interface{}{
		"name":                "Meguro Estates",
		"representative_name": "Yamada Taro",
		"type":                "management",
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
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.Company) (*types.Company, error) {
						if c.ID != "mgmt-1" {
							t.Errorf("expected id from identity header, got %s", c.ID)
						}
						return c, nil
					},
				)
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
			name:      "invalid company type",
			companyID: "mgmt-1",
			requestBody: map[string]interface{}{
				"name":                "Meguro Estates",
				"representative_name": "Yamada Taro",
				"type":                "landlord",
			},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "already registered",
			companyID:   "mgmt-1",
			requestBody: validBody,
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedStatus: http.StatusConflict,
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

			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("failed to marshal request: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/companies", bytes.NewBuffer(body))
			req = req.WithContext(identity.ContextWithCompanyID(req.Context(), tt.companyID))
			w := httptest.NewRecorder()

			mockTracer.EXPECT().Start(gomock.Any(), "companies.API.register").
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

func TestAPI_Update(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "partial update touches only submitted paths",
			requestBody: map[string]interface{}{"name": "Meguro Estates KK"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), []string{"name"}).Return(
					&types.Company{ID: "mgmt-1", Name: "Meguro Estates KK"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "lock settings update",
			requestBody: map[string]interface{}{"can_access_setting_page": true, "page_lock_password": "hunter2"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), []string{"can_access_setting_page", "page_lock_password"}).Return(
					&types.Company{ID: "mgmt-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty update is rejected",
			requestBody:    map[string]interface{}{},
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

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPatch, "/api/v0/companies/me", bytes.NewBuffer(body))
			req = req.WithContext(identity.ContextWithCompanyID(req.Context(), "mgmt-1"))
			w := httptest.NewRecorder()

			mockTracer.EXPECT().Start(gomock.Any(), "companies.API.update").
				Return(req.Context(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockService)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			if w.Result().StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Result().StatusCode)
			}
		})
	}
}

func TestAPI_VerifyLock(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      map[string]interface{}
		setupMocks       func(*MockServiceInterface)
		expectedStatus   int
		expectedVerified bool
	}{
		{
			name:        "verified",
			requestBody: map[string]interface{}{"password": "hunter2"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().VerifyPageLock(gomock.Any(), "mgmt-1", "hunter2").Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedVerified: true,
		},
		{
			name:        "denied",
			requestBody: map[string]interface{}{"password": "wrong"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().VerifyPageLock(gomock.Any(), "mgmt-1", "wrong").Return(false, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedVerified: false,
		},
		{
			name:           "missing password",
			requestBody:    map[string]interface{}{},
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

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v0/companies/me/verify-lock", bytes.NewBuffer(body))
			req = req.WithContext(identity.ContextWithCompanyID(req.Context(), "mgmt-1"))
			w := httptest.NewRecorder()

			mockTracer.EXPECT().Start(gomock.Any(), "companies.API.verifyLock").
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
				var resp verifyLockResponse
				if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Verified != tt.expectedVerified {
					t.Errorf("expected verified=%v, got %v", tt.expectedVerified, resp.Verified)
				}
			}
		})
	}
}
