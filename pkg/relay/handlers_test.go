// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
)

func newTestRouter(service ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(service, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func authedRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v0/commands", strings.NewReader(body))
	principal := &authentication.Principal{UserID: "user-1", Role: types.RoleUser, TenantID: "tenant-1"}
	return req.WithContext(authentication.WithPrincipal(req.Context(), principal))
}

func TestHandleIssueCommand(t *testing.T) {
	tests := []struct {
		name           string
		request        func() *http.Request
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "No principal - unauthenticated",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/v0/commands", strings.NewReader(`{}`))
			},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "unauthenticated",
		},
		{
			name:           "Malformed body",
			request:        func() *http.Request { return authedRequest(`{not json`) },
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid-argument",
		},
		{
			name:           "Missing action field",
			request:        func() *http.Request { return authedRequest(`{"device_id":"device-1","target":"s1"}`) },
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid-argument",
		},
		{
			name:    "Denied by gate",
			request: func() *http.Request { return authedRequest(`{"device_id":"device-1","target":"s1","action":true}`) },
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueCommand(gomock.Any(), gomock.Any(), "device-1", "s1", true).
					Return("", kinds.New(kinds.PermissionDenied, "caller is not assigned to this device"))
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  "permission-denied",
		},
		{
			name:    "Success",
			request: func() *http.Request { return authedRequest(`{"device_id":"device-1","target":"s1","action":false}`) },
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueCommand(gomock.Any(), gomock.Any(), "device-1", "s1", false).
					Return("1756400000000-abc", nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			rr := httptest.NewRecorder()
			newTestRouter(mockService).ServeHTTP(rr, tt.request())

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp IssueCommandResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "1756400000000-abc", resp.CommandID)
		})
	}
}
