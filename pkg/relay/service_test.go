// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package relay

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ketan14/GharSwitch/internal/kinds"
	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/pkg/authentication"
	"github.com/ketan14/GharSwitch/pkg/authorization"
)

//go:generate mockgen -build_flags=--mod=mod -package relay -destination ./mock_interfaces.go -source=./interfaces.go

func newService(gate authorization.GateInterface, tree TreeInterface) *Service {
	return NewService(gate, tree, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func testPrincipal() *authentication.Principal {
	return &authentication.Principal{UserID: "user-1", Role: types.RoleUser, TenantID: "tenant-1"}
}

func TestIssueCommand_QueuesPendingEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := authorization.NewMockGateInterface(ctrl)
	tree := NewMockTreeInterface(ctrl)

	gate.EXPECT().CheckCommand(gomock.Any(), testPrincipal(), "device-1").
		Return(&types.Device{ID: "device-1", TenantID: "tenant-1", Channels: 4, Active: true}, nil)

	var queued *types.PendingCommand
	tree.EXPECT().PutPending(gomock.Any(), "tenant-1", "device-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, cmd *types.PendingCommand) error {
			queued = cmd
			return nil
		})

	before := time.Now().UnixMilli()
	commandID, err := newService(gate, tree).IssueCommand(context.Background(), testPrincipal(), "device-1", "s2", true)
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	require.NotNil(t, queued)
	assert.True(t, queued.Action)
	assert.Equal(t, "s2", queued.Target)
	assert.Equal(t, "user-1", queued.IssuedBy)
	assert.GreaterOrEqual(t, queued.Timestamp, before)
	assert.LessOrEqual(t, queued.Timestamp, after)

	// Command ids are time-prefixed with a random suffix.
	prefix, suffix, found := strings.Cut(commandID, "-")
	require.True(t, found)
	ms, err := strconv.ParseInt(prefix, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
	assert.NotEmpty(t, suffix)
}

func TestIssueCommand_GateDenialShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := authorization.NewMockGateInterface(ctrl)
	tree := NewMockTreeInterface(ctrl)

	gate.EXPECT().CheckCommand(gomock.Any(), gomock.Any(), "device-1").
		Return(nil, kinds.New(kinds.PermissionDenied, "caller is not assigned to this device"))

	_, err := newService(gate, tree).IssueCommand(context.Background(), testPrincipal(), "device-1", "s1", true)

	assert.Equal(t, kinds.PermissionDenied, kinds.KindOf(err))
}

func TestIssueCommand_InvalidTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := authorization.NewMockGateInterface(ctrl)
	tree := NewMockTreeInterface(ctrl)

	gate.EXPECT().CheckCommand(gomock.Any(), gomock.Any(), "device-1").
		Return(&types.Device{ID: "device-1", Channels: 2, Active: true}, nil).Times(2)

	svc := newService(gate, tree)

	// s3 does not exist on a 2-channel device; s2 does.
	_, err := svc.IssueCommand(context.Background(), testPrincipal(), "device-1", "s3", true)
	assert.Equal(t, kinds.InvalidArgument, kinds.KindOf(err))

	tree.EXPECT().PutPending(gomock.Any(), "tenant-1", "device-1", gomock.Any(), gomock.Any()).Return(nil)
	_, err = svc.IssueCommand(context.Background(), testPrincipal(), "device-1", "s2", false)
	assert.NoError(t, err)
}

// Two issues for the same channel produce two independent pending entries
// with distinct ids; nothing deduplicates or supersedes.
func TestIssueCommand_NoDeduplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := authorization.NewMockGateInterface(ctrl)
	tree := NewMockTreeInterface(ctrl)

	gate.EXPECT().CheckCommand(gomock.Any(), gomock.Any(), "device-1").
		Return(&types.Device{ID: "device-1", Channels: 4, Active: true}, nil).Times(2)

	ids := make(map[string]struct{})
	tree.EXPECT().PutPending(gomock.Any(), "tenant-1", "device-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, commandID string, _ *types.PendingCommand) error {
			ids[commandID] = struct{}{}
			return nil
		}).Times(2)

	svc := newService(gate, tree)

	first, err := svc.IssueCommand(context.Background(), testPrincipal(), "device-1", "s1", true)
	require.NoError(t, err)
	second, err := svc.IssueCommand(context.Background(), testPrincipal(), "device-1", "s1", true)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, ids, 2)
}

func TestIssueCommand_QueueWriteFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := authorization.NewMockGateInterface(ctrl)
	tree := NewMockTreeInterface(ctrl)

	gate.EXPECT().CheckCommand(gomock.Any(), gomock.Any(), "device-1").
		Return(&types.Device{ID: "device-1", Channels: 4, Active: true}, nil)
	tree.EXPECT().PutPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := newService(gate, tree).IssueCommand(context.Background(), testPrincipal(), "device-1", "s1", true)

	assert.Equal(t, kinds.Internal, kinds.KindOf(err))
}
