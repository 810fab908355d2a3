// Copyright 2026 GharSwitch Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketan14/GharSwitch/internal/logging"
	"github.com/ketan14/GharSwitch/internal/monitoring"
	"github.com/ketan14/GharSwitch/internal/tracing"
	"github.com/ketan14/GharSwitch/internal/types"
	"github.com/ketan14/GharSwitch/migrations"
)

// queryRecorder satisfies the squirrel runner interfaces and captures every
// rendered statement instead of executing it, so tests can check the SQL this
// package generates against the embedded migration schema without a database.
type queryRecorder struct {
	queries []string
}

type recordedResult struct{}

func (recordedResult) LastInsertId() (int64, error) { return 0, nil }
func (recordedResult) RowsAffected() (int64, error) { return 1, nil }

type emptyRow struct{}

func (emptyRow) Scan(...interface{}) error { return sql.ErrNoRows }

func (r *queryRecorder) Exec(query string, _ ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return recordedResult{}, nil
}

func (r *queryRecorder) Query(query string, _ ...interface{}) (*sql.Rows, error) {
	r.queries = append(r.queries, query)
	return nil, sql.ErrNoRows
}

func (r *queryRecorder) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return recordedResult{}, nil
}

func (r *queryRecorder) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	r.queries = append(r.queries, query)
	return nil, sql.ErrNoRows
}

func (r *queryRecorder) QueryRowContext(_ context.Context, query string, _ ...interface{}) sq.RowScanner {
	r.queries = append(r.queries, query)
	return emptyRow{}
}

type recordingDBClient struct {
	rec *queryRecorder
}

func (c *recordingDBClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.rec)
}

func (c *recordingDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *recordingDBClient) Close() {}

func newRecordingStorage() (*Storage, *queryRecorder) {
	rec := &queryRecorder{}
	s := NewStorage(&recordingDBClient{rec: rec}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, rec
}

var (
	createTableRe = regexp.MustCompile(`^CREATE TABLE ([a-z_]+) \($`)
	identifierRe  = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	insertRe      = regexp.MustCompile(`^INSERT INTO ([a-z_]+) \(([^)]+)\)`)
	updateRe      = regexp.MustCompile(`^UPDATE ([a-z_]+) SET `)
	deleteRe      = regexp.MustCompile(`^DELETE FROM ([a-z_]+)`)
	fromRe        = regexp.MustCompile(` FROM ([a-z_]+)`)
	setColumnRe   = regexp.MustCompile(`(?:SET |, )([a-z_]+) = `)
	condColumnRe  = regexp.MustCompile(`([a-z_][a-z0-9_]*) (?:=|IS|IN) `)
	orderByRe     = regexp.MustCompile(`ORDER BY ([a-z_]+)`)
)

// migrationColumns parses the embedded goose files into table -> column sets.
func migrationColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()

	tables := map[string]map[string]bool{}
	entries, err := migrations.EmbedMigrations.ReadDir(".")
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		raw, err := migrations.EmbedMigrations.ReadFile(entry.Name())
		require.NoError(t, err)

		var current map[string]bool
		for _, line := range strings.Split(string(raw), "\n") {
			trimmed := strings.TrimRight(strings.TrimSpace(line), ",")
			if m := createTableRe.FindStringSubmatch(trimmed); m != nil {
				current = map[string]bool{}
				tables[m[1]] = current
				continue
			}
			if current == nil {
				continue
			}
			if strings.HasPrefix(trimmed, ");") {
				current = nil
				continue
			}
			fields := strings.Fields(trimmed)
			if len(fields) < 2 {
				continue
			}
			switch fields[0] {
			case "UNIQUE", "PRIMARY", "FOREIGN", "CHECK", "CONSTRAINT":
				continue
			}
			if identifierRe.MatchString(fields[0]) {
				current[fields[0]] = true
			}
		}
	}

	return tables
}

// referencedColumns extracts the table and the column names a rendered
// statement filters, sets, inserts, or orders by. Select lists are included
// where they are plain identifiers; expressions are skipped. Joined queries
// alias their columns, so only the base table is returned for those.
func referencedColumns(query string) (string, []string) {
	switch {
	case strings.HasPrefix(query, "INSERT INTO "):
		m := insertRe.FindStringSubmatch(query)
		var cols []string
		for _, c := range strings.Split(m[2], ",") {
			cols = append(cols, strings.TrimSpace(c))
		}
		return m[1], cols
	case strings.HasPrefix(query, "UPDATE "):
		m := updateRe.FindStringSubmatch(query)
		var cols []string
		for _, sm := range setColumnRe.FindAllStringSubmatch(query, -1) {
			cols = append(cols, sm[1])
		}
		return m[1], append(cols, whereColumns(query)...)
	case strings.HasPrefix(query, "DELETE FROM "):
		m := deleteRe.FindStringSubmatch(query)
		return m[1], whereColumns(query)
	default:
		m := fromRe.FindStringSubmatch(query)
		if m == nil {
			return "", nil
		}
		if strings.Contains(query, " JOIN ") {
			return m[1], nil
		}
		cols := selectListColumns(query)
		cols = append(cols, whereColumns(query)...)
		if om := orderByRe.FindStringSubmatch(query); om != nil {
			cols = append(cols, om[1])
		}
		return m[1], cols
	}
}

func whereColumns(query string) []string {
	idx := strings.Index(query, " WHERE ")
	if idx < 0 {
		return nil
	}
	clause := strings.TrimSuffix(query[idx+len(" WHERE "):], " FOR UPDATE")
	var cols []string
	for _, m := range condColumnRe.FindAllStringSubmatch(clause, -1) {
		cols = append(cols, m[1])
	}
	return cols
}

func selectListColumns(query string) []string {
	end := strings.Index(query, " FROM ")
	if !strings.HasPrefix(query, "SELECT ") || end < 0 {
		return nil
	}
	var cols []string
	for _, entry := range strings.Split(query[len("SELECT "):end], ", ") {
		if identifierRe.MatchString(entry) {
			cols = append(cols, entry)
		}
	}
	return cols
}

// TestQueriesAgreeWithMigrationSchema renders every statement this package
// can issue and checks each referenced table and column against the embedded
// migration DDL. The service suites all mock StorageInterface, so without
// this check a query naming a column the schema never declares would only
// surface in production.
func TestQueriesAgreeWithMigrationSchema(t *testing.T) {
	s, rec := newRecordingStorage()
	ctx := context.Background()

	_, _ = s.CreateTenant(ctx, &types.Tenant{Quota: types.QuotaForTier(types.TierBasic)})
	_, _ = s.GetTenantByID(ctx, "tenant-1")
	_, _ = s.LockTenantByID(ctx, "tenant-1")
	_, _ = s.ListTenants(ctx)
	_ = s.SetTenantStatus(ctx, "tenant-1", false, "unpaid")
	_, _ = s.AddMember(ctx, "tenant-1", "user-1", types.RoleUser)
	_, _ = s.GetMembership(ctx, "tenant-1", "user-1")
	_, _ = s.ListMembersByTenantID(ctx, "tenant-1")
	_, _ = s.CountMembers(ctx, "tenant-1")
	_ = s.UpdateMemberRole(ctx, "tenant-1", "user-1", types.RoleAdmin)
	_, _ = s.GetPlatformSettings(ctx)
	_ = s.SetMaintenanceMode(ctx, true)
	_ = s.CreateGlobalDevice(ctx, &types.GlobalDevice{ID: "dev-1"})
	_, _ = s.GetGlobalDevice(ctx, "dev-1")
	_, _ = s.ListGlobalDevices(ctx)
	_ = s.ClaimGlobalDevice(ctx, "dev-1", "tenant-1")
	_ = s.SetGlobalDeviceStatus(ctx, "dev-1", true)
	_, _ = s.CreateDevice(ctx, &types.Device{ID: "dev-1", TenantID: "tenant-1"})
	_, _ = s.GetDevice(ctx, "tenant-1", "dev-1")
	_, _ = s.ListDevicesByTenant(ctx, "tenant-1")
	_, _ = s.CountDevices(ctx, "tenant-1")
	_ = s.UpdateDevicePresence(ctx, "tenant-1", "dev-1", types.StatusOnline, time.Now())
	_ = s.AddAssignment(ctx, "tenant-1", "dev-1", "user-1")
	_ = s.RemoveAssignment(ctx, "tenant-1", "dev-1", "user-1")
	_, _ = s.GetDeviceGroup(ctx, "tenant-1", "group-1")
	_, _, _ = s.SumAssignedChannels(ctx, "tenant-1", "user-1")
	_ = s.UpsertUserSummary(ctx, &types.UserSummary{UserID: "user-1"})
	_, _ = s.GetUserSummary(ctx, "user-1")

	require.NotEmpty(t, rec.queries)

	tables := migrationColumns(t)
	require.NotEmpty(t, tables)

	for _, query := range rec.queries {
		table, columns := referencedColumns(query)
		require.NotEmpty(t, table, "could not classify query: %s", query)

		declared, ok := tables[table]
		require.True(t, ok, "query references table %q absent from migrations: %s", table, query)
		for _, column := range columns {
			assert.True(t, declared[column],
				"query references column %s.%s absent from migrations: %s", table, column, query)
		}
	}
}

// The maintenance flag heads every command authorization, so the settings
// row filter is pinned exactly.
func TestPlatformSettingsFilterOnSingletonRow(t *testing.T) {
	s, rec := newRecordingStorage()
	ctx := context.Background()

	_, err := s.GetPlatformSettings(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SetMaintenanceMode(ctx, true))

	require.Len(t, rec.queries, 2)
	assert.Equal(t,
		"SELECT maintenance_mode, updated_at FROM platform_settings WHERE singleton = $1",
		rec.queries[0])
	assert.Equal(t,
		"UPDATE platform_settings SET maintenance_mode = $1, updated_at = now() WHERE singleton = $2",
		rec.queries[1])
}
