//go:build integration

package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
)

func newIntegrationPool(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("ATS_TEST_DSN")
	if dsn == "" {
		t.Skip("ATS_TEST_DSN is not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func applyGooseUpSQL(t *testing.T, ctx context.Context, pool *pgxpool.Pool, relPath string) {
	t.Helper()
	raw, err := os.ReadFile(filepath.Clean(relPath))
	require.NoError(t, err)
	sql := extractGooseUp(string(raw))
	require.NotEmpty(t, strings.TrimSpace(sql))
	_, err = pool.Exec(ctx, sql, pgx.QueryExecModeSimpleProtocol)
	require.NoError(t, err)
}

func extractGooseUp(raw string) string {
	const up = "-- +goose Up"
	const down = "-- +goose Down"
	start := strings.Index(raw, up)
	if start < 0 {
		return raw
	}
	raw = raw[start+len(up):]
	if end := strings.Index(raw, down); end >= 0 {
		raw = raw[:end]
	}
	return strings.ReplaceAll(strings.ReplaceAll(raw, "-- +goose StatementBegin", ""), "-- +goose StatementEnd", "")
}

func setupAtsSchema(t *testing.T, ctx context.Context, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(ctx, `DROP SCHEMA IF EXISTS ats CASCADE`)
	require.NoError(t, err)
	applyGooseUpSQL(t, ctx, pool, filepath.Join("..", "..", "..", "..", "migrations", "00002_ats_baseline.sql"))
	applyGooseUpSQL(t, ctx, pool, filepath.Join("..", "..", "..", "..", "migrations", "00003_ats_job_children.sql"))
}

func seedJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	var companyID, jobID uuid.UUID
	err := pool.QueryRow(ctx, `
INSERT INTO ats.companies (name, identity_organization_id)
VALUES ('Acme Recruiting', gen_random_uuid())
RETURNING id
`).Scan(&companyID)
	require.NoError(t, err)
	err = pool.QueryRow(ctx, `
INSERT INTO ats.jobs (company_id, title)
VALUES ($1, 'Backend Engineer')
RETURNING id
`, companyID).Scan(&jobID)
	require.NoError(t, err)
	return jobID
}

func requirementSet(jobID uuid.UUID, descriptions ...string) []jobrequirement.CreateDTO {
	items := make([]jobrequirement.CreateDTO, 0, len(descriptions))
	for i, d := range descriptions {
		order := i
		items = append(items, jobrequirement.CreateDTO{
			JobID:           jobID,
			RequirementType: jobrequirement.TypeSkill,
			Description:     d,
			SortOrder:       &order,
		})
	}
	return items
}

func descriptionsOf(items []jobrequirement.JobRequirement) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Description)
	}
	return out
}

// Two overlapping replace calls for the same job must each observe their own
// full set inside their transaction, and the table must end up holding
// exactly one of the two submitted sets, never a mixture or an empty set.
func TestJobRequirementRepository_ReplaceForJob_ConcurrentLastWriterWins(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool := newIntegrationPool(t, ctx)
	setupAtsSchema(t, ctx, pool)
	jobID := seedJob(t, ctx, pool)

	repo := NewJobRequirementRepository()
	baseCtx := composables.WithPool(ctx, pool)

	setA := requirementSet(jobID, "5+ years Go", "Postgres in production", "gRPC services")
	setB := requirementSet(jobID, "Kubernetes operations", "On-call rotation")

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, set := range [][]jobrequirement.CreateDTO{setA, setB} {
		wg.Add(1)
		go func(i int, set []jobrequirement.CreateDTO) {
			defer wg.Done()
			<-start
			errs[i] = composables.InTx(baseCtx, func(txCtx context.Context) error {
				replaced, err := repo.ReplaceForJob(txCtx, jobID, set)
				if err != nil {
					return err
				}
				if len(replaced) != len(set) {
					return fmt.Errorf("replace returned %d rows, want %d", len(replaced), len(set))
				}
				// Same-tx readback sees the submitted set in full, never a
				// mixture with the concurrent writer.
				readback, err := repo.GetByJobID(txCtx, jobID)
				if err != nil {
					return err
				}
				if len(readback) != len(set) {
					return fmt.Errorf("in-transaction readback has %d rows, want %d", len(readback), len(set))
				}
				return nil
			})
		}(i, set)
	}
	close(start)
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	var final []jobrequirement.JobRequirement
	require.NoError(t, composables.InTx(baseCtx, func(txCtx context.Context) error {
		var err error
		final, err = repo.GetByJobID(txCtx, jobID)
		return err
	}))

	got := descriptionsOf(final)
	switch len(got) {
	case len(setA):
		require.ElementsMatch(t, got, []string{"5+ years Go", "Postgres in production", "gRPC services"})
	case len(setB):
		require.ElementsMatch(t, got, []string{"Kubernetes operations", "On-call rotation"})
	default:
		t.Fatalf("requirements are a mixture of both submitted sets: %v", got)
	}
}
