package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
)

type mockJobRequirementRepo struct {
	jobrequirement.Repository

	replaced     []jobrequirement.CreateDTO
	replaceCalls int
}

func (m *mockJobRequirementRepo) ReplaceForJob(_ context.Context, jobID uuid.UUID, items []jobrequirement.CreateDTO) ([]jobrequirement.JobRequirement, error) {
	m.replaceCalls++
	m.replaced = items
	out := make([]jobrequirement.JobRequirement, 0, len(items))
	for _, item := range items {
		out = append(out, jobrequirement.JobRequirement{
			ID:              uuid.New(),
			JobID:           jobID,
			RequirementType: item.RequirementType,
			Description:     item.Description,
			IsMandatory:     item.IsMandatory,
			SortOrder:       *item.SortOrder,
		})
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

func TestJobRequirementService_BulkReplace(t *testing.T) {
	repo := &mockJobRequirementRepo{}
	svc := NewJobRequirementService(repo)

	jobID := uuid.New()
	out, err := svc.BulkReplace(itf.NewTxContext(context.Background()), jobID, []jobrequirement.CreateDTO{
		{RequirementType: jobrequirement.TypeSkill, Description: "5 years of Go", SortOrder: intPtr(0)},
		{RequirementType: jobrequirement.TypeEducation, Description: "BSc or equivalent", SortOrder: intPtr(1)},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 1, repo.replaceCalls)

	for _, item := range repo.replaced {
		require.Equal(t, jobID, item.JobID, "job id from the route wins over item payload")
	}
}

func TestJobRequirementService_BulkReplace_MissingJobID(t *testing.T) {
	svc := NewJobRequirementService(&mockJobRequirementRepo{})

	_, err := svc.BulkReplace(context.Background(), uuid.Nil, nil)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "job_id")
}

func TestJobRequirementService_BulkReplace_InvalidItem(t *testing.T) {
	repo := &mockJobRequirementRepo{}
	svc := NewJobRequirementService(repo)

	_, err := svc.BulkReplace(context.Background(), uuid.New(), []jobrequirement.CreateDTO{
		{RequirementType: jobrequirement.TypeSkill, Description: "ok", SortOrder: intPtr(0)},
		{RequirementType: "", Description: "", SortOrder: nil},
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "requirements[1].requirement_type")
	require.Contains(t, svcErr.Fields, "requirements[1].description")
	require.Contains(t, svcErr.Fields, "requirements[1].sort_order")
	require.Zero(t, repo.replaceCalls, "no storage access on validation failure")
}

func TestJobRequirementService_GetByJobID_RequiresJobID(t *testing.T) {
	svc := NewJobRequirementService(&mockJobRequirementRepo{})

	_, err := svc.GetByJobID(context.Background(), uuid.Nil)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
}
