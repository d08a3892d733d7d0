package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/prescreenquestion"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
)

type mockPreScreenQuestionRepo struct {
	prescreenquestion.Repository

	replaceCalls int
}

func (m *mockPreScreenQuestionRepo) ReplaceForJob(_ context.Context, jobID uuid.UUID, items []prescreenquestion.CreateDTO) ([]prescreenquestion.PreScreenQuestion, error) {
	m.replaceCalls++
	out := make([]prescreenquestion.PreScreenQuestion, 0, len(items))
	for _, item := range items {
		out = append(out, prescreenquestion.PreScreenQuestion{
			ID:           uuid.New(),
			JobID:        jobID,
			Question:     item.Question,
			QuestionText: item.Question,
			QuestionType: item.QuestionType,
			Options:      item.Options,
			SortOrder:    *item.SortOrder,
		})
	}
	return out, nil
}

func TestPreScreenQuestionService_BulkReplace(t *testing.T) {
	repo := &mockPreScreenQuestionRepo{}
	svc := NewPreScreenQuestionService(repo)

	out, err := svc.BulkReplace(itf.NewTxContext(context.Background()), uuid.New(), []prescreenquestion.CreateDTO{
		{Question: "Are you authorized to work here?", QuestionType: prescreenquestion.TypeBoolean, SortOrder: intPtr(0)},
		{Question: "Preferred stack?", QuestionType: prescreenquestion.TypeMultipleChoice, Options: []string{"Go", "Rust"}, SortOrder: intPtr(1)},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	for _, q := range out {
		require.Equal(t, q.Question, q.QuestionText, "question_text mirrors question")
	}
}

func TestPreScreenQuestionService_BulkReplace_MultipleChoiceNeedsOptions(t *testing.T) {
	repo := &mockPreScreenQuestionRepo{}
	svc := NewPreScreenQuestionService(repo)

	_, err := svc.BulkReplace(context.Background(), uuid.New(), []prescreenquestion.CreateDTO{
		{Question: "Pick one", QuestionType: prescreenquestion.TypeMultipleChoice, SortOrder: intPtr(0)},
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "questions[0].options")
	require.Zero(t, repo.replaceCalls)
}

func TestPreScreenQuestionService_BulkReplace_MissingSortOrder(t *testing.T) {
	svc := NewPreScreenQuestionService(&mockPreScreenQuestionRepo{})

	_, err := svc.BulkReplace(context.Background(), uuid.New(), []prescreenquestion.CreateDTO{
		{Question: "Why us?", QuestionType: prescreenquestion.TypeText},
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Contains(t, svcErr.Fields, "questions[0].sort_order")
}
