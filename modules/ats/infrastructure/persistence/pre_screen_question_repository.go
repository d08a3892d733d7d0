package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/prescreenquestion"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const preScreenQuestionFields = `id, job_id, question, question_type, options, is_required, sort_order, created_at, updated_at`

type PgPreScreenQuestionRepository struct{}

func NewPreScreenQuestionRepository() prescreenquestion.Repository {
	return &PgPreScreenQuestionRepository{}
}

func scanPreScreenQuestion(row pgx.Row) (prescreenquestion.PreScreenQuestion, error) {
	var q prescreenquestion.PreScreenQuestion
	err := row.Scan(
		&q.ID,
		&q.JobID,
		&q.Question,
		&q.QuestionType,
		&q.Options,
		&q.IsRequired,
		&q.SortOrder,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return q, err
	}
	q.QuestionText = q.Question
	return q, nil
}

func (r *PgPreScreenQuestionRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) ([]prescreenquestion.PreScreenQuestion, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+preScreenQuestionFields+`
FROM ats.job_prescreen_questions
WHERE job_id = $1
ORDER BY sort_order ASC
`, pgUUID(jobID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescreenquestion.PreScreenQuestion, 0)
	for rows.Next() {
		q, err := scanPreScreenQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *PgPreScreenQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (prescreenquestion.PreScreenQuestion, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, err
	}

	q, err := scanPreScreenQuestion(tx.QueryRow(ctx, `
SELECT `+preScreenQuestionFields+`
FROM ats.job_prescreen_questions
WHERE id = $1
`, pgUUID(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return prescreenquestion.PreScreenQuestion{}, prescreenquestion.ErrNotFound
	}
	return q, err
}

func (r *PgPreScreenQuestionRepository) Create(ctx context.Context, dto *prescreenquestion.CreateDTO) (prescreenquestion.PreScreenQuestion, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, err
	}

	sortOrder := 0
	if dto.SortOrder != nil {
		sortOrder = *dto.SortOrder
	}
	options := dto.Options
	if options == nil {
		options = []string{}
	}
	return scanPreScreenQuestion(tx.QueryRow(ctx, `
INSERT INTO ats.job_prescreen_questions (job_id, question, question_type, options, is_required, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+preScreenQuestionFields,
		pgUUID(dto.JobID),
		dto.Question,
		string(dto.QuestionType),
		options,
		dto.IsRequired,
		sortOrder,
	))
}

func (r *PgPreScreenQuestionRepository) Update(ctx context.Context, id uuid.UUID, patch *prescreenquestion.UpdateDTO) (prescreenquestion.PreScreenQuestion, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, err
	}

	var s setBuilder
	if patch.Question != nil {
		s.set("question", *patch.Question)
	}
	if patch.QuestionType != nil {
		s.set("question_type", string(*patch.QuestionType))
	}
	if patch.Options != nil {
		s.set("options", patch.Options)
	}
	if patch.IsRequired != nil {
		s.set("is_required", *patch.IsRequired)
	}
	if patch.SortOrder != nil {
		s.set("sort_order", *patch.SortOrder)
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))

	query := repo.Join(
		"UPDATE ats.job_prescreen_questions SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+preScreenQuestionFields,
	)
	q, err := scanPreScreenQuestion(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return prescreenquestion.PreScreenQuestion{}, prescreenquestion.ErrNotFound
	}
	return q, err
}

func (r *PgPreScreenQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM ats.job_prescreen_questions WHERE id = $1`, pgUUID(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return prescreenquestion.ErrNotFound
	}
	return nil
}

func (r *PgPreScreenQuestionRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, items []prescreenquestion.CreateDTO) ([]prescreenquestion.PreScreenQuestion, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+preScreenQuestionFields+`
FROM ats.replace_job_prescreen_questions($1, $2::jsonb)
`, pgUUID(jobID), string(payload))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]prescreenquestion.PreScreenQuestion, 0, len(items))
	for rows.Next() {
		q, err := scanPreScreenQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
