package doubts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/dbx"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const doubtColumns = `id, student_id, mentor_id, subject, question, status, created_at`

func (r *PostgresRepository) Create(ctx context.Context, doubt *models.Doubt) (*models.Doubt, error) {

	query :=
		`INSERT INTO doubts (student_id, mentor_id, subject, question, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		doubt.StudentID, doubt.MentorID, doubt.Subject, doubt.Question, doubt.Status).
		Scan(&doubt.ID, &doubt.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	doubt.Replies = []models.Reply{}
	return doubt, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Doubt, error) {
	query := `SELECT ` + doubtColumns + ` FROM doubts WHERE id = $1`

	doubt := &models.Doubt{}
	var mentorID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&doubt.ID, &doubt.StudentID, &mentorID, &doubt.Subject, &doubt.Question,
		&doubt.Status, &doubt.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if mentorID.Valid {
		doubt.MentorID = &mentorID.String
	}

	if err := r.loadReplies(ctx, doubt); err != nil {
		return nil, err
	}

	return doubt, nil
}

func (r *PostgresRepository) loadReplies(ctx context.Context, doubt *models.Doubt) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, message, created_at FROM doubt_replies WHERE doubt_id = $1 ORDER BY id`, doubt.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	doubt.Replies = []models.Reply{}
	for rows.Next() {
		var reply models.Reply
		if err := rows.Scan(&reply.UserID, &reply.Message, &reply.Timestamp); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		doubt.Replies = append(doubt.Replies, reply)
	}

	return rows.Err()
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Doubt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Doubt
	for rows.Next() {
		doubt := &models.Doubt{}
		var mentorID sql.NullString
		if err := rows.Scan(
			&doubt.ID, &doubt.StudentID, &mentorID, &doubt.Subject, &doubt.Question,
			&doubt.Status, &doubt.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if mentorID.Valid {
			doubt.MentorID = &mentorID.String
		}
		result = append(result, doubt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, doubt := range result {
		if err := r.loadReplies(ctx, doubt); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Doubt, error) {
	return r.list(ctx,
		`SELECT `+doubtColumns+` FROM doubts WHERE student_id = $1 ORDER BY created_at`, studentID)
}

func (r *PostgresRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.Doubt, error) {
	return r.list(ctx,
		`SELECT `+doubtColumns+` FROM doubts WHERE mentor_id = $1 ORDER BY created_at`, mentorID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Doubt, error) {
	return r.list(ctx, `SELECT `+doubtColumns+` FROM doubts ORDER BY created_at`)
}

func (r *PostgresRepository) AddReply(ctx context.Context, doubtID string, reply models.Reply) (*models.Doubt, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO doubt_replies (doubt_id, user_id, message, created_at) VALUES ($1, $2, $3, $4)`,
		doubtID, reply.UserID, reply.Message, reply.Timestamp)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // doubt missing
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return r.GetByID(ctx, doubtID)
}
