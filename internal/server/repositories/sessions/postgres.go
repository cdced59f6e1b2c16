package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/dbx"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sessionColumns = `id, student_id, mentor_id, session_date, session_time, status, subject, description, created_at`

func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {

	query :=
		`INSERT INTO sessions (student_id, mentor_id, session_date, session_time, status, subject, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		session.StudentID, session.MentorID, session.Date, session.Time,
		session.Status, session.Subject, session.Description).
		Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID, &session.StudentID, &session.MentorID, &session.Date, &session.Time,
		&session.Status, &session.Subject, &session.Description, &session.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID, &session.StudentID, &session.MentorID, &session.Date, &session.Time,
			&session.Status, &session.Subject, &session.Description, &session.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, session)
	}

	return result, rows.Err()
}

func (r *PostgresRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Session, error) {
	return r.list(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE student_id = $1 ORDER BY created_at`, studentID)
}

func (r *PostgresRepository) ListByMentor(ctx context.Context, mentorID string) ([]*models.Session, error) {
	return r.list(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE mentor_id = $1 ORDER BY created_at`, mentorID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Session, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY created_at`)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) (*models.Session, error) {
	query :=
		`UPDATE sessions SET status = $2
		 WHERE id = $1
		 RETURNING ` + sessionColumns

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id, status).Scan(
		&session.ID, &session.StudentID, &session.MentorID, &session.Date, &session.Time,
		&session.Status, &session.Subject, &session.Description, &session.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
