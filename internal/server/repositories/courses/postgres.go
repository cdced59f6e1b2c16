package courses

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

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {

	query :=
		`INSERT INTO courses (title, description, price, mentor_id, category, level, duration)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, rating, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		course.Title, course.Description, course.Price, course.MentorID,
		course.Category, course.Level, course.Duration).
		Scan(&course.ID, &course.Rating, &course.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	course.Students = []string{}
	return course, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query :=
		`SELECT id, title, description, price, mentor_id, category, level, duration, rating, created_at
		 FROM courses
		 WHERE id = $1
		 `

	course := &models.Course{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID, &course.Title, &course.Description, &course.Price, &course.MentorID,
		&course.Category, &course.Level, &course.Duration, &course.Rating, &course.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadStudents(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (r *PostgresRepository) loadStudents(ctx context.Context, course *models.Course) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id FROM course_students WHERE course_id = $1 ORDER BY enrolled_at`, course.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	course.Students = []string{}
	for rows.Next() {
		var studentID string
		if err := rows.Scan(&studentID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		course.Students = append(course.Students, studentID)
	}

	return rows.Err()
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Course, error) {
	query :=
		`SELECT id, title, description, price, mentor_id, category, level, duration, rating, created_at
		 FROM courses
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Description, &course.Price, &course.MentorID,
			&course.Category, &course.Level, &course.Duration, &course.Rating, &course.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, course := range result {
		if err := r.loadStudents(ctx, course); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	query :=
		`UPDATE courses
		 SET title = $2, description = $3, price = $4, category = $5, level = $6, duration = $7
		 WHERE id = $1
		 RETURNING rating, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		course.ID, course.Title, course.Description, course.Price,
		course.Category, course.Level, course.Duration).
		Scan(&course.Rating, &course.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := r.loadStudents(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
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

func (r *PostgresRepository) Enroll(ctx context.Context, courseID, studentID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)`, courseID, studentID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return common.ErrorAlreadyExists
			case "23503": // foreign key violation: course or student missing
				return common.ErrorNotFound
			}
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
