package courserepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/coursemart/coursemart/internal/domain"
	"github.com/coursemart/coursemart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, courseID int) (*domain.Course, error) {
	query := `
        SELECT id, title, price, access_days, created_at
        FROM courses
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, courseID)

	var course domain.Course
	err := row.Scan(&course.ID, &course.Title, &course.Price, &course.AccessDays, &course.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find course", zap.Error(err))
		return nil, err
	}
	return &course, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Course, error) {
	query := `
        SELECT id, title, price, access_days, created_at
        FROM courses
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list courses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(&course.ID, &course.Title, &course.Price, &course.AccessDays, &course.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan course row", zap.Error(err))
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *Repository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	query := `
        INSERT INTO courses (title, price, access_days)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, course.Title, course.Price, course.AccessDays).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		zap.L().Error("can't create course", zap.Error(err))
		return nil, err
	}
	return course, nil
}
