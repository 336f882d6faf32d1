package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

// collegeEntity is the statement-builder metadata for the colleges table.
var collegeEntity = querybuilder.Entity{
	Table:      "colleges",
	PrimaryKey: "college_code",
	Columns:    []string{"college_code", "college_name"},
	SearchBy:   []string{"College Code", "College Name"},
	SortFields: []string{"College Code", "College Name"},
}

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
	qb *querybuilder.Builder
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
		qb: querybuilder.MustNew(collegeEntity),
	}
}

// Entity returns the builder metadata, used by callers for allow-list checks.
func (r *CollegeRepository) Entity() querybuilder.Entity {
	return collegeEntity
}

// Count returns the number of colleges matching the filter.
func (r *CollegeRepository) Count(ctx context.Context, f querybuilder.Filter) (int64, error) {
	query, args, err := r.qb.CountQuery(f)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return count, nil
}

// GetPage returns one sorted page of colleges matching the filter.
func (r *CollegeRepository) GetPage(ctx context.Context, f querybuilder.Filter, sortField string, order querybuilder.SortOrder, page querybuilder.Page) ([]models.College, error) {
	query, args, err := r.qb.PageQuery(f, sortField, order, page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.CollegeCode, &college.CollegeName); err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}
	return colleges, rows.Err()
}

// GetByCode retrieves a college by its code. Returns nil when no row matches.
func (r *CollegeRepository) GetByCode(ctx context.Context, code string) (*models.College, error) {
	var college models.College
	err := r.db.QueryRow(ctx, r.qb.GetByPKQuery(), code).Scan(&college.CollegeCode, &college.CollegeName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}
	return &college, nil
}

// Create inserts a new college.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	_, err := r.db.Exec(ctx, r.qb.InsertQuery(), college.CollegeCode, college.CollegeName)
	return err
}

// Update rewrites the college row identified by code. The code itself may
// change, renaming the college. Returns false when no row matched.
func (r *CollegeRepository) Update(ctx context.Context, code string, college *models.College) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.UpdateByPKQuery(), college.CollegeCode, college.CollegeName, code)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a college by code. Returns false when no row matched.
func (r *CollegeRepository) Delete(ctx context.Context, code string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.DeleteByPKQuery(), code)
	if err != nil {
		return false, fmt.Errorf("error deleting college: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ListIdentifiers returns every college's code and name, ordered by code.
func (r *CollegeRepository) ListIdentifiers(ctx context.Context) ([]models.College, error) {
	query, err := r.qb.ListKeysQuery("college_name", "college_code")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing college identifiers: %w", err)
	}
	defer rows.Close()

	colleges := []models.College{}
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.CollegeCode, &college.CollegeName); err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}
	return colleges, rows.Err()
}

// Exists checks whether a college with the given code exists.
func (r *CollegeRepository) Exists(ctx context.Context, code string) (bool, error) {
	query, err := r.qb.ExistsQuery("college_code")
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking college existence: %w", err)
	}
	return exists, nil
}
