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

// programEntity is the statement-builder metadata for the programs table.
var programEntity = querybuilder.Entity{
	Table:      "programs",
	PrimaryKey: "program_code",
	Columns:    []string{"program_code", "program_name", "college_code"},
	SearchBy:   []string{"Program Code", "Program Name", "College Code"},
	SortFields: []string{"Program Code", "Program Name", "College Code"},
}

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db *pgxpool.Pool
	qb *querybuilder.Builder
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		qb: querybuilder.MustNew(programEntity),
	}
}

// Entity returns the builder metadata, used by callers for allow-list checks.
func (r *ProgramRepository) Entity() querybuilder.Entity {
	return programEntity
}

// Count returns the number of programs matching the filter. An exact filter
// on college_code restricts the count to one college.
func (r *ProgramRepository) Count(ctx context.Context, f querybuilder.Filter) (int64, error) {
	query, args, err := r.qb.CountQuery(f)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting programs: %w", err)
	}
	return count, nil
}

// GetPage returns one sorted page of programs matching the filter.
func (r *ProgramRepository) GetPage(ctx context.Context, f querybuilder.Filter, sortField string, order querybuilder.SortOrder, page querybuilder.Page) ([]models.Program, error) {
	query, args, err := r.qb.PageQuery(f, sortField, order, page)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(&program.ProgramCode, &program.ProgramName, &program.CollegeCode); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, rows.Err()
}

// GetByCode retrieves a program by its code. Returns nil when no row matches.
func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*models.Program, error) {
	var program models.Program
	err := r.db.QueryRow(ctx, r.qb.GetByPKQuery(), code).Scan(&program.ProgramCode, &program.ProgramName, &program.CollegeCode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	return &program, nil
}

// Create inserts a new program.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	_, err := r.db.Exec(ctx, r.qb.InsertQuery(), program.ProgramCode, program.ProgramName, program.CollegeCode)
	return err
}

// Update rewrites the program row identified by code. The code itself may
// change, renaming the program. Returns false when no row matched.
func (r *ProgramRepository) Update(ctx context.Context, code string, program *models.Program) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.UpdateByPKQuery(), program.ProgramCode, program.ProgramName, program.CollegeCode, code)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a program by code. Returns false when no row matched.
func (r *ProgramRepository) Delete(ctx context.Context, code string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.DeleteByPKQuery(), code)
	if err != nil {
		return false, fmt.Errorf("error deleting program: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ListCodePairs returns every program's code with its parent college code,
// ordered by program code. The college code is nil for orphan programs.
func (r *ProgramRepository) ListCodePairs(ctx context.Context) ([]models.ProgramCodePair, error) {
	query, err := r.qb.ListKeysQuery("college_code", "program_code")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing program codes: %w", err)
	}
	defer rows.Close()

	pairs := []models.ProgramCodePair{}
	for rows.Next() {
		var pair models.ProgramCodePair
		if err := rows.Scan(&pair.ProgramCode, &pair.CollegeCode); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, rows.Err()
}

// Exists checks whether a program with the given code exists.
func (r *ProgramRepository) Exists(ctx context.Context, code string) (bool, error) {
	query, err := r.qb.ExistsQuery("program_code")
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking program existence: %w", err)
	}
	return exists, nil
}
