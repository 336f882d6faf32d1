package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

// studentEntity is the statement-builder metadata for the students table.
var studentEntity = querybuilder.Entity{
	Table:      "students",
	PrimaryKey: "id_number",
	Columns:    []string{"id_number", "first_name", "last_name", "year_level", "gender", "avatar_url", "program_code"},
	SearchBy:   []string{"ID Number", "First Name", "Last Name", "Year Level", "Gender", "Program Code"},
	SortFields: []string{"ID Number", "First Name", "Last Name", "Year Level", "Gender", "Program Code"},
}

// collegeScopeSubquery restricts student rows to programs under one college.
const collegeScopeSubquery = "program_code IN (SELECT program_code FROM programs WHERE college_code = $1)"

// DemographicFilter optionally narrows an aggregation to one program or one
// college. At most one field may be set; callers validate exclusivity.
type DemographicFilter struct {
	ProgramCode string
	CollegeCode string
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	qb *querybuilder.Builder
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		qb: querybuilder.MustNew(studentEntity),
	}
}

// Entity returns the builder metadata, used by callers for allow-list checks.
func (r *StudentRepository) Entity() querybuilder.Entity {
	return studentEntity
}

func scanStudent(row pgx.Row, student *models.Student) error {
	return row.Scan(
		&student.IDNumber,
		&student.FirstName,
		&student.LastName,
		&student.YearLevel,
		&student.Gender,
		&student.AvatarURL,
		&student.ProgramCode,
	)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Count returns the number of students matching the filter.
func (r *StudentRepository) Count(ctx context.Context, f querybuilder.Filter) (int64, error) {
	query, args, err := r.qb.CountQuery(f)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountByCollege returns the number of students enrolled in any program of
// the given college. The scope crosses into the programs table, so the
// statement is written here rather than built from entity metadata.
func (r *StudentRepository) CountByCollege(ctx context.Context, collegeCode string) (int64, error) {
	query := "SELECT COUNT(*) FROM students WHERE " + collegeScopeSubquery

	var count int64
	if err := r.db.QueryRow(ctx, query, collegeCode).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students by college: %w", err)
	}
	return count, nil
}

// GetPage returns one sorted page of students matching the filter.
func (r *StudentRepository) GetPage(ctx context.Context, f querybuilder.Filter, sortField string, order querybuilder.SortOrder, page querybuilder.Page) ([]models.Student, error) {
	query, args, err := r.qb.PageQuery(f, sortField, order, page)
	if err != nil {
		return nil, err
	}
	return r.queryStudents(ctx, query, args...)
}

// GetPageByCollege returns one sorted page of students enrolled in any
// program of the given college.
func (r *StudentRepository) GetPageByCollege(ctx context.Context, collegeCode, sortField string, order querybuilder.SortOrder, page querybuilder.Page) ([]models.Student, error) {
	sortColumn, ok := studentEntity.SortColumn(sortField)
	if !ok {
		return nil, fmt.Errorf("%q is not a sortable student field", sortField)
	}

	query := fmt.Sprintf("SELECT %s FROM students WHERE %s ORDER BY %s %s LIMIT $2 OFFSET $3",
		strings.Join(studentEntity.Columns, ", "), collegeScopeSubquery, sortColumn, order.SQL())
	return r.queryStudents(ctx, query, collegeCode, page.RowsPerPage, page.Offset())
}

// GetByIDNumber retrieves a student by ID number. Returns nil when no row
// matches.
func (r *StudentRepository) GetByIDNumber(ctx context.Context, idNumber string) (*models.Student, error) {
	var student models.Student
	err := scanStudent(r.db.QueryRow(ctx, r.qb.GetByPKQuery(), idNumber), &student)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// Create inserts a new student, avatar URL included.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.db.Exec(ctx, r.qb.InsertQuery(),
		student.IDNumber, student.FirstName, student.LastName,
		student.YearLevel, student.Gender, student.AvatarURL, student.ProgramCode)
	return err
}

// Update rewrites the student row identified by idNumber. The ID number
// itself may change. Returns false when no row matched.
func (r *StudentRepository) Update(ctx context.Context, idNumber string, student *models.Student) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.UpdateByPKQuery(),
		student.IDNumber, student.FirstName, student.LastName,
		student.YearLevel, student.Gender, student.AvatarURL, student.ProgramCode,
		idNumber)
	if err != nil {
		return false, err
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes a student by ID number. Returns false when no row matched.
func (r *StudentRepository) Delete(ctx context.Context, idNumber string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, r.qb.DeleteByPKQuery(), idNumber)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// demographicQuery builds the count-per-enum-member aggregation for the given
// enum type and student column. The aggregation is driven from the enum's
// member list via unnest(enum_range(...)), so members with no students still
// appear with a zero count, in enum order.
func demographicQuery(enumType, column string, f DemographicFilter) (string, []any) {
	scope := ""
	args := []any{}
	switch {
	case f.ProgramCode != "":
		scope = " AND s.program_code = $1"
		args = append(args, f.ProgramCode)
	case f.CollegeCode != "":
		scope = " AND s.program_code IN (SELECT program_code FROM programs WHERE college_code = $1)"
		args = append(args, f.CollegeCode)
	}

	query := fmt.Sprintf(
		"SELECT d.%[2]s, COUNT(s.id_number) FROM unnest(enum_range(NULL::%[1]s)) AS d(%[2]s)"+
			" LEFT JOIN students s ON s.%[2]s = d.%[2]s%[3]s"+
			" GROUP BY d.%[2]s ORDER BY d.%[2]s",
		enumType, column, scope)
	return query, args
}

func (r *StudentRepository) queryDemographics(ctx context.Context, query string, args []any) ([]models.DemographicCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error aggregating demographics: %w", err)
	}
	defer rows.Close()

	counts := []models.DemographicCount{}
	for rows.Next() {
		var dc models.DemographicCount
		if err := rows.Scan(&dc.Category, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// YearLevelDemographics returns one count per year level, zero counts
// included, optionally scoped to a program or a college.
func (r *StudentRepository) YearLevelDemographics(ctx context.Context, f DemographicFilter) ([]models.DemographicCount, error) {
	query, args := demographicQuery("year_level_enum", "year_level", f)
	return r.queryDemographics(ctx, query, args)
}

// GenderDemographics returns one count per gender, zero counts included,
// optionally scoped to a program or a college.
func (r *StudentRepository) GenderDemographics(ctx context.Context, f DemographicFilter) ([]models.DemographicCount, error) {
	query, args := demographicQuery("gender_enum", "gender", f)
	return r.queryDemographics(ctx, query, args)
}
