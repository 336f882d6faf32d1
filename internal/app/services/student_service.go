package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/filestorage"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
	"github.com/campushub/sis-backend/internal/pkg/logger"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
	"github.com/campushub/sis-backend/internal/pkg/validation"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	programRepo *repositories.ProgramRepository
	collegeRepo *repositories.CollegeRepository
	storage     filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, programRepo *repositories.ProgramRepository, collegeRepo *repositories.CollegeRepository, storage filestorage.FileStorage) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		programRepo: programRepo,
		collegeRepo: collegeRepo,
		storage:     storage,
	}
}

// normalizeStudent trims every field, uppercases the program code and
// lowercases the gender for storage. An empty or "N/A" program code becomes
// a null reference.
func normalizeStudent(details dto.StudentDetails) models.Student {
	var programCode *string
	if ptr := helpers.NilIfEmpty(details.ProgramCode); ptr != nil {
		upper := strings.ToUpper(*ptr)
		programCode = &upper
	}
	return models.Student{
		IDNumber:    strings.TrimSpace(details.IDNumber),
		FirstName:   strings.TrimSpace(details.FirstName),
		LastName:    strings.TrimSpace(details.LastName),
		YearLevel:   strings.TrimSpace(details.YearLevel),
		Gender:      strings.ToLower(strings.TrimSpace(details.Gender)),
		ProgramCode: programCode,
	}
}

func validateStudent(details dto.StudentDetails) error {
	if err := validation.IDNumber(details.IDNumber); err != nil {
		return err
	}
	if err := validation.PersonName(details.FirstName, "first"); err != nil {
		return err
	}
	if err := validation.PersonName(details.LastName, "last"); err != nil {
		return err
	}
	if err := validation.YearLevel(details.YearLevel); err != nil {
		return err
	}
	if err := validation.Gender(details.Gender); err != nil {
		return err
	}
	if details.ProgramCode == helpers.NotApplicable {
		return nil
	}
	return validation.OptionalProgramCode(details.ProgramCode)
}

// capitalizeFirst uppercases the first letter, leaving the rest unchanged.
// Stored genders are lowercase; they are presented capitalized.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func studentResponse(student models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		IDNumber:    student.IDNumber,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		YearLevel:   student.YearLevel,
		Gender:      capitalizeFirst(student.Gender),
		AvatarURL:   student.AvatarURL,
		ProgramCode: helpers.TextOrNA(student.ProgramCode),
	}
}

// validateScope enforces that search, program scope and college scope are
// mutually exclusive.
func validateScope(searchValue, programCode, collegeCode string) error {
	return querybuilder.ValidateExclusive(searchValue, programCode, collegeCode)
}

// Count returns the number of students matching the optional search triple,
// program scope or college scope.
func (s *StudentService) Count(ctx context.Context, search helpers.SearchParams, programCode, collegeCode string) (int64, error) {
	entity := s.studentRepo.Entity()
	if err := entity.ValidateSearch(search.SearchValue, search.SearchBy, search.SearchType); err != nil {
		return 0, err
	}
	if err := validateScope(search.SearchValue, programCode, collegeCode); err != nil {
		return 0, err
	}

	if collegeCode != "" {
		return s.studentRepo.CountByCollege(ctx, strings.ToUpper(strings.TrimSpace(collegeCode)))
	}

	filter := querybuilder.Filter{}
	if programCode != "" {
		filter.Exact = &querybuilder.ExactFilter{Column: "program_code", Value: strings.ToUpper(strings.TrimSpace(programCode))}
	} else {
		filter.Search = querybuilder.SearchFrom(search.SearchValue, search.SearchBy, search.SearchType)
	}
	return s.studentRepo.Count(ctx, filter)
}

// List returns one sorted page of students.
func (s *StudentService) List(ctx context.Context, params querybuilder.ListParams, programCode, collegeCode string) ([]dto.StudentResponse, error) {
	entity := s.studentRepo.Entity()
	if err := entity.ValidateList(params); err != nil {
		return nil, err
	}
	if err := validateScope(params.SearchValue, programCode, collegeCode); err != nil {
		return nil, err
	}

	page := querybuilder.Page{RowsPerPage: params.RowsPerPage, PageNumber: params.PageNumber}
	order := querybuilder.SortOrder(params.SortOrder)

	var students []models.Student
	var err error
	if collegeCode != "" {
		students, err = s.studentRepo.GetPageByCollege(ctx, strings.ToUpper(strings.TrimSpace(collegeCode)), params.SortField, order, page)
	} else {
		filter := querybuilder.Filter{}
		if programCode != "" {
			filter.Exact = &querybuilder.ExactFilter{Column: "program_code", Value: strings.ToUpper(strings.TrimSpace(programCode))}
		} else {
			filter.Search = querybuilder.SearchFrom(params.SearchValue, params.SearchBy, params.SearchType)
		}
		students, err = s.studentRepo.GetPage(ctx, filter, params.SortField, order, page)
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, studentResponse(student))
	}
	return result, nil
}

// Get retrieves a single student by ID number.
func (s *StudentService) Get(ctx context.Context, idNumber string) (*dto.StudentResponse, error) {
	idNumber = strings.TrimSpace(idNumber)

	student, err := s.studentRepo.GetByIDNumber(ctx, idNumber)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Student with ID number '%s' not found.", idNumber))
	}

	response := studentResponse(*student)
	return &response, nil
}

// Create inserts a new student. When an avatar is supplied it is stored
// first, so the student row is written once with its final avatar URL; the
// stored file is removed again if the insert fails.
func (s *StudentService) Create(ctx context.Context, details dto.StudentDetails, avatar *multipart.FileHeader) error {
	if err := validateStudent(details); err != nil {
		return err
	}

	student := normalizeStudent(details)

	if avatar != nil {
		avatarURL, err := s.storage.SaveFile(avatar)
		if err != nil {
			return fmt.Errorf("error storing avatar: %w", err)
		}
		student.AvatarURL = &avatarURL
	}

	if err := s.studentRepo.Create(ctx, &student); err != nil {
		if student.AvatarURL != nil {
			if delErr := s.storage.DeleteFile(*student.AvatarURL); delErr != nil {
				logger.Warn().Err(delErr).Str("avatarUrl", *student.AvatarURL).Msg("Failed to remove orphaned avatar")
			}
		}
		return translateWriteError(err, "program_code", student.ProgramCode)
	}
	return nil
}

// Update rewrites the student identified by idNumber, allowing an ID rename.
// A supplied avatar replaces the stored one; the previous file is removed
// after the row update succeeds.
func (s *StudentService) Update(ctx context.Context, idNumber string, details dto.StudentDetails, avatar *multipart.FileHeader) error {
	if err := validateStudent(details); err != nil {
		return err
	}

	idNumber = strings.TrimSpace(idNumber)

	existing, err := s.studentRepo.GetByIDNumber(ctx, idNumber)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Student with ID number '%s' not found.", idNumber))
	}

	student := normalizeStudent(details)
	student.AvatarURL = existing.AvatarURL

	if avatar != nil {
		avatarURL, err := s.storage.SaveFile(avatar)
		if err != nil {
			return fmt.Errorf("error storing avatar: %w", err)
		}
		student.AvatarURL = &avatarURL
	}

	found, err := s.studentRepo.Update(ctx, idNumber, &student)
	if err != nil {
		if avatar != nil && student.AvatarURL != nil {
			if delErr := s.storage.DeleteFile(*student.AvatarURL); delErr != nil {
				logger.Warn().Err(delErr).Str("avatarUrl", *student.AvatarURL).Msg("Failed to remove orphaned avatar")
			}
		}
		return translateWriteError(err, "program_code", student.ProgramCode)
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Student with ID number '%s' not found.", idNumber))
	}

	if avatar != nil && existing.AvatarURL != nil {
		if delErr := s.storage.DeleteFile(*existing.AvatarURL); delErr != nil {
			logger.Warn().Err(delErr).Str("avatarUrl", *existing.AvatarURL).Msg("Failed to remove replaced avatar")
		}
	}
	return nil
}

// Delete removes the student identified by idNumber along with any stored
// avatar file.
func (s *StudentService) Delete(ctx context.Context, idNumber string) error {
	idNumber = strings.TrimSpace(idNumber)

	existing, err := s.studentRepo.GetByIDNumber(ctx, idNumber)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("Student with ID number '%s' not found.", idNumber))
	}

	found, err := s.studentRepo.Delete(ctx, idNumber)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Student with ID number '%s' not found.", idNumber))
	}

	if existing.AvatarURL != nil {
		if delErr := s.storage.DeleteFile(*existing.AvatarURL); delErr != nil {
			logger.Warn().Err(delErr).Str("avatarUrl", *existing.AvatarURL).Msg("Failed to remove avatar of deleted student")
		}
	}
	return nil
}

// demographicScope validates the optional program/college scope of an
// aggregation: at most one may be set, and the referenced code must exist.
func (s *StudentService) demographicScope(ctx context.Context, programCode, collegeCode string) (repositories.DemographicFilter, error) {
	if err := querybuilder.ValidateExclusive(programCode, collegeCode); err != nil {
		return repositories.DemographicFilter{}, err
	}

	filter := repositories.DemographicFilter{
		ProgramCode: strings.ToUpper(strings.TrimSpace(programCode)),
		CollegeCode: strings.ToUpper(strings.TrimSpace(collegeCode)),
	}
	if filter.ProgramCode != "" {
		exists, err := s.programRepo.Exists(ctx, filter.ProgramCode)
		if err != nil {
			return repositories.DemographicFilter{}, err
		}
		if !exists {
			return repositories.DemographicFilter{}, apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", filter.ProgramCode))
		}
	}
	if filter.CollegeCode != "" {
		exists, err := s.collegeRepo.Exists(ctx, filter.CollegeCode)
		if err != nil {
			return repositories.DemographicFilter{}, err
		}
		if !exists {
			return repositories.DemographicFilter{}, apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", filter.CollegeCode))
		}
	}
	return filter, nil
}

// YearLevelDemographics returns one count per year level, zero counts
// included, optionally scoped to a program or a college.
func (s *StudentService) YearLevelDemographics(ctx context.Context, programCode, collegeCode string) ([]dto.YearLevelDemographic, error) {
	filter, err := s.demographicScope(ctx, programCode, collegeCode)
	if err != nil {
		return nil, err
	}

	counts, err := s.studentRepo.YearLevelDemographics(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]dto.YearLevelDemographic, 0, len(counts))
	for _, dc := range counts {
		result = append(result, dto.YearLevelDemographic{YearLevel: dc.Category, Count: dc.Count})
	}
	return result, nil
}

// GenderDemographics returns one count per gender, zero counts included,
// optionally scoped to a program or a college. Genders are capitalized for
// display.
func (s *StudentService) GenderDemographics(ctx context.Context, programCode, collegeCode string) ([]dto.GenderDemographic, error) {
	filter, err := s.demographicScope(ctx, programCode, collegeCode)
	if err != nil {
		return nil, err
	}

	counts, err := s.studentRepo.GenderDemographics(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]dto.GenderDemographic, 0, len(counts))
	for _, dc := range counts {
		result = append(result, dto.GenderDemographic{Gender: capitalizeFirst(dc.Category), Count: dc.Count})
	}
	return result, nil
}
