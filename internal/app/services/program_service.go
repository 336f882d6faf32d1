package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
	"github.com/campushub/sis-backend/internal/pkg/validation"
)

// ProgramService handles program-related operations
type ProgramService struct {
	programRepo *repositories.ProgramRepository
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo *repositories.ProgramRepository) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
	}
}

// normalizeProgram trims and uppercases the codes, trims the name. An empty
// or "N/A" college code becomes a null reference.
func normalizeProgram(details dto.ProgramDetails) models.Program {
	var collegeCode *string
	if ptr := helpers.NilIfEmpty(details.CollegeCode); ptr != nil {
		upper := strings.ToUpper(*ptr)
		collegeCode = &upper
	}
	return models.Program{
		ProgramCode: strings.ToUpper(strings.TrimSpace(details.ProgramCode)),
		ProgramName: strings.TrimSpace(details.ProgramName),
		CollegeCode: collegeCode,
	}
}

func validateProgram(details dto.ProgramDetails) error {
	if err := validation.ProgramCode(details.ProgramCode); err != nil {
		return err
	}
	if err := validation.ProgramName(details.ProgramName); err != nil {
		return err
	}
	if details.CollegeCode == helpers.NotApplicable {
		return nil
	}
	return validation.OptionalCollegeCode(details.CollegeCode)
}

func programResponse(program models.Program) dto.ProgramResponse {
	return dto.ProgramResponse{
		ProgramCode: program.ProgramCode,
		ProgramName: program.ProgramName,
		CollegeCode: helpers.TextOrNA(program.CollegeCode),
	}
}

// programFilter resolves the mutually exclusive search and college-scope
// filter modes for count and list requests.
func programFilter(searchValue, searchBy, searchType, collegeCode string) (querybuilder.Filter, error) {
	if err := querybuilder.ValidateExclusive(searchValue, collegeCode); err != nil {
		return querybuilder.NoFilter, err
	}
	if collegeCode != "" {
		return querybuilder.Filter{
			Exact: &querybuilder.ExactFilter{Column: "college_code", Value: strings.ToUpper(strings.TrimSpace(collegeCode))},
		}, nil
	}
	return querybuilder.Filter{
		Search: querybuilder.SearchFrom(searchValue, searchBy, searchType),
	}, nil
}

// Count returns the number of programs matching the optional search triple or
// the optional college scope.
func (s *ProgramService) Count(ctx context.Context, search helpers.SearchParams, collegeCode string) (int64, error) {
	entity := s.programRepo.Entity()
	if err := entity.ValidateSearch(search.SearchValue, search.SearchBy, search.SearchType); err != nil {
		return 0, err
	}

	filter, err := programFilter(search.SearchValue, search.SearchBy, search.SearchType, collegeCode)
	if err != nil {
		return 0, err
	}
	return s.programRepo.Count(ctx, filter)
}

// List returns one sorted page of programs.
func (s *ProgramService) List(ctx context.Context, params querybuilder.ListParams, collegeCode string) ([]dto.ProgramResponse, error) {
	entity := s.programRepo.Entity()
	if err := entity.ValidateList(params); err != nil {
		return nil, err
	}

	filter, err := programFilter(params.SearchValue, params.SearchBy, params.SearchType, collegeCode)
	if err != nil {
		return nil, err
	}
	page := querybuilder.Page{RowsPerPage: params.RowsPerPage, PageNumber: params.PageNumber}

	programs, err := s.programRepo.GetPage(ctx, filter, params.SortField, querybuilder.SortOrder(params.SortOrder), page)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProgramResponse, 0, len(programs))
	for _, program := range programs {
		result = append(result, programResponse(program))
	}
	return result, nil
}

// Get retrieves a single program by its code.
func (s *ProgramService) Get(ctx context.Context, code string) (*dto.ProgramResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	program, err := s.programRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", code))
	}

	response := programResponse(*program)
	return &response, nil
}

// Create inserts a new program after format validation.
func (s *ProgramService) Create(ctx context.Context, details dto.ProgramDetails) error {
	if err := validateProgram(details); err != nil {
		return err
	}

	program := normalizeProgram(details)
	if err := s.programRepo.Create(ctx, &program); err != nil {
		return translateWriteError(err, "college_code", program.CollegeCode)
	}
	return nil
}

// Update rewrites the program identified by code, allowing a code rename.
func (s *ProgramService) Update(ctx context.Context, code string, details dto.ProgramDetails) error {
	if err := validateProgram(details); err != nil {
		return err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	program := normalizeProgram(details)

	found, err := s.programRepo.Update(ctx, code, &program)
	if err != nil {
		return translateWriteError(err, "college_code", program.CollegeCode)
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", code))
	}
	return nil
}

// Delete removes the program identified by code.
func (s *ProgramService) Delete(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	found, err := s.programRepo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("Program with code '%s' not found.", code))
	}
	return nil
}

// GroupedCodes returns every program code bucketed by its parent college,
// orphan programs under the "N/A" bucket.
func (s *ProgramService) GroupedCodes(ctx context.Context) (dto.GroupedProgramCodes, error) {
	pairs, err := s.programRepo.ListCodePairs(ctx)
	if err != nil {
		return nil, err
	}
	return GroupProgramCodes(pairs), nil
}

// GroupProgramCodes buckets program codes by college code, sorting the codes
// within each bucket. Programs without a college land in the "N/A" bucket.
func GroupProgramCodes(pairs []models.ProgramCodePair) dto.GroupedProgramCodes {
	grouped := dto.GroupedProgramCodes{}
	for _, pair := range pairs {
		bucket := helpers.TextOrNA(pair.CollegeCode)
		grouped[bucket] = append(grouped[bucket], pair.ProgramCode)
	}
	for _, codes := range grouped {
		sort.Strings(codes)
	}
	return grouped
}
