package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
	"github.com/campushub/sis-backend/internal/pkg/validation"
)

// CollegeService handles college-related operations
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo *repositories.CollegeRepository) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
	}
}

// normalizeCollege trims and uppercases the code, trims the name.
func normalizeCollege(details dto.CollegeDetails) models.College {
	return models.College{
		CollegeCode: strings.ToUpper(strings.TrimSpace(details.CollegeCode)),
		CollegeName: strings.TrimSpace(details.CollegeName),
	}
}

func validateCollege(details dto.CollegeDetails) error {
	if err := validation.CollegeCode(details.CollegeCode); err != nil {
		return err
	}
	return validation.CollegeName(details.CollegeName)
}

// Count returns the number of colleges matching the optional search triple.
func (s *CollegeService) Count(ctx context.Context, search helpers.SearchParams) (int64, error) {
	entity := s.collegeRepo.Entity()
	if err := entity.ValidateSearch(search.SearchValue, search.SearchBy, search.SearchType); err != nil {
		return 0, err
	}

	filter := querybuilder.Filter{
		Search: querybuilder.SearchFrom(search.SearchValue, search.SearchBy, search.SearchType),
	}
	return s.collegeRepo.Count(ctx, filter)
}

// List returns one sorted page of colleges.
func (s *CollegeService) List(ctx context.Context, params querybuilder.ListParams) ([]dto.CollegeDetails, error) {
	entity := s.collegeRepo.Entity()
	if err := entity.ValidateList(params); err != nil {
		return nil, err
	}

	filter := querybuilder.Filter{
		Search: querybuilder.SearchFrom(params.SearchValue, params.SearchBy, params.SearchType),
	}
	page := querybuilder.Page{RowsPerPage: params.RowsPerPage, PageNumber: params.PageNumber}

	colleges, err := s.collegeRepo.GetPage(ctx, filter, params.SortField, querybuilder.SortOrder(params.SortOrder), page)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CollegeDetails, 0, len(colleges))
	for _, college := range colleges {
		result = append(result, dto.CollegeDetails{
			CollegeCode: college.CollegeCode,
			CollegeName: college.CollegeName,
		})
	}
	return result, nil
}

// Get retrieves a single college by its code.
func (s *CollegeService) Get(ctx context.Context, code string) (*dto.CollegeDetails, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	college, err := s.collegeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", code))
	}

	return &dto.CollegeDetails{
		CollegeCode: college.CollegeCode,
		CollegeName: college.CollegeName,
	}, nil
}

// Create inserts a new college after format validation.
func (s *CollegeService) Create(ctx context.Context, details dto.CollegeDetails) error {
	if err := validateCollege(details); err != nil {
		return err
	}

	college := normalizeCollege(details)
	if err := s.collegeRepo.Create(ctx, &college); err != nil {
		return translateConflict(err)
	}
	return nil
}

// Update rewrites the college identified by code, allowing a code rename.
func (s *CollegeService) Update(ctx context.Context, code string, details dto.CollegeDetails) error {
	if err := validateCollege(details); err != nil {
		return err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	college := normalizeCollege(details)

	found, err := s.collegeRepo.Update(ctx, code, &college)
	if err != nil {
		return translateConflict(err)
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", code))
	}
	return nil
}

// Delete removes the college identified by code.
func (s *CollegeService) Delete(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	found, err := s.collegeRepo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("College with code '%s' not found.", code))
	}
	return nil
}

// Identifiers returns every college code with its name, ordered by code.
func (s *CollegeService) Identifiers(ctx context.Context) ([]dto.CollegeIdentifier, error) {
	colleges, err := s.collegeRepo.ListIdentifiers(ctx)
	if err != nil {
		return nil, err
	}

	identifiers := make([]dto.CollegeIdentifier, 0, len(colleges))
	for _, college := range colleges {
		identifiers = append(identifiers, dto.CollegeIdentifier{
			CollegeCode: college.CollegeCode,
			CollegeName: college.CollegeName,
		})
	}
	return identifiers, nil
}
