package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	ProgramRepository *ProgramRepository
	StudentRepository *StudentRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(db),
		ProgramRepository: NewProgramRepository(db),
		StudentRepository: NewStudentRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
