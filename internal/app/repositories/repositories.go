package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	GradeRepository      *GradeRepository
	FinalGradeRepository *FinalGradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		GradeRepository:      NewGradeRepository(db),
		FinalGradeRepository: NewFinalGradeRepository(db),
	}
}
