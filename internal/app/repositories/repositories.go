package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	ObjectRepository     *ObjectRepository
	LightcurveRepository *LightcurveRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ObjectRepository:     NewObjectRepository(db),
		LightcurveRepository: NewLightcurveRepository(db),
	}
}
