// Store is the SQL surface handed to the API layer, so endpoints can be
// exercised against a fake in tests.
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name, city *string) error

	// mosque directory
	CreateMosque(name, address, city string, lat, lon *float64, photoURL *string, createdBy int) (model.Mosque, error)
	GetMosqueByID(id int) (model.Mosque, error)
	ListMosques(city string) ([]model.Mosque, error)
	UpdateMosque(id int, name, address, city *string, lat, lon *float64, photoURL *string) error
	DeleteMosque(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
