package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

func (s *pgStore) CreateMosque(name, address, city string, lat, lon *float64, photoURL *string, createdBy int) (model.Mosque, error) {
	var m model.Mosque
	q := `
	INSERT INTO mosques (name, address, city, latitude, longitude, photo_url, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING id, name, address, city, latitude, longitude, photo_url, created_by, created_at, updated_at;`
	if err := s.db.Get(&m, q, name, address, city, lat, lon, photoURL, createdBy); err != nil {
		log.Error().Err(err).Msg("failed to create mosque")
		return model.Mosque{}, err
	}
	return m, nil
}

func (s *pgStore) GetMosqueByID(id int) (model.Mosque, error) {
	var m model.Mosque
	err := s.db.Get(&m, `
		SELECT id, name, address, city, latitude, longitude, photo_url, created_by, created_at, updated_at
		FROM mosques
		WHERE id = $1
		`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Mosque{}, sql.ErrNoRows
	}
	return m, err
}

// ListMosques returns the directory, optionally filtered by city
// (case-insensitive). An empty city lists everything.
func (s *pgStore) ListMosques(city string) ([]model.Mosque, error) {
	var mosques []model.Mosque
	if city == "" {
		err := s.db.Select(&mosques, `
			SELECT id, name, address, city, latitude, longitude, photo_url, created_by, created_at, updated_at
			FROM mosques
			ORDER BY city, name
			`)
		return mosques, err
	}
	err := s.db.Select(&mosques, `
		SELECT id, name, address, city, latitude, longitude, photo_url, created_by, created_at, updated_at
		FROM mosques
		WHERE lower(city) = lower($1)
		ORDER BY name
		`, city)
	return mosques, err
}

func (s *pgStore) UpdateMosque(id int, name, address, city *string, lat, lon *float64, photoURL *string) error {
	_, err := s.db.Exec(`
		UPDATE mosques
		SET name = COALESCE($2, name),
		address = COALESCE($3, address),
		city = COALESCE($4, city),
		latitude = COALESCE($5, latitude),
		longitude = COALESCE($6, longitude),
		photo_url = COALESCE($7, photo_url),
		updated_at = now()
		WHERE id = $1
		`, id, name, address, city, lat, lon, photoURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to update mosque")
	}
	return err
}

func (s *pgStore) DeleteMosque(id int) error {
	_, err := s.db.Exec(`DELETE FROM mosques WHERE id = $1`, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete mosque")
	}
	return err
}
