package directory

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/models"
)

// Store persists the reference directory in the city_centers and
// ngo_candidates tables. Directory order is kept in ngo_candidates.sort_order.
type Store struct {
	DB      *sql.DB
	Dialect string // sqlite, mysql or postgres
}

// NewStore creates a store for the given database type
func NewStore(db *sql.DB, dialect string) *Store {
	if dialect == "" {
		dialect = "sqlite"
	}
	return &Store{DB: db, Dialect: dialect}
}

// rebind rewrites ? placeholders to $N for postgres
func (s *Store) rebind(query string) string {
	if s.Dialect != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Load reads the full directory
func (s *Store) Load(ctx context.Context) (*Directory, error) {
	d := &Directory{Cities: make(map[string]models.Coordinates)}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT name, lat, lng, high_temperature
		FROM city_centers ORDER BY name
	`)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err), "failed to query city centers")
	}
	for rows.Next() {
		var name string
		var c models.Coordinates
		var hot bool
		if err := rows.Scan(&name, &c.Lat, &c.Lng, &hot); err != nil {
			rows.Close()
			return nil, apperrors.Wrap(err, "failed to scan city center")
		}
		d.Cities[name] = c
		if hot {
			d.HighTemperature = append(d.HighTemperature, name)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = s.DB.QueryContext(ctx, `
		SELECT id, name, city, area, lat, lng, capacity_score
		FROM ngo_candidates ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %v", apperrors.ErrDatabaseError, err), "failed to query NGO candidates")
	}
	defer rows.Close()

	for rows.Next() {
		var n models.NGOCandidate
		var area sql.NullString
		if err := rows.Scan(&n.ID, &n.Name, &n.City, &area, &n.Lat, &n.Lng, &n.CapacityScore); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan NGO candidate")
		}
		if area.Valid {
			n.Area = area.String
		}
		d.NGOs = append(d.NGOs, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Save replaces the stored directory with d
func (s *Store) Save(ctx context.Context, d *Directory) error {
	return s.SaveWithProgress(ctx, d, nil)
}

// SaveWithProgress replaces the stored directory with d inside a single
// transaction, calling progress after each row written
func (s *Store) SaveWithProgress(ctx context.Context, d *Directory, progress func()) error {
	if err := d.Validate(); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ngo_candidates`); err != nil {
		return apperrors.Wrap(err, "failed to clear NGO candidates")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM city_centers`); err != nil {
		return apperrors.Wrap(err, "failed to clear city centers")
	}

	hot := make(map[string]bool, len(d.HighTemperature))
	for _, c := range d.HighTemperature {
		hot[c] = true
	}

	cityStmt, err := tx.PrepareContext(ctx, s.rebind(`
		INSERT INTO city_centers (name, lat, lng, high_temperature) VALUES (?, ?, ?, ?)
	`))
	if err != nil {
		return apperrors.Wrap(err, "failed to prepare city insert")
	}
	defer cityStmt.Close()

	for _, name := range d.CityNames() {
		c := d.Cities[name]
		if _, err := cityStmt.ExecContext(ctx, name, c.Lat, c.Lng, hot[name]); err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("failed to store city %s", name))
		}
		if progress != nil {
			progress()
		}
	}

	ngoStmt, err := tx.PrepareContext(ctx, s.rebind(`
		INSERT INTO ngo_candidates (id, sort_order, name, city, area, lat, lng, capacity_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return apperrors.Wrap(err, "failed to prepare NGO insert")
	}
	defer ngoStmt.Close()

	for i, n := range d.NGOs {
		if _, err := ngoStmt.ExecContext(ctx, n.ID, i, n.Name, n.City, n.Area, n.Lat, n.Lng, n.CapacityScore); err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("failed to store NGO %s", n.ID))
		}
		if progress != nil {
			progress()
		}
	}

	return tx.Commit()
}
