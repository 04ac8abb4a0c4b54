package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var (
	_ repository.SizeRepository  = (*SizeRepo)(nil)
	_ repository.ColorRepository = (*ColorRepo)(nil)
)

// SizeRepo implementación de SizeRepository sobre PostgreSQL.
type SizeRepo struct {
	q Querier
}

// NewSizeRepository construye el adaptador.
func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

// GetByID obtiene una talla, o nil si no existe.
func (r *SizeRepo) GetByID(id string) (*entity.Size, error) {
	var s entity.Size
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM sizes WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

// Create persiste una talla.
func (r *SizeRepo) Create(s *entity.Size) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sizes (id, name) VALUES ($1, $2)`, s.ID, s.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create size: %w", err)
	}
	return nil
}

// List lista todas las tallas.
func (r *SizeRepo) List() ([]*entity.Size, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM sizes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ColorRepo implementación de ColorRepository sobre PostgreSQL.
type ColorRepo struct {
	q Querier
}

// NewColorRepository construye el adaptador.
func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

// GetByID obtiene un color, o nil si no existe.
func (r *ColorRepo) GetByID(id string) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, hex_code FROM colors WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.HexCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return &c, nil
}

// Create persiste un color.
func (r *ColorRepo) Create(c *entity.Color) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO colors (id, name, hex_code) VALUES ($1, $2, $3)`, c.ID, c.Name, c.HexCode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create color: %w", err)
	}
	return nil
}

// List lista todos los colores.
func (r *ColorRepo) List() ([]*entity.Color, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, hex_code FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.HexCode); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
