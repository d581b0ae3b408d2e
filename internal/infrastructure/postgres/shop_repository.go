package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

const shopColumns = `id, category_id, name, logo_url, description, review_description,
	address, phone_number, area, city, latitude, longitude, website_url, chat_link, open_hours,
	created_at, updated_at`

func scanShop(row pgx.Row) (*entity.Shop, error) {
	var s entity.Shop
	err := row.Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.LogoURL, &s.Description, &s.ReviewDescription,
		&s.Address, &s.PhoneNumber, &s.Area, &s.City, &s.Latitude, &s.Longitude,
		&s.WebsiteURL, &s.ChatLink, &s.OpenHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo shop. Una FK inexistente se traduce a ErrConstraint.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, category_id, name, logo_url, description, review_description,
			address, phone_number, area, city, latitude, longitude, website_url, chat_link, open_hours,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.CategoryID, shop.Name, shop.LogoURL, shop.Description, shop.ReviewDescription,
		shop.Address, shop.PhoneNumber, shop.Area, shop.City, shop.Latitude, shop.Longitude,
		shop.WebsiteURL, shop.ChatLink, shop.OpenHours, shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtiene un shop por ID.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`
	s, err := scanShop(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return s, nil
}

// GetByCategoryAndName obtiene un shop por (categoría, nombre). Clave del ensure.
func (r *ShopRepo) GetByCategoryAndName(categoryID, name string) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE category_id = $1 AND name = $2 LIMIT 1`
	s, err := scanShop(r.q.QueryRow(context.Background(), query, categoryID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by name: %w", err)
	}
	return s, nil
}

// Update actualiza un shop existente.
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET category_id = $2, name = $3, logo_url = $4, description = $5,
			review_description = $6, address = $7, phone_number = $8, area = $9, city = $10,
			latitude = $11, longitude = $12, website_url = $13, chat_link = $14, open_hours = $15,
			updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.CategoryID, shop.Name, shop.LogoURL, shop.Description, shop.ReviewDescription,
		shop.Address, shop.PhoneNumber, shop.Area, shop.City, shop.Latitude, shop.Longitude,
		shop.WebsiteURL, shop.ChatLink, shop.OpenHours, shop.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// List lista shops más recientes primero. categoryID vacío lista todos.
func (r *ShopRepo) List(categoryID string) ([]*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops`
	var args []any
	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los shops que referencian una categoría.
func (r *ShopRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM shops WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count shops by category: %w", err)
	}
	return n, nil
}

// Delete elimina un shop por ID.
func (r *ShopRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete shop: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de shops.
func (r *ShopRepo) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM shops`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count shops: %w", err)
	}
	return n, nil
}
