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

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, shop_id, item_name, description, price, image_url,
	category_name, is_quick_snack, is_available, quantity, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(
		&m.ID, &m.ShopID, &m.ItemName, &m.Description, &m.Price, &m.ImageURL,
		&m.CategoryName, &m.IsQuickSnack, &m.IsAvailable, &m.Quantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un nuevo ítem. Un shop_id inexistente se traduce a ErrConstraint.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, shop_id, item_name, description, price, image_url,
			category_name, is_quick_snack, is_available, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ShopID, item.ItemName, item.Description, item.Price, item.ImageURL,
		item.CategoryName, item.IsQuickSnack, item.IsAvailable, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`
	m, err := scanMenuItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return m, nil
}

// GetByShopAndName obtiene un ítem por (shop, nombre). Clave del ensure.
func (r *MenuItemRepo) GetByShopAndName(shopID, itemName string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE shop_id = $1 AND item_name = $2 LIMIT 1`
	m, err := scanMenuItem(r.q.QueryRow(context.Background(), query, shopID, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item by name: %w", err)
	}
	return m, nil
}

// Update actualiza un ítem existente.
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET item_name = $2, description = $3, price = $4, image_url = $5,
			category_name = $6, is_quick_snack = $7, is_available = $8, quantity = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemName, item.Description, item.Price, item.ImageURL,
		item.CategoryName, item.IsQuickSnack, item.IsAvailable, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// ListByShop lista los ítems de un shop ordenados por nombre ascendente.
func (r *MenuItemRepo) ListByShop(shopID string) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE shop_id = $1 ORDER BY item_name ASC`
	rows, err := r.q.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CountByShop cuenta los ítems de un shop.
func (r *MenuItemRepo) CountByShop(shopID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM menu_items WHERE shop_id = $1`, shopID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count menu items by shop: %w", err)
	}
	return n, nil
}

// DeleteByShop elimina todos los ítems de un shop (cascada del borrado de Shop).
func (r *MenuItemRepo) DeleteByShop(shopID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE shop_id = $1`, shopID)
	if err != nil {
		return fmt.Errorf("delete menu items by shop: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *MenuItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de ítems.
func (r *MenuItemRepo) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}
