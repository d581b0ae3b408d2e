package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL idempotente del catálogo. La FK shops.category_id es RESTRICT: borrar
// una categoría con shops falla en DB igual que en el caso de uso. La FK de
// menu_items no cascada en DB: la cascada la ejecuta el servicio para que el
// adaptador en memoria se comporte idéntico.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	mobile        TEXT NOT NULL DEFAULT '',
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	status        TEXT NOT NULL DEFAULT 'ACTIVE',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	image_url  TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS shops (
	id                 UUID PRIMARY KEY,
	category_id        UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
	name               TEXT NOT NULL,
	logo_url           TEXT NOT NULL DEFAULT '',
	description        TEXT NOT NULL DEFAULT '',
	review_description TEXT NOT NULL DEFAULT '',
	address            TEXT NOT NULL DEFAULT '',
	phone_number       TEXT NOT NULL DEFAULT '',
	area               TEXT NOT NULL DEFAULT '',
	city               TEXT NOT NULL DEFAULT '',
	latitude           NUMERIC,
	longitude          NUMERIC,
	website_url        TEXT NOT NULL DEFAULT '',
	chat_link          TEXT NOT NULL DEFAULT '',
	open_hours         TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_shops_category ON shops(category_id);

CREATE TABLE IF NOT EXISTS menu_items (
	id             UUID PRIMARY KEY,
	shop_id        UUID NOT NULL REFERENCES shops(id),
	item_name      TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	price          NUMERIC NOT NULL DEFAULT 0,
	image_url      TEXT NOT NULL DEFAULT '',
	category_name  TEXT NOT NULL DEFAULT '',
	is_quick_snack BOOLEAN NOT NULL DEFAULT FALSE,
	is_available   BOOLEAN NOT NULL DEFAULT TRUE,
	quantity       INTEGER,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_menu_items_shop ON menu_items(shop_id);
`

// Migrate ejecuta el DDL idempotente del catálogo. Lo invoca cmd/seed y,
// con DB_MIGRATE=true, también el arranque de la API.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ejecutar DDL: %w", err)
	}
	return nil
}
