package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id          BIGSERIAL PRIMARY KEY,
	user_number TEXT NOT NULL,
	product_id  TEXT NOT NULL,
	timestamp   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS payments (
	id            BIGSERIAL PRIMARY KEY,
	mpesa_message TEXT NOT NULL,
	payer_name    TEXT,
	timestamp     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the ledger tables. Safe to run on every start.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create ledger tables: %w", err)
	}
	return nil
}
