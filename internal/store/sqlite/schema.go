package sqlite

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS moods (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT DEFAULT (datetime('now'))
	);`

	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating sqlite schema: %w", err)
	}
	return nil
}
