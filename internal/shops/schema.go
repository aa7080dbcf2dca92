package shops

import (
	"context"
	"fmt"

	"github.com/mrtribble/brewlist/pkg/db"
)

// createShopTableDDL mirrors pkg/migrate/migrations so a fresh database
// is usable without running the migrate CLI first.
const createShopTableDDL = `CREATE TABLE IF NOT EXISTS shop (
    ShopID INT AUTO_INCREMENT PRIMARY KEY,
    ShopName VARCHAR(255) NOT NULL,
    Rating DECIMAL(3,2) NOT NULL,
    DateEntered DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    Favorited BOOLEAN NOT NULL DEFAULT FALSE,
    Deleted BOOLEAN NOT NULL DEFAULT FALSE
)`

// EnsureSchema creates the shop table if it does not exist yet. It is
// idempotent; failures are reported to the caller, which logs and keeps
// the process running.
func EnsureSchema(ctx context.Context, client *db.Client) error {
	if client == nil {
		return fmt.Errorf("db client is required")
	}
	if err := client.Exec(ctx, createShopTableDDL); err != nil {
		return fmt.Errorf("creating shop table: %w", err)
	}
	return nil
}
