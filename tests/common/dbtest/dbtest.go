//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables so each subtest starts from a
// clean schema. TRUNCATE ... CASCADE keeps FK ordering out of the picture.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE payments, reservations, guests, rooms CASCADE")
	if err != nil {
		return fmt.Errorf("failed to reset database state: %w", err)
	}
	return nil
}
