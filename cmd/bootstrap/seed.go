package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/domain/table"
	"table-booking/internal/infra/repository"

	"go.uber.org/fx"
)

// SeedModule seeds the fixed table inventory into an empty store on startup.
// The existence check in SeedIfEmpty makes repeated startups no-ops.
var SeedModule = fx.Module("seed",
	fx.Invoke(registerInventorySeed),
)

func registerInventorySeed(lc fx.Lifecycle, repo *repository.TableRepository, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			inventory := table.DefaultInventory()
			seeded, err := repo.SeedIfEmpty(ctx, inventory)
			if err != nil {
				return err
			}
			if seeded {
				logger.Info("table inventory seeded", "tables", len(inventory))
			}
			return nil
		},
	})
}
