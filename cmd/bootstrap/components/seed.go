package components

import (
	"context"
	"log/slog"

	"parkhub/internal/domain/user"
	"parkhub/internal/infra"
	"parkhub/internal/pkg/config"
	"parkhub/internal/pkg/errs"
	"parkhub/internal/pkg/password"
	"parkhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedAdmin),
)

// seedAdmin creates the bootstrap admin account on first start. A duplicate
// key just means the admin already exists.
func seedAdmin(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Admin.Password == "" {
				slog.Info("admin seeding skipped, no ADMIN_PASSWORD configured")
				return nil
			}

			username, err := user.NewUsername(cfg.Admin.Username)
			if err != nil {
				return errs.Wrap(err, "invalid admin username")
			}

			var email *user.Email
			if cfg.Admin.Email != "" {
				e, err := user.NewEmail(cfg.Admin.Email)
				if err != nil {
					return errs.Wrap(err, "invalid admin email")
				}
				email = &e
			}

			hash, err := password.HashPassword(cfg.Admin.Password)
			if err != nil {
				return errs.Wrap(err, "failed to hash admin password")
			}

			admin := user.NewUser(username, hash, email, user.RoleAdmin)

			err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				_, err := tx.Users().Create(ctx, admin)
				return err
			})
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					slog.Info("admin account already exists", "username", cfg.Admin.Username)
					return nil
				}
				return errs.Wrap(err, "failed to seed admin account")
			}

			slog.Info("admin account created", "username", cfg.Admin.Username)
			return nil
		},
	})
}
