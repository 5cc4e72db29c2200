// Package pg connects to PostgreSQL with github.com/jackc/pgx/v5 and applies schema
// migrations with github.com/pressly/goose/v3.
//
// Connect builds a *pgxpool.Pool from Config and retries the first ping with
// github.com/sethvargo/go-retry. Migrate bridges the pool to database/sql and runs
// goose against an fs.FS, which lets the postgres secret store backend embed its
// table definition:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, secretstore.Migrations, secretstore.MigrationsDir, log); err != nil {
//	    return err
//	}
//
// IsNotFoundError reports pgx.ErrNoRows, which the backend maps to a missing record.
package pg
