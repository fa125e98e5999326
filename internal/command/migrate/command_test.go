package migrate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	gormAdapter "github.com/bornholm/backlog/internal/adapter/gorm"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm/logger"
)

func TestMigrateCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data.sqlite")
	t.Setenv("BACKLOG_STORAGE_DATABASE_DSN", dsn)

	app := &cli.App{
		Commands:       []*cli.Command{Command()},
		ExitErrHandler: func(ctx *cli.Context, err error) {},
	}

	if err := app.RunContext(context.Background(), []string{"backlog", "migrate"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := os.Stat(dsn); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	db, err := gormAdapter.OpenDatabase(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, table := range []string{"users", "teams", "features", "stories", "tasks"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s should have been created", table)
		}
	}
}
