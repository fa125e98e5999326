package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/backlog/internal/adapter/bcrypt"
	gormAdapter "github.com/bornholm/backlog/internal/adapter/gorm"
	"github.com/bornholm/backlog/internal/adapter/jwt"
	"github.com/bornholm/backlog/internal/core/model"
	"github.com/bornholm/backlog/internal/core/port"
	"github.com/pkg/errors"
	cryptoBcrypt "golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

type testManagers struct {
	Store    port.Store
	Accounts *AccountManager
	Teams    *TeamManager
	Features *FeatureManager
}

func newTestManagers(t *testing.T, teamFuncs ...TeamManagerOptionFunc) *testManagers {
	t.Helper()

	db, err := gormAdapter.OpenDatabase(filepath.Join(t.TempDir(), "test.sqlite"), logger.Silent)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := gormAdapter.NewStore(db)

	return &testManagers{
		Store:    store,
		Accounts: NewAccountManager(store, bcrypt.NewHasher(cryptoBcrypt.MinCost), jwt.NewIssuer([]byte("secret"), time.Hour, "backlog")),
		Teams:    NewTeamManager(store, teamFuncs...),
		Features: NewFeatureManager(store),
	}
}

func (m *testManagers) register(t *testing.T, first, last, email string) *model.User {
	t.Helper()

	user, err := m.Accounts.Register(context.Background(), Registration{
		Name:     model.Name{First: first, Last: last},
		Email:    email,
		Password: "longpass1",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return user
}

func assertErrorIs(t *testing.T, err error, expected error) {
	t.Helper()

	if !errors.Is(err, expected) {
		t.Errorf("err: expected %v, got %+v", expected, err)
	}
}
