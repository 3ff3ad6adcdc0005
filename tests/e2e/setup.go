//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"room-booking/cmd/bootstrap"
	"room-booking/cmd/bootstrap/components"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router, store, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *memdb.DB, *fx.App) {
	var (
		router *gin.Engine
		db     *memdb.DB
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &db),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return router, db, app
}

func setupE2EEnvironment(t *testing.T, cfg config.Config) (*gin.Engine, *memdb.DB) {
	gin.SetMode(gin.TestMode)

	router, db, app := buildE2EApp(cfg)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return router, db
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *memdb.DB
	Config config.Config
}

// SetupSubTest starts a fresh application per subtest; the store lives and
// dies with the fx graph, so this is the reset.
func (s *SharedSuite) SetupSubTest() {
	if s.Config.Booking.OverlapPolicy == "" {
		s.Config = config.NewTestConfig()
	}
	s.Router, s.DB = setupE2EEnvironment(s.T(), s.Config)
	require.NotNil(s.T(), s.DB, "ストアのセットアップに失敗")
}
