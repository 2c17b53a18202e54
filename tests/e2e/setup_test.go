//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	auctionHandler "github.com/vaibhavgupta5/ipl-auction/internal/auction/handler"
	auctionService "github.com/vaibhavgupta5/ipl-auction/internal/auction/service"
	"github.com/vaibhavgupta5/ipl-auction/internal/config"
	"github.com/vaibhavgupta5/ipl-auction/internal/database/migrate"
	"github.com/vaibhavgupta5/ipl-auction/internal/health"
	importerRouter "github.com/vaibhavgupta5/ipl-auction/internal/importer/router"
	"github.com/vaibhavgupta5/ipl-auction/internal/middleware"
	playerRepository "github.com/vaibhavgupta5/ipl-auction/internal/player/repository"
	playerRouter "github.com/vaibhavgupta5/ipl-auction/internal/player/router"
	statisticsRouter "github.com/vaibhavgupta5/ipl-auction/internal/statistics/router"
	teamRepository "github.com/vaibhavgupta5/ipl-auction/internal/team/repository"
	teamRouter "github.com/vaibhavgupta5/ipl-auction/internal/team/router"
)

// E2ETestSuite runs the full HTTP surface against a real PostgreSQL
// container. The server runs in-process; the auction auto-advance uses
// a fake clock so tests control time.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	clock       *clockwork.FakeClock
}

// SetupSuite runs once before all tests.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Apply the real migration files from the repository root.
	_, thisFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(thisFile), "..", "..", "migrations")
	s.T().Setenv("MIGRATIONS_PATH", migrationsPath)
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	logger := zap.NewNop().Sugar()
	cfg := config.AuctionConfig{
		DefaultBasePriceLakh: 20,
		OverseasLimit:        4,
		AdvanceDelay:         3 * time.Second,
	}
	s.clock = clockwork.NewFakeClock()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.GET("/health", health.New(db, logger).Check)
	playerRouter.RegisterRoutes(r, db, logger)
	teamRouter.RegisterRoutes(r, db, logger)
	importerRouter.RegisterRoutes(r, db, logger)
	statisticsRouter.RegisterRoutes(r, db, logger)

	// The auction router is wired by hand so the fake clock reaches
	// the service.
	svc := auctionService.New(db, playerRepository.New(db), teamRepository.New(db), cfg, s.clock, logger)
	h := auctionHandler.New(svc, logger)
	auction := r.Group("/auction")
	auction.POST("/start", h.Start)
	auction.GET("/state", h.State)
	auction.POST("/next", h.Next)
	auction.POST("/prev", h.Prev)
	auction.POST("/open", h.OpenBidding)
	auction.POST("/bid", h.IncrementBid)
	auction.POST("/team", h.SelectTeam)
	auction.POST("/sold", h.Sold)
	auction.POST("/unsold", h.Unsold)

	s.server = httptest.NewServer(r)
}

// TearDownSuite runs once after all tests.
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest truncates all tables before each test.
func (s *E2ETestSuite) SetupTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE team_players, teams, players").Error)
}

// doRequest performs an HTTP request against the test server and
// returns the response with its body consumed.
func (s *E2ETestSuite) doRequest(method, path string, body io.Reader) (*http.Response, []byte) {
	req, err := http.NewRequest(method, s.server.URL+path, body)
	require.NoError(s.T(), err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp, respBody
}

// decode unmarshals a response body, failing the test on bad JSON.
func (s *E2ETestSuite) decode(body []byte, out interface{}) {
	require.NoError(s.T(), json.Unmarshal(body, out), "body: %s", string(body))
}
