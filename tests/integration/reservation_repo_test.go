//go:build integration

package integration

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/config"
	"staybook/tests/common/builder"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

func startPostgresContainerOnce(t *testing.T) containerInfo {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "integration-tests"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				termCtx, termCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer termCancel()
				if err := postgresTestContainer.Terminate(termCtx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})

	ctx := context.Background()
	mappedPort, err := postgresTestContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err, "failed to resolve mapped port")
	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err, "failed to resolve container host")

	return containerInfo{Host: host, Port: mappedPort}
}

// prepareDatabase creates a fresh database per test process and applies the
// schema so suites never see each other's rows.
func prepareDatabase(t *testing.T, info containerInfo) *pgxpool.Pool {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(time.Duration(500+attempts*500) * time.Millisecond)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	require.NoError(t, applySchema(t, pool), "failed to apply schema")

	return pool
}

func applySchema(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Resolve the schema file relative to possible working dirs during `go test`.
	candidates := []string{
		filepath.Join("migrations", "schema.sql"),
		filepath.Join("..", "migrations", "schema.sql"),
		filepath.Join("..", "..", "migrations", "schema.sql"),
	}

	var (
		sqlContent []byte
		readErr    error
	)
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read schema file: %w", readErr)
	}

	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

type ReservationRepoTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.ReservationRepository
	ctx  context.Context
}

func (s *ReservationRepoTestSuite) SetupSuite() {
	info := startPostgresContainerOnce(s.T())
	s.pool = prepareDatabase(s.T(), info)
	s.repo = repository.NewReservationRepository(s.pool)
	s.ctx = context.Background()
}

func (s *ReservationRepoTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE reservations")
	s.Require().NoError(err)
}

func TestReservationRepoSuite(t *testing.T) {
	suite.Run(t, new(ReservationRepoTestSuite))
}

func (s *ReservationRepoTestSuite) mustCreate(mutate ...func(*builder.ReservationBuilder)) *reservation.Reservation {
	b := builder.NewReservationBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	res, err := b.BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Create(s.ctx, res))
	return res
}

func (s *ReservationRepoTestSuite) TestCreateAndFindByID() {
	created := s.mustCreate(func(b *builder.ReservationBuilder) {
		b.CancellationPolicy = []byte(`{"free_until": "2026-09-10T00:00:00Z"}`)
	})

	found, err := s.repo.FindByID(s.ctx, created.ID())
	s.Require().NoError(err)

	s.Equal(created.ID(), found.ID())
	s.True(found.CheckIn().Equal(created.CheckIn()))
	s.True(found.CheckOut().Equal(created.CheckOut()))
	s.Equal(created.GuestsCount(), found.GuestsCount())
	s.Equal(created.GuestName(), found.GuestName())
	s.Equal(created.GuestEmail(), found.GuestEmail())
	s.Equal(created.BookHash(), found.BookHash())
	s.InDelta(created.TotalPrice(), found.TotalPrice(), 0.001)
	s.InDelta(created.PricePerNight(), found.PricePerNight(), 0.001)
	s.Equal(created.Currency(), found.Currency())
	s.Equal(reservation.PaymentPending, found.PaymentStatus())
	s.Equal(reservation.StatusPendingPayment, found.BookingStatus())
	s.JSONEq(`{"free_until": "2026-09-10T00:00:00Z"}`, string(found.CancellationPolicy()))
	s.Nil(found.ConfirmedAt())
}

func (s *ReservationRepoTestSuite) TestFindByIDNotFound() {
	_, err := s.repo.FindByID(s.ctx, uuid.New())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ReservationRepoTestSuite) TestCreateDuplicateID() {
	created := s.mustCreate()

	err := s.repo.Create(s.ctx, created)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *ReservationRepoTestSuite) TestClaimForBookingWinsOnce() {
	created := s.mustCreate()

	claimed, err := s.repo.ClaimForBooking(s.ctx, created.ID(), "pay_123")
	s.Require().NoError(err)
	s.True(claimed)

	// A duplicate notification finds the row already claimed.
	claimed, err = s.repo.ClaimForBooking(s.ctx, created.ID(), "pay_456")
	s.Require().NoError(err)
	s.False(claimed)

	found, err := s.repo.FindByID(s.ctx, created.ID())
	s.Require().NoError(err)
	s.Equal(reservation.PaymentPaid, found.PaymentStatus())
	s.Equal(reservation.StatusBookingProcessing, found.BookingStatus())
	s.Equal("pay_123", found.PaymentRef())
}

func (s *ReservationRepoTestSuite) TestRecordSupplierOrderKeepsExistingIDs() {
	created := s.mustCreate()

	claimed, err := s.repo.ClaimForBooking(s.ctx, created.ID(), "pay_123")
	s.Require().NoError(err)
	s.Require().True(claimed)

	s.Require().NoError(s.repo.RecordSupplierOrder(s.ctx, created.ID(), "proc-1", ""))
	s.Require().NoError(s.repo.RecordSupplierOrder(s.ctx, created.ID(), "", "ord-1"))

	found, err := s.repo.FindByID(s.ctx, created.ID())
	s.Require().NoError(err)
	s.Equal("proc-1", found.ProcessID())
	s.Equal("ord-1", found.OrderID())
}

func (s *ReservationRepoTestSuite) TestMarkConfirmedOnlyFromProcessing() {
	created := s.mustCreate()
	confirmedAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	// Still pending_payment, the conditional write must not match.
	ok, err := s.repo.MarkConfirmed(s.ctx, created.ID(), "proc-1", "ord-1", confirmedAt)
	s.Require().NoError(err)
	s.False(ok)

	claimed, err := s.repo.ClaimForBooking(s.ctx, created.ID(), "pay_123")
	s.Require().NoError(err)
	s.Require().True(claimed)

	ok, err = s.repo.MarkConfirmed(s.ctx, created.ID(), "proc-1", "ord-1", confirmedAt)
	s.Require().NoError(err)
	s.True(ok)

	found, err := s.repo.FindByID(s.ctx, created.ID())
	s.Require().NoError(err)
	s.Equal(reservation.StatusConfirmed, found.BookingStatus())
	s.Equal("ord-1", found.OrderID())
	s.Require().NotNil(found.ConfirmedAt())
	s.True(found.ConfirmedAt().Equal(confirmedAt))

	// Confirmed is terminal, a second confirm does not match either.
	ok, err = s.repo.MarkConfirmed(s.ctx, created.ID(), "proc-2", "ord-2", confirmedAt)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ReservationRepoTestSuite) TestMarkFailedOnlyFromProcessing() {
	created := s.mustCreate()

	ok, err := s.repo.MarkFailed(s.ctx, created.ID(), "supplier rejected")
	s.Require().NoError(err)
	s.False(ok)

	claimed, err := s.repo.ClaimForBooking(s.ctx, created.ID(), "pay_123")
	s.Require().NoError(err)
	s.Require().True(claimed)

	ok, err = s.repo.MarkFailed(s.ctx, created.ID(), "supplier rejected")
	s.Require().NoError(err)
	s.True(ok)

	found, err := s.repo.FindByID(s.ctx, created.ID())
	s.Require().NoError(err)
	s.Equal(reservation.StatusBookingFailed, found.BookingStatus())
	s.Equal("supplier rejected", found.BookingError())
}

func (s *ReservationRepoTestSuite) TestFindStuckProcessing() {
	old := s.mustCreate(func(b *builder.ReservationBuilder) {
		b.CreatedAt = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	})
	recent := s.mustCreate(func(b *builder.ReservationBuilder) {
		b.CreatedAt = time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	})
	pending := s.mustCreate(func(b *builder.ReservationBuilder) {
		b.CreatedAt = time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	})
	_ = pending // stays pending_payment, must not appear

	for _, id := range []uuid.UUID{old.ID(), recent.ID()} {
		claimed, err := s.repo.ClaimForBooking(s.ctx, id, "pay_123")
		s.Require().NoError(err)
		s.Require().True(claimed)
	}

	cutoff := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	stuck, err := s.repo.FindStuckProcessing(s.ctx, cutoff, 10)
	s.Require().NoError(err)

	s.Require().Len(stuck, 1)
	s.Equal(old.ID(), stuck[0].ID())
	s.Equal(reservation.StatusBookingProcessing, stuck[0].BookingStatus())
}
