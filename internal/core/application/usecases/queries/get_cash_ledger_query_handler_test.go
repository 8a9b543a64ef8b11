package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/ledgerrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetCashLedgerQueryHandlerTestSuite runs the cash ledger read model against
// a real PostgreSQL instance, seeding through the write-side repositories.
type GetCashLedgerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCashLedgerQueryHandler
}

func (suite *GetCashLedgerQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&ledgerrepo.EntryDTO{},
		&ledgerrepo.SettlementDTO{},
	))

	suite.handler = queries.NewGetCashLedgerQueryHandler(db)
}

func (suite *GetCashLedgerQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ledger_entries, settlements, drivers").Error)
}

func (suite *GetCashLedgerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCashLedgerQueryHandlerTestSuite) seedDriver() kernel.UUID {
	location, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)

	aggregate, err := driver.NewDriver(kernel.NewUUID(), "Ravi Kumar", "+919876543210",
		"bike", "KA01AB1234", location, time.Now())
	suite.Require().NoError(err)

	repo := driverrepo.NewGormDriverRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *GetCashLedgerQueryHandlerTestSuite) seedCollection(
	driverID kernel.UUID,
	amount int64,
	at time.Time,
) *ledger.Entry {
	entry, err := ledger.NewCollection(kernel.NewUUID(), driverID,
		decimal.NewFromInt(amount), kernel.NewUUID(), at)
	suite.Require().NoError(err)

	repo := ledgerrepo.NewGormLedgerRepository(suite.db)
	suite.Require().NoError(repo.AddEntry(context.Background(), entry))
	return entry
}

func (suite *GetCashLedgerQueryHandlerTestSuite) TestHandle_UnknownDriver_ReturnsNotFound() {
	query, err := queries.NewGetCashLedgerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetCashLedgerQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsZeroes() {
	driverID := suite.seedDriver()

	query, err := queries.NewGetCashLedgerQuery(driverID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(response.CurrentBalance.IsZero())
	suite.True(response.TodayCollections.IsZero())
	suite.True(response.PendingSettlement.IsZero())
}

func (suite *GetCashLedgerQueryHandlerTestSuite) TestHandle_PartialSettlement_FiguresAgree() {
	ctx := context.Background()
	driverID := suite.seedDriver()
	ledgerRepo := ledgerrepo.NewGormLedgerRepository(suite.db)

	// Two collections, then a settlement of 15 that fully covers the first
	// entry and half of the second. The stamp lands on the first entry only,
	// yet the remaining debt is 3 and both figures must say so.
	now := time.Now()
	first := suite.seedCollection(driverID, 10, now.Add(-2*time.Minute))
	suite.seedCollection(driverID, 8, now.Add(-time.Minute))

	settlementID := kernel.NewUUID()
	suite.Require().NoError(first.MarkSettled(settlementID))
	suite.Require().NoError(ledgerRepo.UpdateEntry(ctx, first))

	settlementEntry, err := ledger.NewSettlementEntry(kernel.NewUUID(), driverID,
		decimal.NewFromInt(15), settlementID, now)
	suite.Require().NoError(err)
	suite.Require().NoError(ledgerRepo.AddEntry(ctx, settlementEntry))

	query, err := queries.NewGetCashLedgerQuery(driverID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(response.CurrentBalance.Equal(decimal.NewFromInt(3)),
		"balance %s", response.CurrentBalance)
	suite.True(response.PendingSettlement.Equal(decimal.NewFromInt(3)),
		"pending %s", response.PendingSettlement)
}

func (suite *GetCashLedgerQueryHandlerTestSuite) TestHandle_TodayCollections_ExcludesEarlierDays() {
	ctx := context.Background()
	driverID := suite.seedDriver()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	suite.seedCollection(driverID, 20, yesterday)
	suite.seedCollection(driverID, 7, now)

	query, err := queries.NewGetCashLedgerQuery(driverID)
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(response.TodayCollections.Equal(decimal.NewFromInt(7)),
		"today %s", response.TodayCollections)
	suite.True(response.CurrentBalance.Equal(decimal.NewFromInt(27)))
	suite.True(response.PendingSettlement.Equal(decimal.NewFromInt(27)))
}

func TestGetCashLedgerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCashLedgerQueryHandlerTestSuite))
}
