package journalrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/adapters/out/postgres/journalrepo"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// JournalRepositoryIntegrationTestSuite verifies last-sent sample persistence
// against a real PostgreSQL container.
type JournalRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *journalrepo.GormJournalRepository
}

func (suite *JournalRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&journalrepo.SampleDTO{}))
}

func (suite *JournalRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE last_sent_sample").Error)
	suite.repository = journalrepo.NewGormJournalRepository(suite.db)
}

func (suite *JournalRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *JournalRepositoryIntegrationTestSuite) createTestSample(lat, lng float64, capturedAt time.Time) kernel.LocationSample {
	point, err := kernel.NewGeoPoint(lat, lng)
	suite.Require().NoError(err)

	heading := 182.5
	speed := 11.3
	sample, err := kernel.NewLocationSample(point, 8.0, &heading, &speed, capturedAt)
	suite.Require().NoError(err)

	return sample
}

func (suite *JournalRepositoryIntegrationTestSuite) TestLastSent_EmptyJournal_NoSample() {
	sample, err := suite.repository.LastSent(context.Background())

	suite.Require().NoError(err)
	suite.Nil(sample)
}

func (suite *JournalRepositoryIntegrationTestSuite) TestSetLastSent_EmptyJournal_StoresSample() {
	ctx := context.Background()
	capturedAt := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	sample := suite.createTestSample(1.3521, 103.8198, capturedAt)

	suite.Require().NoError(suite.repository.SetLastSent(ctx, sample))

	stored, err := suite.repository.LastSent(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.InDelta(1.3521, stored.Point.Lat(), 1e-9)
	suite.InDelta(103.8198, stored.Point.Lng(), 1e-9)
	suite.InDelta(8.0, stored.Accuracy, 1e-9)
	suite.Require().NotNil(stored.Heading)
	suite.InDelta(182.5, *stored.Heading, 1e-9)
	suite.True(stored.CapturedAt.Equal(capturedAt))
}

func (suite *JournalRepositoryIntegrationTestSuite) TestSetLastSent_ExistingSample_Overwrites() {
	ctx := context.Background()
	first := suite.createTestSample(1.3000, 103.8000, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC))
	second := suite.createTestSample(1.3100, 103.8100, time.Date(2026, 8, 28, 9, 5, 0, 0, time.UTC))

	suite.Require().NoError(suite.repository.SetLastSent(ctx, first))
	suite.Require().NoError(suite.repository.SetLastSent(ctx, second))

	stored, err := suite.repository.LastSent(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.InDelta(1.3100, stored.Point.Lat(), 1e-9)

	var count int64
	suite.Require().NoError(suite.db.Model(&journalrepo.SampleDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *JournalRepositoryIntegrationTestSuite) TestSetLastSent_UnconstructedPoint_ValidationError() {
	err := suite.repository.SetLastSent(context.Background(), kernel.LocationSample{
		CapturedAt: time.Now(),
	})

	suite.Require().Error(err)
}

func TestJournalRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(JournalRepositoryIntegrationTestSuite))
}
