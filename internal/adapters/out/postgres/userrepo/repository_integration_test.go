package userrepo_test

import (
	"context"
	"testing"
	"time"

	"market/internal/adapters/out/postgres"
	"market/internal/adapters/out/postgres/pgtest"
	"market/internal/adapters/out/postgres/userrepo"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/user"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = userrepo.NewGormUserRepository(suite.pg.DB, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

var registeredAt = time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "Grace", "Hopper", 5551234, email, "$2a$10$hash", registeredAt)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	u := suite.newUser("grace@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, u))

	loaded, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Grace", loaded.FirstName())
	suite.Equal("Hopper", loaded.LastName())
	suite.Equal(int64(5551234), loaded.Phone())
	suite.Equal("grace@example.com", loaded.Email())
	suite.Equal("$2a$10$hash", loaded.PasswordHash())
	suite.False(loaded.IsAdmin())
	suite.True(loaded.CreatedAt().Equal(registeredAt))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", u.ID(), u)
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("grace@example.com")))

	err := suite.repository.Add(ctx, suite.newUser("grace@example.com"))

	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
	suite.Contains(err.Error(), "email")
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_IsCaseInsensitive() {
	ctx := context.Background()
	u := suite.newUser("grace@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	loaded, err := suite.repository.GetByEmail(ctx, "  Grace@Example.COM ")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(u.ID()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@example.com")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_ChangesContact() {
	ctx := context.Background()
	u := suite.newUser("grace@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	email := "hopper@example.com"
	phone := int64(5559999)
	changedAt := registeredAt.Add(24 * time.Hour)
	suite.Require().NoError(u.ChangeContact(&email, &phone, changedAt))

	suite.Require().NoError(suite.repository.Update(ctx, u))

	loaded, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(email, loaded.Email())
	suite.Equal(phone, loaded.Phone())
	suite.True(loaded.UpdatedAt().Equal(changedAt))
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_EmailTakenByAnotherUser_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("taken@example.com")))
	u := suite.newUser("grace@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	email := "taken@example.com"
	suite.Require().NoError(u.ChangeContact(&email, nil, registeredAt.Add(time.Hour)))

	err := suite.repository.Update(ctx, u)

	suite.Require().ErrorIs(err, errs.ErrAlreadyExists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newUser("ghost@example.com"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
