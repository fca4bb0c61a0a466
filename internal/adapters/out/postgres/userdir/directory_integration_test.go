package userdir_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/userdir"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserDirectoryIntegrationTestSuite verifies directory lookups against a real
// PostgreSQL instance.
type UserDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *userdir.GormUserDirectory
}

func (suite *UserDirectoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userdir.UserDTO{}, &userdir.MenuAccessDTO{}))
	suite.directory = userdir.NewGormUserDirectory(db)
}

func (suite *UserDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, user_menu_access").Error)
}

func (suite *UserDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserDirectoryIntegrationTestSuite) TestResolveUser_Found() {
	id := suite.seedUser("arun@warehouse.example", true)

	user, err := suite.directory.ResolveUser(context.Background(), "arun@warehouse.example")
	suite.Require().NoError(err)
	suite.Require().NotNil(user)

	suite.Equal(id, user.ID)
	suite.Equal("Arun Kumar", user.Name)
	suite.True(user.Active)
}

func (suite *UserDirectoryIntegrationTestSuite) TestResolveUser_CaseInsensitiveEmail() {
	suite.seedUser("arun@warehouse.example", true)

	user, err := suite.directory.ResolveUser(context.Background(), "Arun@Warehouse.Example")
	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("arun@warehouse.example", user.Email)
}

func (suite *UserDirectoryIntegrationTestSuite) TestResolveUser_Missing_ReturnsNil() {
	user, err := suite.directory.ResolveUser(context.Background(), "ghost@warehouse.example")
	suite.Require().NoError(err)
	suite.Nil(user)
}

func (suite *UserDirectoryIntegrationTestSuite) TestHasMenuAccess() {
	id := suite.seedUser("arun@warehouse.example", true)
	suite.Require().NoError(suite.db.Create(&userdir.MenuAccessDTO{
		UserID:   id.Bytes(),
		MenuCode: "my_assigned_picking",
	}).Error)

	granted, err := suite.directory.HasMenuAccess(context.Background(), id, "my_assigned_picking")
	suite.Require().NoError(err)
	suite.True(granted)

	denied, err := suite.directory.HasMenuAccess(context.Background(), id, "my_assigned_packing")
	suite.Require().NoError(err)
	suite.False(denied)
}

func (suite *UserDirectoryIntegrationTestSuite) seedUser(email string, active bool) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userdir.UserDTO{
		ID:     id.Bytes(),
		Name:   "Arun Kumar",
		Email:  email,
		Active: active,
	}).Error)
	return id
}

func TestUserDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserDirectoryIntegrationTestSuite))
}
