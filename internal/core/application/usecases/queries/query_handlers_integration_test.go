package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"market/internal/adapters/out/postgres"
	"market/internal/adapters/out/postgres/pgtest"
	"market/internal/adapters/out/postgres/productrepo"
	"market/internal/core/application/usecases/queries"
	"market/internal/core/domain/model/kernel"
	"market/internal/core/domain/model/order"
	"market/internal/core/domain/model/product"
	"market/internal/core/domain/model/user"
	"market/internal/core/ports"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory *postgres.GormUnitOfWorkFactory
	catalog *productrepo.GormProductRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(pg.DB))
	suite.factory = postgres.NewGormUnitOfWorkFactory(pg.DB)
	suite.catalog = productrepo.NewGormProductRepository(pg.DB)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

var baseTime = time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)

func (suite *QueryHandlersTestSuite) uow() ports.UnitOfWork {
	return suite.factory.Create()
}

func (suite *QueryHandlersTestSuite) seedProduct(name, price string) *product.Product {
	m, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), name, "SKU-"+name, m)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.catalog.Add(context.Background(), p))
	return p
}

func (suite *QueryHandlersTestSuite) seedUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "Linus", "Torvalds", 5557777, email, "hash", baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow().UserRepository().Add(context.Background(), u))
	return u
}

func (suite *QueryHandlersTestSuite) seedOrder(userID kernel.UUID, at time.Time, products ...*product.Product) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), userID, products, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsOrderWithOwner() {
	owner := suite.seedUser("linus@example.com")
	o := suite.seedOrder(owner.ID(), baseTime, suite.seedProduct("kettle", "30.00"), suite.seedProduct("mug", "4.50"))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(o.ID()))
	suite.Equal("PREPARING_FOR_DELIVERY", resp.Status)
	suite.Equal("34.50", resp.Total.String())
	suite.Equal(2, resp.ProductCount)
	suite.True(resp.Owner.ID.IsEqual(owner.ID()))
	suite.Equal("Linus", resp.Owner.FirstName)
	suite.Equal("linus@example.com", resp.Owner.Email)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_OwnerMissing_ReturnsEmptyOwner() {
	ownerID := kernel.NewUUID()
	o := suite.seedOrder(ownerID, baseTime)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(resp.Owner.ID.IsEqual(ownerID))
	suite.Empty(resp.Owner.Email)
	suite.Zero(resp.ProductCount)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Missing_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetUserOrders_PaginatesNewestFirst() {
	owner := suite.seedUser("linus@example.com")
	other := suite.seedUser("other@example.com")
	p := suite.seedProduct("kettle", "30.00")

	var newest *order.Order
	for i := 0; i < queries.DefaultPageSize + 2; i++ {
		newest = suite.seedOrder(owner.ID(), baseTime.Add(time.Duration(i)*time.Minute), p)
	}
	suite.seedOrder(other.ID(), baseTime, p)

	handler := queries.NewGetUserOrdersQueryHandler(suite.pg.DB)

	first, err := queries.NewGetUserOrdersQuery(owner.ID(), 1)
	suite.Require().NoError(err)
	page, err := handler.Handle(context.Background(), first)
	suite.Require().NoError(err)
	suite.Equal(queries.DefaultPageSize, page.Count)
	suite.True(page.Data[0].ID.IsEqual(newest.ID()))
	suite.Equal(1, page.Data[0].ProductCount)
	suite.Equal("30.00", page.Data[0].Total.String())

	second, err := queries.NewGetUserOrdersQuery(owner.ID(), 2)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), second)
	suite.Require().NoError(err)
	suite.Equal(2, page.Count)
	suite.Len(page.Data, 2)

	third, err := queries.NewGetUserOrdersQuery(owner.ID(), 3)
	suite.Require().NoError(err)
	page, err = handler.Handle(context.Background(), third)
	suite.Require().NoError(err)
	suite.Zero(page.Count)
	suite.NotNil(page.Data)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProducts_ListsLinesInInsertionOrder() {
	kettle := suite.seedProduct("kettle", "30.00")
	mug := suite.seedProduct("mug", "4.50")
	o := suite.seedOrder(kernel.NewUUID(), baseTime, kettle, mug)

	query, err := queries.NewGetOrderProductsQuery(o.ID(), 1)
	suite.Require().NoError(err)

	page, err := queries.NewGetOrderProductsQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, page.Count)
	names := []string{page.Data[0].Name, page.Data[1].Name}
	suite.ElementsMatch([]string{"kettle", "mug"}, names)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProducts_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderProductsQuery(kernel.NewUUID(), 1)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderProductsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetProducts_FiltersByNameCaseInsensitively() {
	suite.seedProduct("Green Tea", "3.00")
	suite.seedProduct("black tea", "2.50")
	suite.seedProduct("Coffee", "6.00")

	query, err := queries.NewGetProductsQuery(1, "TEA")
	suite.Require().NoError(err)

	page, err := queries.NewGetProductsQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(2, page.Count)
	for _, p := range page.Data {
		suite.Contains([]string{"Green Tea", "black tea"}, p.Name)
	}
}

func (suite *QueryHandlersTestSuite) TestGetProducts_WildcardsAreLiteral() {
	suite.seedProduct("100% juice", "2.00")
	suite.seedProduct("water", "1.00")

	query, err := queries.NewGetProductsQuery(1, "%")
	suite.Require().NoError(err)

	page, err := queries.NewGetProductsQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Equal(1, page.Count)
	suite.Equal("100% juice", page.Data[0].Name)
}

func (suite *QueryHandlersTestSuite) TestGetProducts_Paginates() {
	for i := 0; i < queries.DefaultPageSize + 3; i++ {
		suite.seedProduct(fmt.Sprintf("item-%02d", i), "1.00")
	}

	handler := queries.NewGetProductsQueryHandler(suite.pg.DB)

	query, err := queries.NewGetProductsQuery(2, "")
	suite.Require().NoError(err)
	page, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(3, page.Count)
	suite.Equal("item-10", page.Data[0].Name)
}

func (suite *QueryHandlersTestSuite) TestGetUser_ReturnsProfile() {
	u := suite.seedUser("linus@example.com")

	query, err := queries.NewGetUserQuery(u.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetUserQueryHandler(suite.pg.DB).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(resp.ID.IsEqual(u.ID()))
	suite.Equal("Linus", resp.FirstName)
	suite.Equal("Torvalds", resp.LastName)
	suite.Equal(int64(5557777), resp.PhoneNumber)
	suite.Equal("linus@example.com", resp.Email)
	suite.Empty(resp.Group)
}

func (suite *QueryHandlersTestSuite) TestGetUser_Missing_ReturnsNotFound() {
	query, err := queries.NewGetUserQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetUserQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
