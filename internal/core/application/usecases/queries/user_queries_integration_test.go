package queries_test

import (
	"context"

	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/pkg/errs"

	"github.com/samber/lo"
)

func (suite *QueriesIntegrationTestSuite) TestListUsers_AdminSeesActiveAccounts() {
	handler := queries.NewListUsersQueryHandler(suite.database.DB)
	suite.Require().NoError(suite.database.DB.Exec("UPDATE users SET is_deleted = TRUE WHERE id = ?", suite.carlID).Error)

	users, err := handler.Handle(context.Background(), queries.NewListUsersQuery(suite.admin()))

	suite.Require().NoError(err)
	suite.Equal([]string{"admin", "sorter", "ann", "bob"},
		lo.Map(users, func(u queries.UserResponse, _ int) string { return u.Username }))
	suite.True(users[0].IsCurrentUser)
	suite.False(users[2].IsCurrentUser)
	suite.Equal(access.RoleOperator, users[1].Role)
}

func (suite *QueriesIntegrationTestSuite) TestListUsers_NonAdmin_ReturnsAccessDenied() {
	handler := queries.NewListUsersQueryHandler(suite.database.DB)

	users, err := handler.Handle(context.Background(), queries.NewListUsersQuery(suite.sorter()))

	suite.Nil(users)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)
}

func (suite *QueriesIntegrationTestSuite) TestGetUser() {
	handler := queries.NewGetUserQueryHandler(suite.database.DB)
	get := func(p access.Principal, id int64) (queries.UserResponse, error) {
		return handler.Handle(context.Background(), queries.NewGetUserQuery(p, id))
	}

	self, err := get(suite.ann(), suite.annID)
	suite.Require().NoError(err)
	suite.Equal("ann", self.Username)
	suite.Equal("Lee", self.LastName)
	suite.True(self.IsCurrentUser)

	other, err := get(suite.admin(), suite.bobID)
	suite.Require().NoError(err)
	suite.Equal("bob", other.Username)
	suite.False(other.IsCurrentUser)

	_, err = get(suite.ann(), suite.bobID)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	_, err = get(suite.admin(), 999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(suite.database.DB.Exec("UPDATE users SET is_deleted = TRUE WHERE id = ?", suite.bobID).Error)
	_, err = get(suite.admin(), suite.bobID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
