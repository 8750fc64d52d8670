package commands_test

import (
	"context"
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/access"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/core/domain/model/history"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Package, error) {
	args := m.Called(ctx, tn)
	p, _ := args.Get(0).(*parcel.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) Delete(ctx context.Context, tn kernel.TrackingNumber) error {
	return m.Called(ctx, tn).Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, r *history.Record) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) Get(ctx context.Context, id int64) (*history.Record, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*history.Record)
	return r, args.Error(1)
}

func (m *MockHistoryRepository) Update(ctx context.Context, r *history.Record) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockHistoryRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockHistoryRepository) DeleteByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (int64, error) {
	args := m.Called(ctx, tn)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) Add(ctx context.Context, e *catalog.Entry) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) Update(ctx context.Context, e *catalog.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockCatalogRepository) Get(ctx context.Context, kind catalog.Kind, id int64) (*catalog.Entry, error) {
	args := m.Called(ctx, kind, id)
	e, _ := args.Get(0).(*catalog.Entry)
	return e, args.Error(1)
}

func (m *MockCatalogRepository) Exists(ctx context.Context, kind catalog.Kind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	return m.Called(ctx, kind, id).Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	return m.Called().Get(0).(commands.CatalogUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(p access.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (access.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(access.Principal), args.Error(1)
}

func principal(t *testing.T, id int64, role access.Role) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(id, role)
	require.NoError(t, err)
	return p
}

func storedUser(t *testing.T, id int64, role access.Role, deleted bool) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "user"+string(rune('a'+id)), "hash", "First", "Last", "Addr", role, deleted)
	require.NoError(t, err)
	return u
}
