package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"user-management/internal/entities"
	"user-management/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *repoMock) InsertUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) DeleteUser(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var mockUsers = []entities.User{
	{ID: 1, Name: "Sreehari", Email: "sreehari@gmail.com"},
	{ID: 2, Name: "Sandesh", Email: "sandesh@gmail.com"},
	{ID: 6, Name: "Shanet", Email: "shanet@gmail.com"},
	{ID: 7, Name: "Venus", Email: "venus@gmail.com"},
	{ID: 8, Name: "Amal", Email: "amal@gmail.com"},
}

func newUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func strPtr(s string) *string { return &s }

func TestUsecase_CreateUser(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := entities.NewUser{Name: "Abhijith", Email: "abhijith@gmail.com"}
	stored := &entities.User{ID: 1, Name: "Abhijith", Email: "abhijith@gmail.com"}
	repo.On("InsertUser", mock.Anything, in).Return(stored, nil)

	got, err := uc.CreateUser(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, stored, got)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateUserPropagatesStoreError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := entities.NewUser{Name: "", Email: "invalidemail.com"}
	storeErr := &entities.StoreError{Op: "insert user", Err: errors.New("Validation failed")}
	repo.On("InsertUser", mock.Anything, in).Return(nil, storeErr)

	_, err := uc.CreateUser(context.Background(), in)
	require.Same(t, storeErr, err)
	require.EqualError(t, err, "Validation failed")
}

func TestUsecase_ListUsers(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("ListUsers", mock.Anything).Return(mockUsers, nil)

	got, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, mockUsers, got)
}

func TestUsecase_ListUsersNeverNil(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("ListUsers", mock.Anything).Return(nil, nil)

	got, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestUsecase_GetUser(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	user := mockUsers[2]
	repo.On("GetUser", mock.Anything, int64(6)).Return(&user, nil)

	first, err := uc.GetUser(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, &user, first)

	second, err := uc.GetUser(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetUser", 2)
}

func TestUsecase_GetUserNotFoundIsNil(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("GetUser", mock.Anything, int64(999)).Return(nil, entities.ErrUserNotFound)

	got, err := uc.GetUser(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUsecase_GetUserStoreError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	storeErr := &entities.StoreError{Op: "get user", Err: errors.New("connection refused")}
	repo.On("GetUser", mock.Anything, int64(1)).Return(nil, storeErr)

	_, err := uc.GetUser(context.Background(), 1)
	require.Same(t, storeErr, err)
}

func TestUsecase_UpdateUserRefetches(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	patch := entities.UserPatch{Name: strPtr("Shanet Updated"), Email: strPtr("shanet.updated@gmail.com")}
	updated := patch.Apply(mockUsers[2])
	repo.On("UpdateUser", mock.Anything, int64(6), patch).Return(int64(1), nil).Once()
	repo.On("GetUser", mock.Anything, int64(6)).Return(&updated, nil).Once()

	got, err := uc.UpdateUser(context.Background(), 6, patch)
	require.NoError(t, err)
	require.Equal(t, &updated, got)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUserPartialKeepsOtherFields(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	patch := entities.UserPatch{Name: strPtr("")}
	updated := patch.Apply(mockUsers[4])
	repo.On("UpdateUser", mock.Anything, int64(8), patch).Return(int64(1), nil)
	repo.On("GetUser", mock.Anything, int64(8)).Return(&updated, nil)

	got, err := uc.UpdateUser(context.Background(), 8, patch)
	require.NoError(t, err)
	require.Equal(t, "", got.Name)
	require.Equal(t, "amal@gmail.com", got.Email)
}

func TestUsecase_UpdateUserEmptyPatchSkipsWrite(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	current := mockUsers[0]
	repo.On("GetUser", mock.Anything, int64(1)).Return(&current, nil)

	got, err := uc.UpdateUser(context.Background(), 1, entities.UserPatch{})
	require.NoError(t, err)
	require.Equal(t, &current, got)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserMissingReturnsNil(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	patch := entities.UserPatch{Name: strPtr("ghost")}
	repo.On("UpdateUser", mock.Anything, int64(999), patch).Return(int64(0), nil)
	repo.On("GetUser", mock.Anything, int64(999)).Return(nil, entities.ErrUserNotFound)

	got, err := uc.UpdateUser(context.Background(), 999, patch)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestUsecase_UpdateUserStoreError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	patch := entities.UserPatch{Email: strPtr("dup@gmail.com")}
	storeErr := &entities.StoreError{Op: "update user", Err: errors.New("duplicate key")}
	repo.On("UpdateUser", mock.Anything, int64(2), patch).Return(int64(0), storeErr)

	_, err := uc.UpdateUser(context.Background(), 2, patch)
	require.Same(t, storeErr, err)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUsecase_RemoveUser(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("DeleteUser", mock.Anything, int64(7)).Return(int64(1), nil)

	require.NoError(t, uc.RemoveUser(context.Background(), 7))
	repo.AssertExpectations(t)
}

func TestUsecase_RemoveUserNotFound(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("DeleteUser", mock.Anything, int64(999)).Return(int64(0), nil)

	err := uc.RemoveUser(context.Background(), 999)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.EqualError(t, err, "User with ID 999 not found")
}

func TestUsecase_RemoveUserStoreError(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	storeErr := &entities.StoreError{Op: "delete user", Err: errors.New("connection reset")}
	repo.On("DeleteUser", mock.Anything, int64(3)).Return(int64(0), storeErr)

	err := uc.RemoveUser(context.Background(), 3)
	require.Same(t, storeErr, err)
	require.NotErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUsecase_AppliesTimeout(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)
	repo.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	require.NoError(t, uc.Health(context.Background()))
	repo.AssertExpectations(t)
}
