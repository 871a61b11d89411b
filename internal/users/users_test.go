package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUser(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminUser), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]AdminUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]AdminUser), args.Error(1)
}

func (m *MockRepository) SaveUser(ctx context.Context, user *AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) AppendAudit(ctx context.Context, entry *UserAudit) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func TestCanTransitionUser(t *testing.T) {
	assert.True(t, CanTransitionUser(UserActive, UserSuspended))
	assert.True(t, CanTransitionUser(UserSuspended, UserActive))
	assert.True(t, CanTransitionUser(UserActive, UserDeleted))
	assert.False(t, CanTransitionUser(UserDeleted, UserActive))
	assert.False(t, CanTransitionUser(UserDeleted, UserSuspended))
	assert.False(t, CanTransitionUser(UserActive, UserActive))
}

func TestChangeStatusDeletedIsTerminal(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())
	id := uuid.New()

	mockRepo.On("GetUser", mock.Anything, id).Return(&AdminUser{ID: id, Status: UserDeleted}, nil)

	_, err := service.ChangeStatus(context.Background(), id, UserActive, "admin", "appeal")
	assert.ErrorIs(t, err, ErrUserDeleted)
	mockRepo.AssertNotCalled(t, "SaveUser")
}

func TestChangeStatusAppendsAudit(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())
	id := uuid.New()

	mockRepo.On("GetUser", mock.Anything, id).Return(&AdminUser{ID: id, Status: UserActive}, nil)
	mockRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("*users.AdminUser")).Return(nil)
	mockRepo.On("AppendAudit", mock.Anything, mock.MatchedBy(func(e *UserAudit) bool {
		return e.Action == "STATUS_CHANGED:Active->Suspended" && e.Actor == "admin"
	})).Return(nil).Once()

	user, err := service.ChangeStatus(context.Background(), id, UserSuspended, "admin", "chargeback spike")

	assert.NoError(t, err)
	assert.Equal(t, UserSuspended, user.Status)
	mockRepo.AssertExpectations(t)
}

func TestFilterUsersSearchAndStability(t *testing.T) {
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	records := []AdminUser{
		{ID: idA, Email: "ana@farmers.coop", WalletAddress: "GABC123XYZ", Status: UserActive, CreatedAt: base},
		{ID: idB, Email: "ben@farmers.coop", WalletAddress: "GDEF456XYZ", Status: UserSuspended, CreatedAt: base},
		{ID: idC, Email: "cara@growers.org", WalletAddress: "GHIJ789XYZ", Status: UserActive, CreatedAt: base},
	}

	filter := DefaultUserTableFilterState()
	filter.Search = "FARMERS"
	result := FilterUsers(records, filter)
	assert.Len(t, result, 2)

	// Equal created_at keys keep input order under a stable sort
	filter = DefaultUserTableFilterState()
	filter.SortBy = "created_at"
	result = FilterUsers(records, filter)
	assert.Equal(t, idA, result[0].ID)
	assert.Equal(t, idB, result[1].ID)
	assert.Equal(t, idC, result[2].ID)

	// Input untouched
	assert.Equal(t, "ana@farmers.coop", records[0].Email)
}

func TestFilterUsersByWallet(t *testing.T) {
	records := []AdminUser{
		{ID: uuid.New(), Email: "ana@farmers.coop", WalletAddress: "GABC123XYZ"},
		{ID: uuid.New(), Email: "ben@farmers.coop", WalletAddress: "GDEF456XYZ"},
	}

	filter := DefaultUserTableFilterState()
	filter.Search = "gdef"

	result := FilterUsers(records, filter)
	assert.Len(t, result, 1)
	assert.Equal(t, "ben@farmers.coop", result[0].Email)
}

func TestMaskingHelpers(t *testing.T) {
	assert.Equal(t, "a**@farmers.coop", MaskEmail("ana@farmers.coop"))
	assert.Equal(t, "a@b.co", MaskEmail("a@b.co"))
	assert.Equal(t, "GABC12...4XYZ", MaskWallet("GABC123456789XYZ4XYZ"))
	assert.Equal(t, "short", MaskWallet("short"))
}
