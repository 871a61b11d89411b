package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrUserDeleted = errors.New("deleted users cannot change status")

// ErrTransitionNotAllowed rejects a status change the transition table forbids
var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// allowedStatusTransitions guards one-way account transitions; Deleted is terminal
var allowedStatusTransitions = map[UserStatus][]UserStatus{
	UserActive:    {UserSuspended, UserDeleted},
	UserSuspended: {UserActive, UserDeleted},
	UserDeleted:   {},
}

// CanTransitionUser reports whether a user status change is allowed
func CanTransitionUser(from, to UserStatus) bool {
	for _, allowed := range allowedStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Repository defines admin user data access
type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*AdminUser, error)
	ListUsers(ctx context.Context) ([]AdminUser, error)
	SaveUser(ctx context.Context, user *AdminUser) error
	AppendAudit(ctx context.Context, entry *UserAudit) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed admin user repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetUser(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	var user AdminUser
	err := r.db.WithContext(ctx).
		Preload("ActivityLog").
		Preload("AuditLog").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return &user, nil
}

func (r *gormRepository) ListUsers(ctx context.Context) ([]AdminUser, error) {
	var users []AdminUser
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *gormRepository) SaveUser(ctx context.Context, user *AdminUser) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	return nil
}

func (r *gormRepository) AppendAudit(ctx context.Context, entry *UserAudit) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// Service provides admin user operations
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the admin user service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// ListUsers returns the filtered, sorted user table
func (s *Service) ListUsers(ctx context.Context, filter UserTableFilterState) ([]AdminUser, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return FilterUsers(users, filter), nil
}

// ChangeStatus transitions a user account and appends one audit entry. Deleted
// accounts never change status again.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, to UserStatus, actor, reason string) (*AdminUser, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status == UserDeleted {
		return nil, ErrUserDeleted
	}
	if !CanTransitionUser(user.Status, to) {
		return nil, fmt.Errorf("from %q to %q: %w", user.Status, to, ErrTransitionNotAllowed)
	}

	from := user.Status
	user.Status = to
	user.UpdatedAt = s.now()
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.repo.AppendAudit(ctx, &UserAudit{
		UserID:    user.ID,
		Action:    fmt.Sprintf("STATUS_CHANGED:%s->%s", from, to),
		Actor:     actor,
		Reason:    reason,
		CreatedAt: s.now(),
	}); err != nil {
		s.logger.Error("Failed to append user audit entry",
			zap.String("user_id", id.String()), zap.Error(err))
	}

	return user, nil
}
