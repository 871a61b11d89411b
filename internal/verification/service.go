package verification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DecisionNotifier is told about completed verification decisions
type DecisionNotifier interface {
	DecisionMade(ctx context.Context, record DecisionRecord, projectName string) error
}

// Repository defines verification queue data access
type Repository interface {
	GetProject(ctx context.Context, id string) (*QueueProject, error)
	ListProjects(ctx context.Context) ([]QueueProject, error)
	SaveProject(ctx context.Context, project *QueueProject) error
	AppendDecision(ctx context.Context, record *DecisionRecord) error
	ListComments(ctx context.Context, projectID string) ([]Comment, error)
	AddComment(ctx context.Context, comment *Comment) error
	SetLock(ctx context.Context, projectID string, owner *string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed verification repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetProject(ctx context.Context, id string) (*QueueProject, error) {
	var project QueueProject
	err := r.db.WithContext(ctx).
		Preload("Documents").
		Preload("DecisionHistory").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load queue project %s: %w", id, err)
	}
	return &project, nil
}

func (r *gormRepository) ListProjects(ctx context.Context) ([]QueueProject, error) {
	var projects []QueueProject
	if err := r.db.WithContext(ctx).Preload("Documents").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list queue projects: %w", err)
	}
	return projects, nil
}

// SaveProject persists project columns only. Decision records are inserted
// through AppendDecision, so a snapshot carrying unsaved history rows must
// not create them here.
func (r *gormRepository) SaveProject(ctx context.Context, project *QueueProject) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error; err != nil {
		return fmt.Errorf("failed to save queue project %s: %w", project.ID, err)
	}
	return nil
}

func (r *gormRepository) AppendDecision(ctx context.Context, record *DecisionRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to append decision record: %w", err)
	}
	return nil
}

func (r *gormRepository) ListComments(ctx context.Context, projectID string) ([]Comment, error) {
	var comments []Comment
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *gormRepository) AddComment(ctx context.Context, comment *Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *gormRepository) SetLock(ctx context.Context, projectID string, owner *string) error {
	err := r.db.WithContext(ctx).Model(&QueueProject{}).
		Where("id = ?", projectID).
		Update("lock_owner", owner).Error
	if err != nil {
		return fmt.Errorf("failed to update lock: %w", err)
	}
	return nil
}

// Service is the effect wrapper around the pure decision transition
type Service struct {
	repo     Repository
	notifier DecisionNotifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates the verification service
func NewService(repo Repository, notifier DecisionNotifier, logger *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

// Queue returns the review queue in priority order plus its stats
func (s *Service) Queue(ctx context.Context) ([]QueueProject, QueueStats, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, QueueStats{}, err
	}
	return SortPendingProjects(projects), ComputeQueueStats(projects), nil
}

// Decide applies a reviewer's verdict. On success the snapshot is persisted,
// the decision record appended, and the notifier dispatched; validation and
// precondition failures leave everything untouched.
func (s *Service) Decide(ctx context.Context, projectID string, in DecisionInput) (*QueueProject, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	next, record, err := ApplyDecision(*project, in, s.now())
	if err != nil {
		return nil, err
	}

	// Decision clears the reviewer's lock
	next.LockOwner = nil

	// AppendDecision is the sole insert path for the record. The persisted
	// snapshot carries only history already on record.
	persist := next
	persist.DecisionHistory = persist.DecisionHistory[:len(persist.DecisionHistory)-1]
	if err := s.repo.SaveProject(ctx, &persist); err != nil {
		return nil, err
	}
	if err := s.repo.AppendDecision(ctx, &record); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.DecisionMade(ctx, record, next.Name); err != nil {
			s.logger.Error("Failed to dispatch decision notification",
				zap.String("project_id", projectID), zap.Error(err))
		}
	}

	return &next, nil
}

// Lock marks a project as being reviewed by the given reviewer
func (s *Service) Lock(ctx context.Context, projectID, reviewerID string) error {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.LockOwner != nil && *project.LockOwner != reviewerID {
		return fmt.Errorf("%w (held by %s)", ErrProjectLocked, *project.LockOwner)
	}
	return s.repo.SetLock(ctx, projectID, &reviewerID)
}

// Unlock releases a reviewer's lock
func (s *Service) Unlock(ctx context.Context, projectID, reviewerID string) error {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.LockOwner != nil && *project.LockOwner != reviewerID {
		return fmt.Errorf("%w (held by %s)", ErrProjectLocked, *project.LockOwner)
	}
	return s.repo.SetLock(ctx, projectID, nil)
}

// CommentThread returns the project's discussion as a one-level tree
func (s *Service) CommentThread(ctx context.Context, projectID string) (Thread, error) {
	comments, err := s.repo.ListComments(ctx, projectID)
	if err != nil {
		return Thread{}, err
	}
	return BuildThread(comments), nil
}

// PostComment validates and stores a comment or reply. Empty content is
// silently ignored, mirroring the submission form behavior.
func (s *Service) PostComment(ctx context.Context, projectID string, parentID *string, author, content string) error {
	before := []Comment{}
	after := AddComment(before, projectID, parentID, author, content, s.now())
	if len(after) == len(before) {
		return nil
	}
	return s.repo.AddComment(ctx, &after[len(after)-1])
}
