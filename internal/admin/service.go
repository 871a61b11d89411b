package admin

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"terra-carbon/market-portal/market-portal-backend/pkg/storage"
)

// ProjectUpdateNotifier is told about completed admin actions. It is invoked
// once per batch, never once per project.
type ProjectUpdateNotifier interface {
	ProjectsUpdated(ctx context.Context, action ProjectAction, projectIDs []string, actor string) error
}

// BatchResult reports the outcome of one batch action
type BatchResult struct {
	Action    ProjectAction     `json:"action"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// Service provides admin project operations
type Service struct {
	repo     Repository
	notifier ProjectUpdateNotifier
	docs     storage.S3Client
	bucket   string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates the admin project service
func NewService(repo Repository, notifier ProjectUpdateNotifier, docs storage.S3Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		docs:     docs,
		bucket:   bucket,
		logger:   logger,
		now:      time.Now,
	}
}

// GetProject loads a single project with its nested collections
func (s *Service) GetProject(ctx context.Context, id string) (*ProjectDetail, error) {
	return s.repo.GetProject(ctx, id)
}

// ListProjects returns the filtered, sorted project table
func (s *Service) ListProjects(ctx context.Context, filter TableFilterState) ([]ProjectDetail, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProjects(projects, filter), nil
}

// ExecuteAction runs one confirmed action over a batch of project ids. Every
// state change appends one activity entry; the notifier fires once for the
// whole batch.
func (s *Service) ExecuteAction(ctx context.Context, req ActionRequest) (*BatchResult, error) {
	if err := ValidateActionRequest(req); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Action: req.Action,
		Failed: make(map[string]string),
	}
	now := s.now()

	for _, id := range req.ProjectIDs {
		project, err := s.repo.GetProject(ctx, id)
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}

		next, deleted, err := ApplyProjectAction(*project, req.Action, req.Actor, req.Reason, now)
		if err != nil {
			result.Failed[id] = err.Error()
			continue
		}

		// AppendActivity is the sole insert path for audit rows. The saved
		// snapshot keeps only the entries already on record.
		entry := next.ActivityLog[len(next.ActivityLog)-1]
		next.ActivityLog = next.ActivityLog[:len(next.ActivityLog)-1]
		if deleted {
			if err := s.repo.DeleteProject(ctx, id); err != nil {
				result.Failed[id] = err.Error()
				continue
			}
		} else {
			if err := s.repo.SaveProject(ctx, &next); err != nil {
				result.Failed[id] = err.Error()
				continue
			}
		}
		if err := s.repo.AppendActivity(ctx, &entry); err != nil {
			s.logger.Error("Failed to persist activity entry",
				zap.String("project_id", id), zap.Error(err))
		}

		result.Succeeded = append(result.Succeeded, id)
	}

	if len(result.Succeeded) > 0 && s.notifier != nil {
		if err := s.notifier.ProjectsUpdated(ctx, req.Action, result.Succeeded, req.Actor); err != nil {
			s.logger.Error("Failed to dispatch project update notification", zap.Error(err))
		}
	}

	return result, nil
}

// UploadMRVDocument stores a new MRV file and records it against the project
func (s *Service) UploadMRVDocument(ctx context.Context, projectID, fileName string, size int64, content io.Reader, actor string) (*MRVDocument, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := fmt.Sprintf("mrv/%s/%d-%s", project.ID, now.UnixMilli(), fileName)
	if err := s.docs.Upload(ctx, s.bucket, key, content); err != nil {
		return nil, fmt.Errorf("failed to store MRV document: %w", err)
	}

	doc := &MRVDocument{
		ProjectID:  project.ID,
		FileName:   fileName,
		Status:     MRVPendingReview,
		UploadedAt: now,
		SizeBytes:  size,
		StorageKey: key,
	}
	if err := s.repo.AddMRVDocument(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.repo.AppendActivity(ctx, &ActivityEntry{
		ProjectID: project.ID,
		Action:    "MRV_DOCUMENT_UPLOADED",
		Actor:     actor,
		Reason:    fileName,
		CreatedAt: now,
	}); err != nil {
		s.logger.Error("Failed to persist activity entry",
			zap.String("project_id", projectID), zap.Error(err))
	}

	return doc, nil
}
