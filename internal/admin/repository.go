package admin

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines admin project data access
type Repository interface {
	GetProject(ctx context.Context, id string) (*ProjectDetail, error)
	ListProjects(ctx context.Context) ([]ProjectDetail, error)
	SaveProject(ctx context.Context, project *ProjectDetail) error
	DeleteProject(ctx context.Context, id string) error
	AppendActivity(ctx context.Context, entry *ActivityEntry) error
	AddMRVDocument(ctx context.Context, doc *MRVDocument) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a gorm-backed admin project repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetProject(ctx context.Context, id string) (*ProjectDetail, error) {
	var project ProjectDetail
	err := r.db.WithContext(ctx).
		Preload("MRVDocuments").
		Preload("IssuanceHistory").
		Preload("ActivityLog").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", id, err)
	}
	return &project, nil
}

func (r *gormRepository) ListProjects(ctx context.Context) ([]ProjectDetail, error) {
	var projects []ProjectDetail
	if err := r.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// SaveProject persists project columns only. Association rows such as
// activity entries go through their dedicated append methods, so saving a
// snapshot that carries unsaved children must not insert them.
func (r *gormRepository) SaveProject(ctx context.Context, project *ProjectDetail) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error; err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ID, err)
	}
	return nil
}

func (r *gormRepository) DeleteProject(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&ProjectDetail{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return nil
}

func (r *gormRepository) AppendActivity(ctx context.Context, entry *ActivityEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

func (r *gormRepository) AddMRVDocument(ctx context.Context, doc *MRVDocument) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to add MRV document: %w", err)
	}
	return nil
}
