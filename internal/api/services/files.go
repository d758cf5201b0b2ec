package services

import (
	"context"
	"strings"

	"github.com/rohits-web03/filehub/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	msgFileNotFound = "File not found or access denied"
)

type FileService struct {
	db *gorm.DB
	// strictOwnership limits UpdatePosition and AddTags to the file owner.
	strictOwnership bool
}

func NewFileService(db *gorm.DB, strictOwnership bool) *FileService {
	return &FileService{db: db, strictOwnership: strictOwnership}
}

type CreateFileInput struct {
	Name string          `json:"name"`
	URL  string          `json:"url"`
	Type models.FileType `json:"type"`
	Size int64           `json:"size"`
	Tags []string        `json:"tags,omitempty"`
}

func (in CreateFileInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return badRequest("name is required")
	case strings.TrimSpace(in.URL) == "":
		return badRequest("url is required")
	case !in.Type.Valid():
		return badRequest("type must be image or video")
	case in.Size < 0:
		return badRequest("size must not be negative")
	}
	return nil
}

// FileDetail is a file together with its tags.
type FileDetail struct {
	models.File
	Tags []models.TagRef `json:"tags"`
}

type FileListItem struct {
	FileDetail
	ViewCount int64 `json:"viewCount"`
}

type FilePage struct {
	Items      []FileListItem `json:"items"`
	NextCursor int            `json:"nextCursor"`
}

type FileStats struct {
	File       FileDetail `json:"file"`
	ViewsCount int64      `json:"viewsCount"`
}

// Viewer identifies who is looking at a shared file. An empty IPAddress records no view.
type Viewer struct {
	IPAddress string
	UserAgent string
}

// Create stores the metadata of an uploaded object owned by the caller and links the given tags.
// Tag checks, the file insert and the links share one transaction.
func (s *FileService) Create(ctx context.Context, in CreateFileInput) (*models.File, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	tagIDs := uniqueIDs(in.Tags)
	file := &models.File{
		Name:   strings.TrimSpace(in.Name),
		URL:    strings.TrimSpace(in.URL),
		Type:   in.Type,
		Size:   in.Size,
		UserID: &userID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureTagsExist(tx, tagIDs); err != nil {
			return err
		}
		if err := tx.Create(file).Error; err != nil {
			return err
		}
		return linkTags(tx, file.ID, tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// List returns one page of files, newest first, with tags and view counts.
func (s *FileService) List(ctx context.Context, limit, cursor int) (*FilePage, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	limit = clampLimit(limit, DefaultPageSize, MaxPageSize)
	if cursor < 0 {
		cursor = 0
	}

	var files []models.File
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(cursor).
		Find(&files).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}

	var (
		tags  map[string][]models.TagRef
		views map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tags, err = tagsByFile(s.db.WithContext(gctx), ids)
		return err
	})
	g.Go(func() (err error) {
		views, err = viewCounts(s.db.WithContext(gctx), ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]FileListItem, len(files))
	for i, f := range files {
		items[i] = FileListItem{
			FileDetail: FileDetail{File: f, Tags: orEmpty(tags[f.ID])},
			ViewCount:  views[f.ID],
		}
	}
	return &FilePage{Items: items, NextCursor: cursor + limit}, nil
}

// UpdatePosition sets the manual ordering field of a file.
func (s *FileService) UpdatePosition(ctx context.Context, id string, position int) (*models.File, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	var file models.File
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ownedFile(tx, id, userID).First(&file).Error; err != nil {
			return notFoundOr(err, msgFileNotFound)
		}
		return tx.Model(&file).Update("position", position).Error
	})
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// AddTags links existing tags to a file. Links that already exist are left as they are.
func (s *FileService) AddTags(ctx context.Context, fileID string, tagIDs []string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		return badRequest("tagIds must not be empty")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var file models.File
		if err := s.ownedFile(tx, fileID, userID).First(&file).Error; err != nil {
			return notFoundOr(err, msgFileNotFound)
		}
		if err := ensureTagsExist(tx, tagIDs); err != nil {
			return err
		}
		return linkTags(tx, file.ID, tagIDs)
	})
}

// GetByID is the public share lookup. Every call with a viewer IP appends one view.
func (s *FileService) GetByID(ctx context.Context, id string, viewer Viewer) (*FileDetail, error) {
	detail, err := s.detail(ctx, id, "File not found")
	if err != nil {
		return nil, err
	}

	if viewer.IPAddress != "" {
		view := &models.FileView{
			FileID:    detail.ID,
			IPAddress: viewer.IPAddress,
			UserAgent: viewer.UserAgent,
		}
		if err := s.db.WithContext(ctx).Create(view).Error; err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// Delete removes a file owned by the caller along with its tag links and views.
func (s *FileService) Delete(ctx context.Context, id string) (*models.File, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	var file models.File
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&file).Error
		if err != nil {
			return notFoundOr(err, msgFileNotFound)
		}
		if err := tx.Where("file_id = ?", file.ID).Delete(&models.FileTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("file_id = ?", file.ID).Delete(&models.FileView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&file).Error
	})
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *FileService) GetStats(ctx context.Context, id string) (*FileStats, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	var (
		detail *FileDetail
		views  map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail, err = s.detail(gctx, id, msgFileNotFound)
		return err
	})
	g.Go(func() (err error) {
		views, err = viewCounts(s.db.WithContext(gctx), []string{id})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &FileStats{File: *detail, ViewsCount: views[id]}, nil
}

func (s *FileService) detail(ctx context.Context, id, missing string) (*FileDetail, error) {
	db := s.db.WithContext(ctx)

	var file models.File
	if err := db.Where("id = ?", id).First(&file).Error; err != nil {
		return nil, notFoundOr(err, missing)
	}
	tags, err := tagsByFile(db, []string{file.ID})
	if err != nil {
		return nil, err
	}
	return &FileDetail{File: file, Tags: orEmpty(tags[file.ID])}, nil
}

func (s *FileService) ownedFile(tx *gorm.DB, id, userID string) *gorm.DB {
	q := tx.Where("id = ?", id)
	if s.strictOwnership {
		q = q.Where("user_id = ?", userID)
	}
	return q
}

func ensureTagsExist(tx *gorm.DB, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return badRequest("One or more tag IDs do not exist")
	}
	return nil
}

func linkTags(tx *gorm.DB, fileID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]models.FileTag, len(tagIDs))
	for i, tagID := range tagIDs {
		links[i] = models.FileTag{FileID: fileID, TagID: tagID}
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
