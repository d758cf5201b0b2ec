package services

import (
	"context"
	"strings"

	"github.com/rohits-web03/filehub/internal/models"
	"gorm.io/gorm"
)

const msgTagNotFound = "Tag not found or access denied"

// TagService manages the global tag vocabulary. Tags have no owner.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// TagOption is the {label, value} projection used by selection widgets.
type TagOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (s *TagService) List(ctx context.Context) ([]models.Tag, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	tags := []models.Tag{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) Options(ctx context.Context) ([]TagOption, error) {
	tags, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]TagOption, len(tags))
	for i, t := range tags {
		options[i] = TagOption{Label: t.Name, Value: t.ID}
	}
	return options, nil
}

func (s *TagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	name, err := tagName(name)
	if err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: name}
	if err := s.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag and every link to it.
func (s *TagService) Delete(ctx context.Context, id string) (*models.Tag, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	var tag models.Tag
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&tag).Error; err != nil {
			return notFoundOr(err, msgTagNotFound)
		}
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.FileTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update renames a tag and refreshes its update timestamp.
func (s *TagService) Update(ctx context.Context, id, name string) (*models.Tag, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	name, err := tagName(name)
	if err != nil {
		return nil, err
	}

	var tag models.Tag
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&tag).Error; err != nil {
			return notFoundOr(err, msgTagNotFound)
		}
		return tx.Model(&tag).Update("name", name).Error
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func tagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", badRequest("name is required")
	}
	return name, nil
}
