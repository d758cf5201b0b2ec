package services

import (
	"strings"

	"github.com/rohits-web03/filehub/internal/models"
	"gorm.io/gorm"
)

// tagsByFile loads the tags linked to each of the given files, ordered by name.
func tagsByFile(db *gorm.DB, fileIDs []string) (map[string][]models.TagRef, error) {
	out := make(map[string][]models.TagRef, len(fileIDs))
	if len(fileIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		FileID string
		ID     string
		Name   string
	}
	err := db.Table("file_tags").
		Select("file_tags.file_id AS file_id, tags.id AS id, tags.name AS name").
		Joins("JOIN tags ON tags.id = file_tags.tag_id").
		Where("file_tags.file_id IN ?", fileIDs).
		Order("tags.name ASC").
		Order("tags.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.FileID] = append(out[r.FileID], models.TagRef{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// viewCounts counts view rows per file. Files without views are absent from the map.
func viewCounts(db *gorm.DB, fileIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(fileIDs))
	if len(fileIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		FileID string
		Views  int64
	}
	err := db.Model(&models.FileView{}).
		Select("file_id, COUNT(*) AS views").
		Where("file_id IN ?", fileIDs).
		Group("file_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.FileID] = r.Views
	}
	return out, nil
}

func orEmpty(tags []models.TagRef) []models.TagRef {
	if tags == nil {
		return []models.TagRef{}
	}
	return tags
}

// clampLimit keeps a page size within [1, max]; zero means def.
func clampLimit(limit, def, max int) int {
	switch {
	case limit == 0:
		return def
	case limit < 1:
		return 1
	case limit > max:
		return max
	}
	return limit
}

// uniqueIDs trims ids, drops blanks and keeps the first occurrence of each.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
