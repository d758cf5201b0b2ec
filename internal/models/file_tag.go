package models

// FileTag links one file to one tag.
type FileTag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	FileID string `json:"fileId" gorm:"type:varchar(255);not null;uniqueIndex:idx_file_tag"`
	TagID  string `json:"tagId" gorm:"type:varchar(255);not null;uniqueIndex:idx_file_tag;index"`
}
