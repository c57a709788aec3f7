package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap is a jsonb column holding a transformation config
type JSONMap map[string]any

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb value of type %T", value)
	}
	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, m)
}

// GormDataType tells gorm which column type to migrate
func (JSONMap) GormDataType() string {
	return "jsonb"
}

// Image represents the database model for transformed images
type Image struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	Title              string    `gorm:"not null;size:255"`
	TransformationType string    `gorm:"not null;size:50"`
	PublicID           string    `gorm:"not null;index;size:255"`
	SecureURL          string    `gorm:"not null;type:text"`
	TransformationURL  string    `gorm:"type:text"`
	Width              int       `gorm:"not null"`
	Height             int       `gorm:"not null"`
	AspectRatio        string    `gorm:"size:20"`
	Config             JSONMap   `gorm:"type:jsonb"`
	Color              string    `gorm:"size:100"`
	Prompt             string    `gorm:"type:text"`
	AuthorID           string    `gorm:"not null;index;size:36"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null;index"`

	// Define relationships
	Author User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Image
func (Image) TableName() string {
	return "images"
}
