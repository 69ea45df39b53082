// Package models defines the persisted entities of the localization store.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project corresponds to the projects table. A project owns translation keys
// and supports a set of languages through the project_languages junction.
type Project struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ProjectLanguages []ProjectLanguage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	TranslationKeys  []TranslationKey  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Language corresponds to the languages table. Identity is the language code
// (e.g. "en"); languages are shared across projects.
type Language struct {
	Code string `gorm:"type:varchar(16);primaryKey" json:"code"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Flag string `gorm:"type:varchar(16)" json:"flag,omitempty"`

	ProjectLanguages []ProjectLanguage `gorm:"foreignKey:LanguageCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
	Translations     []Translation     `gorm:"foreignKey:LanguageCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}

// ProjectLanguage corresponds to the project_languages junction table and
// defines which languages a project supports.
type ProjectLanguage struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_project_language" json:"project_id"`
	LanguageCode string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_project_language" json:"language_code"`
	CreatedAt    time.Time `json:"created_at"`

	Language Language `gorm:"foreignKey:LanguageCode;references:Code" json:"-"`
}

// TableName overrides the default pluralization ("project_languages").
func (ProjectLanguage) TableName() string {
	return "project_languages"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (pl *ProjectLanguage) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}
	return nil
}

// TranslationKey corresponds to the translation_keys table. The dotted key
// string is unique within its project.
type TranslationKey struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_project_key" json:"project_id"`
	Key         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_project_key" json:"key"`
	Category    string    `gorm:"type:varchar(255);not null" json:"category"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Translations []Translation `gorm:"foreignKey:TranslationKeyID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (k *TranslationKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// Translation corresponds to the translations table. At most one row exists
// per (translation_key_id, language_code); a missing translation is the
// absence of a row, never an empty value. Rows are overwritten in place on
// update, carrying updated_by attribution.
type Translation struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	TranslationKeyID string    `gorm:"type:uuid;not null;uniqueIndex:idx_translation_key_language" json:"translation_key_id"`
	LanguageCode     string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_translation_key_language" json:"language_code"`
	Value            string    `gorm:"type:text;not null" json:"value"`
	UpdatedBy        string    `gorm:"type:varchar(255)" json:"updated_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (t *Translation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
