package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:255"`
	Username string `json:"username" gorm:"uniqueIndex;not null;size:150"`
	FullName string `json:"full_name" gorm:"size:100"`
	Email    string `json:"email" gorm:"size:255"`

	// Settings
	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb"`

	// Status
	IsActive bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserPreferences is the decoded form of User.Preferences.
type UserPreferences struct {
	DeclineSurveys bool `json:"decline_surveys"`
}

func (u *User) GetPreferences() UserPreferences {
	var prefs UserPreferences
	if len(u.Preferences) == 0 {
		return prefs
	}
	_ = json.Unmarshal(u.Preferences, &prefs)
	return prefs
}

func (u *User) SetPreferences(prefs UserPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	u.Preferences = datatypes.JSON(raw)
	return nil
}

// DisplayName is the name shown in exports.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.ID
}
