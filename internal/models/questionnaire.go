package models

import (
	"time"
)

type Questionnaire struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	Title            string `json:"title" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	IntroductionText string `json:"introduction_text" gorm:"type:text;not null" validate:"required"`
	ThankYouText     string `json:"thank_you_text" gorm:"type:text;not null" validate:"required"`
	Active           bool   `json:"active" gorm:"default:false;index"`

	// Metadata
	CreatedBy string    `json:"created_by" gorm:"not null;size:255;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuestionnaireID;constraint:OnDelete:CASCADE"`
	Creator   *User      `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
}

func (Questionnaire) TableName() string {
	return "questionnaires"
}

// Question is a multiple choice question. QuestionOrder is unique within its
// questionnaire and defines the presentation sequence.
type Question struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	QuestionnaireID uint   `json:"questionnaire_id" gorm:"not null;uniqueIndex:idx_question_order"`
	QuestionOrder   int    `json:"question_order" gorm:"not null;uniqueIndex:idx_question_order"`
	QuestionText    string `json:"question_text" gorm:"not null;size:255"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (Question) TableName() string {
	return "questions"
}

type Option struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	QuestionID  uint   `json:"question_id" gorm:"not null;uniqueIndex:idx_option_order"`
	OptionOrder int    `json:"option_order" gorm:"not null;uniqueIndex:idx_option_order"`
	OptionText  string `json:"option_text" gorm:"not null;size:255"`
	IsCorrect   bool   `json:"is_correct" gorm:"column:is_correct_option;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Option) TableName() string {
	return "options"
}
