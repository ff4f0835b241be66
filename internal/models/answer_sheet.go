package models

import "time"

// AnswerSheet is one user's single attempt at one questionnaire. At most one
// sheet exists per (questionnaire, user) pair.
type AnswerSheet struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	QuestionnaireID uint   `json:"questionnaire_id" gorm:"not null;uniqueIndex:idx_sheet_questionnaire_user"`
	UserID          string `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_sheet_questionnaire_user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"` // date last updated

	// Relations
	Questionnaire *Questionnaire `json:"questionnaire,omitempty" gorm:"foreignKey:QuestionnaireID"`
	User          *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Answers       []Answer       `json:"answers,omitempty" gorm:"foreignKey:AnswerSheetID;constraint:OnDelete:CASCADE"`
}

func (AnswerSheet) TableName() string {
	return "answer_sheets"
}

// Answer records the option a user chose for one question on a sheet.
type Answer struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	AnswerSheetID  uint `json:"answer_sheet_id" gorm:"not null;uniqueIndex:idx_answer_sheet_question"`
	QuestionID     uint `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_sheet_question"`
	ChosenOptionID uint `json:"chosen_option_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at"`

	Question     *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChosenOption *Option   `json:"chosen_option,omitempty" gorm:"foreignKey:ChosenOptionID"`
}

func (Answer) TableName() string {
	return "answers"
}

// IsCorrect reports whether the chosen option is flagged correct. The option
// must be preloaded.
func (a *Answer) IsCorrect() bool {
	return a.ChosenOption != nil && a.ChosenOption.IsCorrect
}
