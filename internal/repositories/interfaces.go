package repositories

import (
	"fmt"
	"time"
)

// ===== ORDERING =====

// Ordering names the column a sequence is retrieved by. Every list query
// takes one explicitly; models carry no default ordering.
type Ordering struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// Clause renders the ordering as an ORDER BY fragment. Field must be one of
// the whitelisted columns.
func (o Ordering) Clause() (string, error) {
	if !orderableFields[o.Field] {
		return "", fmt.Errorf("unsupported ordering field %q", o.Field)
	}
	if o.Desc {
		return o.Field + " DESC", nil
	}
	return o.Field + " ASC", nil
}

var orderableFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"title":            true,
	"question_order":   true,
	"option_order":     true,
	"questionnaire_id": true,
	"user_id":          true,
}

var (
	ByQuestionOrder = Ordering{Field: "question_order"}
	ByOptionOrder   = Ordering{Field: "option_order"}
	// ByRecency is the natural ordering of questionnaires: newest first.
	ByRecency = Ordering{Field: "created_at", Desc: true}
)

// ===== SHARED FILTER STRUCTS =====

type QuestionnaireFilters struct {
	Active    *bool      `json:"active"`
	CreatedBy *string    `json:"created_by"`
	Search    string     `json:"search"`
	DateFrom  *time.Time `json:"date_from"`
	DateTo    *time.Time `json:"date_to"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	SortBy    string     `json:"sort_by"`    // "created_at", "title"
	SortOrder string     `json:"sort_order"` // "asc", "desc"
}

// Ordering converts the sort fields of the filter, defaulting to recency.
func (f QuestionnaireFilters) Ordering() Ordering {
	if f.SortBy == "" {
		return ByRecency
	}
	return Ordering{Field: f.SortBy, Desc: f.SortOrder != "asc"}
}

// ===== SHARED HELPER STRUCTS =====

// SheetOrder sorts answer sheets by questionnaire then user, the order
// exports are written in.
var SheetOrder = []Ordering{{Field: "questionnaire_id"}, {Field: "user_id"}}
