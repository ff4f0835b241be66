package models

// QuestionnaireStatus is the progress of one user through one questionnaire.
type QuestionnaireStatus int

const (
	StatusPending    QuestionnaireStatus = 1
	StatusIncomplete QuestionnaireStatus = 2
	StatusCompleted  QuestionnaireStatus = 3
	// StatusRejected is kept for older exports; nothing resolves to it.
	StatusRejected QuestionnaireStatus = 4
)

const StatusLabelUnknown = "Unknown"

var statusLabels = map[QuestionnaireStatus]string{
	StatusPending:    "Pending",
	StatusIncomplete: "Incomplete",
	StatusCompleted:  "Completed",
	StatusRejected:   "Rejected",
}

// Label returns the human readable form used in exports and API responses.
func (s QuestionnaireStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return StatusLabelUnknown
}

func (s QuestionnaireStatus) String() string {
	return s.Label()
}
