package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/events"
	"github.com/SAP-F-2025/survey-service/internal/export"
	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/repositories"
	"gorm.io/gorm"
)

const (
	// ExportTimeLayout renders sheet creation times in exports, always in UTC
	ExportTimeLayout = "2006-01-02 15:04:05"

	DefaultExportFilePrefix = "survey_answers"
)

var exportFixedColumns = []string{"User", "Questionnaire", "Date Submitted", "Status", "Score"}

type ExportConfig struct {
	Dir        string
	FilePrefix string
}

type exportService struct {
	repo      repositories.Repository
	progress  ProgressService
	publisher events.EventPublisher
	config    ExportConfig
	logger    *slog.Logger
	opLogger  *ServiceLogger
}

func NewExportService(repo repositories.Repository, progress ProgressService, publisher events.EventPublisher, config ExportConfig, logger *slog.Logger) ExportService {
	if config.FilePrefix == "" {
		config.FilePrefix = DefaultExportFilePrefix
	}
	return &exportService{
		repo:      repo,
		progress:  progress,
		publisher: publisher,
		config:    config,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "survey-service", Component: "export"}),
	}
}

// ExportHeader returns the fixed columns followed by maxAnswers
// question/answer column pairs.
func ExportHeader(maxAnswers int) []string {
	header := make([]string, 0, len(exportFixedColumns)+2*maxAnswers)
	header = append(header, exportFixedColumns...)
	for i := 1; i <= maxAnswers; i++ {
		header = append(header, fmt.Sprintf("Question %d", i), fmt.Sprintf("Answer %d", i))
	}
	return header
}

// ExportRow renders one sheet. Answers must be in question order with the
// question and chosen option preloaded; missing pairs are left empty.
func ExportRow(sheet *models.AnswerSheet, status models.QuestionnaireStatus, score int, answers []*models.Answer, maxAnswers int) []string {
	row := make([]string, len(exportFixedColumns)+2*maxAnswers)

	row[0] = sheet.UserID
	if name := sheet.User.DisplayName(); name != "" {
		row[0] = name
	}
	if sheet.Questionnaire != nil {
		row[1] = sheet.Questionnaire.Title
	}
	row[2] = sheet.CreatedAt.UTC().Format(ExportTimeLayout)
	row[3] = status.Label()
	row[4] = strconv.Itoa(score)

	for i, answer := range answers {
		if i >= maxAnswers {
			break
		}
		col := len(exportFixedColumns) + 2*i
		if answer.Question != nil {
			row[col] = answer.Question.QuestionText
		}
		if answer.ChosenOption != nil {
			row[col+1] = answer.ChosenOption.OptionText
		}
	}

	return row
}

type sheetAnswers struct {
	sheet   *models.AnswerSheet
	answers []*models.Answer
}

func (s *exportService) BuildRows(ctx context.Context) (*export.Table, error) {
	var loaded []sheetAnswers
	var maxAnswers int

	// One transaction keeps the width and the rows consistent
	err := s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		sheets, err := s.repo.AnswerSheet().List(ctx, tx, repositories.SheetOrder...)
		if err != nil {
			return fmt.Errorf("failed to list answer sheets: %w", err)
		}

		maxAnswers, err = s.repo.AnswerSheet().GetMaxAnswers(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to get max answers: %w", err)
		}

		loaded = make([]sheetAnswers, 0, len(sheets))
		for _, sheet := range sheets {
			answers, err := s.repo.Answer().GetBySheet(ctx, tx, sheet.ID)
			if err != nil {
				return fmt.Errorf("failed to get answers for sheet %d: %w", sheet.ID, err)
			}
			// Never truncate a sheet that grew past the precomputed width
			if len(answers) > maxAnswers {
				maxAnswers = len(answers)
			}
			loaded = append(loaded, sheetAnswers{sheet: sheet, answers: answers})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	table := &export.Table{
		Header: ExportHeader(maxAnswers),
		Rows:   make([][]string, 0, len(loaded)),
	}
	for _, item := range loaded {
		status, err := s.progress.SheetStatus(ctx, item.sheet)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, ExportRow(item.sheet, status, CalculateScore(item.answers), item.answers, maxAnswers))
	}

	return table, nil
}

func (s *exportService) ExportFileName(now time.Time) string {
	return s.fileName(now, models.ExportCSV)
}

func (s *exportService) fileName(now time.Time, format models.ExportFormat) string {
	return fmt.Sprintf("%s_%s.%s", s.config.FilePrefix, now.Format("20060102"), format)
}

// Export writes the table to w, the synchronous delivery mode
func (s *exportService) Export(ctx context.Context, w io.Writer, format models.ExportFormat) (summary *models.ExportSummary, err error) {
	op := s.opLogger.WithOperation(ctx, "export_answer_sheets", "")
	defer func() { op.LogResult(0, "answer_sheet", err) }()

	if !format.IsValid() {
		return nil, NewValidationError("format", "must be one of: csv, xlsx", format)
	}

	start := time.Now()
	table, err := s.BuildRows(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case models.ExportXLSX:
		err = export.WriteXLSX(w, table)
	default:
		err = export.WriteCSV(w, table)
	}
	if err != nil {
		return nil, err
	}

	return s.summary(table, s.fileName(start, format), format, start), nil
}

// ExportToFile writes the dated CSV file into the export directory, the
// batch delivery mode.
func (s *exportService) ExportToFile(ctx context.Context, now time.Time) (summary *models.ExportSummary, err error) {
	op := s.opLogger.WithOperation(ctx, "export_answer_sheets_file", "")
	defer func() { op.LogResult(0, "answer_sheet", err) }()

	start := time.Now()
	table, err := s.BuildRows(ctx)
	if err != nil {
		return nil, err
	}

	path, err := export.WriteCSVFile(s.config.Dir, s.ExportFileName(now), table)
	if err != nil {
		return nil, err
	}

	summary = s.summary(table, path, models.ExportCSV, start)

	event := events.NewExportGeneratedEvent(summary.FileName, string(summary.Format), summary.SheetCount, summary.MaxAnswers, summary.GeneratedAt)
	publishEvent(ctx, s.publisher, s.logger, event)

	return summary, nil
}

func (s *exportService) summary(table *export.Table, name string, format models.ExportFormat, start time.Time) *models.ExportSummary {
	return &models.ExportSummary{
		FileName:       name,
		Format:         format,
		SheetCount:     len(table.Rows),
		MaxAnswers:     (table.Width() - len(exportFixedColumns)) / 2,
		GeneratedAt:    time.Now().UTC(),
		ProcessingTime: time.Since(start),
	}
}
