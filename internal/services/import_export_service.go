package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ImportExportService moves the question catalog in and out of XLSX
// workbooks so operators can author quizzes in a spreadsheet. One row per
// question; choices are pipe-separated; the correct column holds an index,
// a comma-separated index list, or the expected text depending on variant.
type ImportExportService interface {
	ImportCatalogFromExcel(ctx context.Context, reader io.Reader) ([]models.Question, error)
	ExportCatalogToExcel(ctx context.Context, questions []models.Question) ([]byte, error)
}

type importExportService struct {
	logger utils.Logger
}

func NewImportExportService(logger utils.Logger) ImportExportService {
	return &importExportService{logger: logger}
}

const (
	catalogSheet    = "Questions"
	choiceSeparator = "|"
)

var catalogHeader = []string{"id", "type", "question", "choices", "correct"}

func (s *importExportService) ImportCatalogFromExcel(ctx context.Context, reader io.Reader) ([]models.Question, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(catalogSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", catalogSheet, err)
	}
	if len(rows) <= 1 {
		return nil, ErrImportNoQuestions
	}

	headerMap := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range catalogHeader[:3] {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrImportUnsupportedFormat, required)
		}
	}

	questions := make([]models.Question, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		q, err := s.parseRow(row, headerMap, rowNum+2)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := catalog.Validate(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}

	s.logger.InfoContext(ctx, "Imported catalog from workbook", "questions", len(questions))
	return questions, nil
}

func (s *importExportService) parseRow(row []string, headerMap map[string]int, rowNum int) (models.Question, error) {
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	q := models.Question{
		ID:     cell("id"),
		Type:   models.QuestionType(cell("type")),
		Prompt: cell("question"),
	}

	if choices := cell("choices"); choices != "" {
		for _, choice := range strings.Split(choices, choiceSeparator) {
			q.Choices = append(q.Choices, strings.TrimSpace(choice))
		}
	}

	correct := cell("correct")
	switch q.Type {
	case models.QuestionRadio:
		idx, err := strconv.Atoi(correct)
		if err != nil {
			return models.Question{}, fmt.Errorf("row %d: radio correct column must be an index: %w", rowNum, err)
		}
		q.CorrectIndex = &idx
	case models.QuestionCheckbox:
		for _, part := range strings.Split(correct, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return models.Question{}, fmt.Errorf("row %d: checkbox correct column must be index list: %w", rowNum, err)
			}
			q.CorrectIndexes = append(q.CorrectIndexes, idx)
		}
	case models.QuestionText:
		q.CorrectText = correct
	default:
		return models.Question{}, fmt.Errorf("row %d: unknown question type %q", rowNum, q.Type)
	}

	return q, nil
}

func (s *importExportService) ExportCatalogToExcel(ctx context.Context, questions []models.Question) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(catalogSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, name := range catalogHeader {
		cellName, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(catalogSheet, cellName, name); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, q := range questions {
		values := []string{
			q.ID,
			string(q.Type),
			q.Prompt,
			strings.Join(q.Choices, choiceSeparator),
			formatCorrect(q),
		}
		for col, value := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(catalogSheet, cellName, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Exported catalog to workbook", "questions", len(questions))
	return buf.Bytes(), nil
}

func formatCorrect(q models.Question) string {
	switch q.Type {
	case models.QuestionRadio:
		if q.CorrectIndex == nil {
			return ""
		}
		return strconv.Itoa(*q.CorrectIndex)
	case models.QuestionCheckbox:
		parts := make([]string, len(q.CorrectIndexes))
		for i, idx := range q.CorrectIndexes {
			parts[i] = strconv.Itoa(idx)
		}
		return strings.Join(parts, ",")
	case models.QuestionText:
		return q.CorrectText
	default:
		return ""
	}
}
