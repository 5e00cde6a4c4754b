package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/loop-labs/quiz-service/internal/catalog"
	"github.com/loop-labs/quiz-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogExcelRoundTrip(t *testing.T) {
	service := NewImportExportService(utils.NewSlogLogger(slog.Default()))
	original := catalog.Default().Questions()

	exported, err := service.ExportCatalogToExcel(context.Background(), original)
	require.NoError(t, err)
	require.NotEmpty(t, exported)

	imported, err := service.ImportCatalogFromExcel(context.Background(), bytes.NewReader(exported))
	require.NoError(t, err)
	assert.Equal(t, original, imported)
}

func TestImportRejectsEmptyWorkbook(t *testing.T) {
	service := NewImportExportService(utils.NewSlogLogger(slog.Default()))

	exported, err := service.ExportCatalogToExcel(context.Background(), nil)
	require.NoError(t, err)

	_, err = service.ImportCatalogFromExcel(context.Background(), bytes.NewReader(exported))
	assert.ErrorIs(t, err, ErrImportNoQuestions)
}
