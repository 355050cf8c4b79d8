package scheduler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/scheduler"
)

type stubExporter struct {
	err   error
	calls int
}

func (s *stubExporter) ExportInventoryReport(context.Context) ([]byte, string, error) {
	s.calls++
	if s.err != nil {
		return nil, "", s.err
	}
	return []byte("%PDF-1.3 stub"), "inventory_report.pdf", nil
}

func TestExportNow_EscribeArchivo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	exp := &stubExporter{}
	s := scheduler.NewScheduler("", dir, exp, nil)

	path, err := s.ExportNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory_report.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 stub", string(data))
}

func TestExportNow_PropagaError(t *testing.T) {
	s := scheduler.NewScheduler("", t.TempDir(), &stubExporter{err: errors.New("sin datos")}, nil)
	_, err := s.ExportNow(context.Background())
	assert.EqualError(t, err, "sin datos")
}

func TestStart_ExpresionInvalida(t *testing.T) {
	s := scheduler.NewScheduler("cada lunes", t.TempDir(), &stubExporter{}, nil)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cada lunes")
}

func TestStart_SinExpresionNoProgramaNada(t *testing.T) {
	exp := &stubExporter{}
	s := scheduler.NewScheduler("", t.TempDir(), exp, nil)
	require.NoError(t, s.Start())
	s.Stop()
	assert.Zero(t, exp.calls)
}

func TestStart_ExpresionValida(t *testing.T) {
	s := scheduler.NewScheduler("0 6 * * *", t.TempDir(), &stubExporter{}, nil)
	require.NoError(t, s.Start())
	s.Stop()
}
