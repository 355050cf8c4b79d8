package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lager-api/internal/application/report"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/lager-api/internal/infrastructure/memory"
	"github.com/jhoicas/lager-api/pkg/logger"
)

type fakeGenerator struct {
	got *report.Report
	err error
}

func (f *fakeGenerator) Generate(_ context.Context, r *report.Report) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func TestExportInventoryReport_AvisaArticulosSinCosto(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	items := kvstore.NewInventoryRepository(kv)
	cats := kvstore.NewCategoryRepository(kv)
	require.NoError(t, cats.Save(ctx, []entity.Category{{ID: "1", Name: "Burger"}}))
	require.NoError(t, items.Save(ctx, []entity.InventoryItem{{ID: "a", Name: "Pickles", Category: "1", WarehouseQty: 3}}))

	var logs bytes.Buffer
	gen := &fakeGenerator{}
	uc := report.NewReportUseCase(items, cats, report.NewBuilder("", "en-US", time.UTC), gen,
		logger.New(logger.Config{Env: "production", Level: "info", Output: &logs}))

	pdf, name, err := uc.ExportInventoryReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "inventory_report.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, gen.got)
	assert.Equal(t, 1, gen.got.MissingCost)
	assert.Contains(t, logs.String(), `"items_without_cost":1`)
}

func TestExportInventoryReport_ErrorDelGenerador(t *testing.T) {
	kv := memory.NewKVStore()
	gen := &fakeGenerator{err: errors.New("boom")}
	uc := report.NewReportUseCase(kvstore.NewInventoryRepository(kv), kvstore.NewCategoryRepository(kv),
		report.NewBuilder("", "", nil), gen, nil)

	_, _, err := uc.ExportInventoryReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	require.NotNil(t, gen.got)
	assert.True(t, gen.got.Empty)
}
