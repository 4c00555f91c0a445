package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shanehull/icchain/internal/model"
	"github.com/shanehull/icchain/internal/source"
	"github.com/shanehull/icchain/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	pages map[string]*source.ChainPage
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(_ context.Context, chain model.Chain) (*source.ChainPage, error) {
	page, ok := s.pages[chain.Code]
	if !ok {
		return nil, errors.New("internal server error")
	}
	return page, nil
}

func TestPipeline(t *testing.T) {
	dataDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	src := &stubSource{pages: map[string]*source.ChainPage{
		"X000": {Code: "X000", Name: "水泥", Records: []model.ChainRecord{
			{ChainCode: "X000", Position: model.Upstream, Subcategory: "水泥原料", SubcategoryCode: "A1", StockCode: "1101", StockName: "台泥"},
			{ChainCode: "X000", Position: model.Downstream, Subcategory: "晶圓廠", SubcategoryCode: "A3", StockCode: "2330", StockName: "台積電"},
			{ChainCode: "X000", Position: model.Downstream, Subcategory: "晶圓廠", SubcategoryCode: "A3", StockName: "輝達"},
		}},
		"G000": {Code: "G000"},
	}}
	chains := []model.Chain{{Code: "X000", Label: "其他"}, {Code: "D000", Label: "半導體"}, {Code: "G000", Label: "平面顯示器"}}

	s := fetchAll(context.Background(), logger, src, chains, dataDir, map[string]string{"輝達": "NVDA"})
	assert.Equal(t, stats{Chains: 3, Written: 1, Empty: 1, Failed: 1, Records: 3, Foreign: 1}, s)

	b, err := os.ReadFile(storage.ChainFile(dataDir, "X000"))
	require.NoError(t, err)
	assert.Equal(t, "位置,子分類,代號,名稱\r\n上游,水泥原料,1101,台泥\r\n下游,晶圓廠,2330,台積電\r\n下游,晶圓廠,NVDA,輝達\r\n", string(b))
	assert.NoFileExists(t, storage.ChainFile(dataDir, "D000"))
	assert.NoFileExists(t, storage.ChainFile(dataDir, "G000"))

	watchlist := filepath.Join(t.TempDir(), storage.DefaultWatchlist)
	require.NoError(t, os.WriteFile(watchlist, []byte("代號,名稱\n0000,指數\n1101,台泥\n"), 0o644))

	require.NoError(t, buildMap(logger, dataDir, watchlist))
	b, err = os.ReadFile(filepath.Join(dataDir, storage.MapFile))
	require.NoError(t, err)
	assert.Equal(t,
		"代號,名稱,產業鏈代碼,產業鏈名稱,位置,子分類,上游公司,下游公司\r\n"+
			"1101,台泥,X000,其他,上游,水泥原料,,2330|台積電;NVDA|輝達\r\n",
		string(b))
}

func TestBuildMap_MissingWatchlist(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := buildMap(logger, t.TempDir(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestSelectChains(t *testing.T) {
	assert.Len(t, selectChains(""), len(model.Chains))
	got := selectChains(" d000,f000 ,NOPE")
	assert.Equal(t, []model.Chain{{Code: "F000", Label: "電腦及週邊設備"}, {Code: "D000", Label: "半導體"}}, got)
}
