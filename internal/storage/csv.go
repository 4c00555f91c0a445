package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shanehull/icchain/internal/model"
)

// Column headers of the flat files shared with downstream spreadsheets.
const (
	colPosition    = "位置"
	colSubcategory = "子分類"
	colCode        = "代號"
	colName        = "名稱"
	colChainCode   = "產業鏈代碼"
	colChainName   = "產業鏈名稱"
	colUpstream    = "上游公司"
	colDownstream  = "下游公司"
	colSymbol      = "股票代號"
	colExchange    = "交易所"
)

const (
	chainFilePrefix = "raw_SupplyChain_"
	chainFileSuffix = ".csv"

	MapFile          = "raw_SupplyChainMap.csv"
	ForeignFile      = "raw_non-TWSE-TPEX.csv"
	ForeignSeedFile  = "raw_SupplyChain-non-TWSE-TPEX.csv"
	DefaultWatchlist = "StockID_TWSE_TPEX.csv"
)

var (
	chainHeader   = []string{colPosition, colSubcategory, colCode, colName}
	mapHeader     = []string{colCode, colName, colChainCode, colChainName, colPosition, colSubcategory, colUpstream, colDownstream}
	foreignHeader = []string{colName, colSymbol, colExchange}
)

func ChainFile(dir, code string) string {
	return filepath.Join(dir, chainFilePrefix+code+chainFileSuffix)
}

// ChainRow is one line of a per-industry file.
type ChainRow struct {
	Position    model.Position
	Subcategory string
	Code        string
	Name        string
}

// ChainTable is the content of one per-industry file.
type ChainTable struct {
	Code string
	Rows []ChainRow
}

// row reads named columns from a CSV record.
type row struct {
	cols   map[string]int
	record []string
}

func (r row) get(key string) string {
	if idx, ok := r.cols[key]; ok && idx < len(r.record) {
		return strings.TrimSpace(r.record[idx])
	}
	return ""
}

// readRows opens a headed CSV and calls fn for every data row.
func readRows(path string, fn func(row)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int)
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		cols[strings.TrimSpace(name)] = i
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		fn(row{cols: cols, record: record})
	}
}

// writeRows replaces path with a CSV holding header and rows.
func writeRows(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteChainCSV writes one industry file. Records without a stock code take
// the symbol from foreignCodes when their name is listed there.
func WriteChainCSV(path string, records []model.ChainRecord, foreignCodes map[string]string) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		code := r.StockCode
		if code == "" {
			code = foreignCodes[r.StockName]
		}
		rows = append(rows, []string{string(r.Position), r.Subcategory, code, r.StockName})
	}
	return writeRows(path, chainHeader, rows)
}

// ReadChainTables loads every per-industry file in dir, ordered by file name.
func ReadChainTables(dir string) ([]ChainTable, error) {
	paths, err := ChainFiles(dir)
	if err != nil {
		return nil, err
	}

	tables := make([]ChainTable, 0, len(paths))
	for _, path := range paths {
		table := ChainTable{Code: chainCodeFromFile(path)}
		err := readRows(path, func(r row) {
			table.Rows = append(table.Rows, ChainRow{
				Position:    model.Position(r.get(colPosition)),
				Subcategory: r.get(colSubcategory),
				Code:        r.get(colCode),
				Name:        r.get(colName),
			})
		})
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// ChainFiles lists the per-industry files in dir, sorted by name.
func ChainFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, chainFilePrefix) || !strings.HasSuffix(name, chainFileSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

func chainCodeFromFile(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimPrefix(name, chainFilePrefix), chainFileSuffix)
}

// ReadWatchlist loads the watchlist, dropping blank and sentinel codes.
func ReadWatchlist(path string) ([]model.WatchlistEntry, error) {
	var list []model.WatchlistEntry
	err := readRows(path, func(r row) {
		e := model.WatchlistEntry{Code: r.get(colCode), Name: r.get(colName)}
		if e.Valid() {
			list = append(list, e)
		}
	})
	return list, err
}

// WriteMapCSV writes the aggregated supply chain map.
func WriteMapCSV(path string, rows []model.MapRow) error {
	out := make([][]string, 0, len(rows))
	for _, m := range rows {
		out = append(out, []string{
			m.Code,
			m.Name,
			m.ChainCode,
			m.ChainName,
			m.PositionField(),
			m.SubcategoryField(),
			m.UpstreamField(),
			m.DownstreamField(),
		})
	}
	return writeRows(path, mapHeader, out)
}

// ReadForeignMappings loads a name/symbol/exchange file keyed by name. A
// missing file is not an error and yields an empty map.
func ReadForeignMappings(path string) (map[string]model.ForeignMapping, error) {
	mappings := make(map[string]model.ForeignMapping)
	err := readRows(path, func(r row) {
		m := model.ForeignMapping{
			Name:     r.get(colName),
			Symbol:   r.get(colSymbol),
			Exchange: r.get(colExchange),
		}
		if m.Name != "" {
			mappings[m.Name] = m
		}
	})
	if errors.Is(err, fs.ErrNotExist) {
		return mappings, nil
	}
	return mappings, err
}

// ForeignCodes reduces mappings to the names that carry a symbol.
func ForeignCodes(mappings map[string]model.ForeignMapping) map[string]string {
	codes := make(map[string]string, len(mappings))
	for name, m := range mappings {
		if m.Symbol != "" {
			codes[name] = m.Symbol
		}
	}
	return codes
}

// WriteForeignMappings writes mappings in the given order.
func WriteForeignMappings(path string, mappings []model.ForeignMapping) error {
	rows := make([][]string, 0, len(mappings))
	for _, m := range mappings {
		rows = append(rows, []string{m.Name, m.Symbol, m.Exchange})
	}
	return writeRows(path, foreignHeader, rows)
}
