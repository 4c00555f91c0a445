package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBRepo indexes the per-industry files for ad-hoc queries. An empty path
// opens an in-memory database; nothing is persisted beyond the CSV files.
type DuckDBRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewDuckDBRepo(path string, logger *slog.Logger) (*DuckDBRepo, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &DuckDBRepo{db: db, logger: logger}, nil
}

func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// LoadChainFiles (re)creates chain_records from every per-industry file in dir.
func (r *DuckDBRepo) LoadChainFiles(ctx context.Context, dir string) (int, error) {
	files, err := ChainFiles(dir)
	if err != nil {
		return 0, err
	}

	if len(files) == 0 {
		_, err := r.db.ExecContext(ctx, `
		CREATE OR REPLACE TABLE chain_records (
			chain_code TEXT,
			position TEXT,
			subcategory TEXT,
			code TEXT,
			name TEXT
		);`)
		return 0, err
	}

	glob := filepath.Join(dir, chainFilePrefix+"*"+chainFileSuffix)
	query := fmt.Sprintf(`
	CREATE OR REPLACE TABLE chain_records AS
	SELECT
		regexp_extract(filename, '%s([A-Za-z0-9]+)\.csv$', 1) AS chain_code,
		coalesce(trim("%s"), '') AS position,
		coalesce(trim("%s"), '') AS subcategory,
		coalesce(trim("%s"), '') AS code,
		coalesce(trim("%s"), '') AS name
	FROM read_csv('%s', header = true, all_varchar = true, union_by_name = true, filename = true);`,
		chainFilePrefix, colPosition, colSubcategory, colCode, colName, quote(glob))
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return 0, fmt.Errorf("load chain files: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM chain_records").Scan(&n); err != nil {
		return 0, err
	}
	r.logger.Debug("Loaded chain files", "files", len(files), "rows", n)
	return n, nil
}

// ForeignNames returns the distinct names that have no stock code, sorted.
func (r *DuckDBRepo) ForeignNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT name FROM chain_records WHERE code = '' AND name <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

type SearchFilter struct {
	Name     string // case-insensitive contains
	Code     string
	Chain    string
	Position string
}

func (f SearchFilter) where() string {
	where := []string{"TRUE"}
	if f.Name != "" {
		where = append(where, fmt.Sprintf("lower(name) LIKE '%%%s%%'", quote(strings.ToLower(f.Name))))
	}
	if f.Code != "" {
		where = append(where, fmt.Sprintf("code = '%s'", quote(f.Code)))
	}
	if f.Chain != "" {
		where = append(where, fmt.Sprintf("chain_code = '%s'", quote(strings.ToUpper(f.Chain))))
	}
	if f.Position != "" {
		where = append(where, fmt.Sprintf("position = '%s'", quote(f.Position)))
	}
	return strings.Join(where, " AND ")
}

// ExportSearch copies the matching chain records to a CSV file.
func (r *DuckDBRepo) ExportSearch(ctx context.Context, path string, f SearchFilter) (int, error) {
	var n int
	count := fmt.Sprintf("SELECT count(*) FROM chain_records WHERE %s", f.where())
	if err := r.db.QueryRowContext(ctx, count).Scan(&n); err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		COPY (
			SELECT chain_code, position, subcategory, code, name
			FROM chain_records
			WHERE %s
			ORDER BY chain_code, code, name
		) TO '%s' (HEADER, DELIMITER ',');`, f.where(), quote(path))
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DuckDBRepo) Close() error {
	return r.db.Close()
}
