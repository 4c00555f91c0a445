package model

import "strings"

type Position string

const (
	Upstream   Position = "上游"
	Midstream  Position = "中游"
	Downstream Position = "下游"
)

// Rank orders positions along the chain. Unknown positions rank 0.
func (p Position) Rank() int {
	switch p {
	case Upstream:
		return 1
	case Midstream:
		return 2
	case Downstream:
		return 3
	}
	return 0
}

func (p Position) Valid() bool { return p.Rank() > 0 }

type ChainRecord struct {
	ChainCode       string
	ChainName       string
	Position        Position
	Subcategory     string
	SubcategoryCode string
	StockCode       string // empty for companies without a TWSE/TPEx listing
	StockName       string
}

// Key is the dedup key within one chain page.
func (r ChainRecord) Key() string {
	id := r.StockCode
	if id == "" {
		id = r.StockName
	}
	return r.SubcategoryCode + ":" + id
}

func (r ChainRecord) IsForeign() bool {
	return r.StockCode == ""
}

type Chain struct {
	Code  string
	Label string
}

// Chains is the fixed list of industries scraped on every run, in run order.
var Chains = []Chain{
	{"F000", "電腦及週邊設備"},
	{"I000", "通信網路"},
	{"5300", "人工智慧"},
	{"5800", "運動科技"},
	{"D000", "半導體"},
	{"U000", "金融"},
	{"T000", "交通運輸及航運"},
	{"B000", "休閒娛樂"},
	{"R000", "軟體服務"},
	{"C100", "製藥"},
	{"5500", "資通訊安全"},
	{"V000", "貿易百貨"},
	{"R300", "電子商務"},
	{"5200", "金融科技"},
	{"L000", "印刷電路板"},
	{"C200", "醫療器材"},
	{"M000", "食品"},
	{"X000", "其他"},
	{"6000", "自動化"},
	{"G000", "平面顯示器"},
	{"P000", "電機機械"},
}

// ChainLabel returns the fixed label for code, or code itself when unknown.
func ChainLabel(code string) string {
	for _, c := range Chains {
		if c.Code == code {
			return c.Label
		}
	}
	return code
}

type WatchlistEntry struct {
	Code string
	Name string
}

// SentinelCode marks placeholder rows in the watchlist file.
const SentinelCode = "0000"

func (w WatchlistEntry) Valid() bool {
	return w.Code != "" && w.Code != SentinelCode
}

// MapRow is one (company, chain) line of the aggregated supply chain map.
type MapRow struct {
	Code          string
	Name          string
	ChainCode     string
	ChainName     string
	Positions     []Position
	Subcategories []string
	Upstream      []string // "code|name"
	Downstream    []string // "code|name"
}

func (m MapRow) PositionField() string {
	parts := make([]string, len(m.Positions))
	for i, p := range m.Positions {
		parts[i] = string(p)
	}
	return strings.Join(parts, "/")
}

func (m MapRow) SubcategoryField() string { return strings.Join(m.Subcategories, ";") }
func (m MapRow) UpstreamField() string    { return strings.Join(m.Upstream, ";") }
func (m MapRow) DownstreamField() string  { return strings.Join(m.Downstream, ";") }

const (
	ExchangePrivate  = "Private"
	ExchangeAcquired = "Acquired"
)

type ForeignMapping struct {
	Name     string
	Symbol   string
	Exchange string
}

func (f ForeignMapping) Resolved() bool { return f.Symbol != "" }
func (f ForeignMapping) Private() bool  { return f.Exchange == ExchangePrivate }
func (f ForeignMapping) Acquired() bool { return f.Exchange == ExchangeAcquired }

// Empty reports whether neither a symbol nor an exchange is known.
func (f ForeignMapping) Empty() bool { return f.Symbol == "" && f.Exchange == "" }
