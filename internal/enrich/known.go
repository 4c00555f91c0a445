package enrich

import "github.com/shanehull/icchain/internal/model"

// Table is a read-only name -> mapping lookup.
type Table struct {
	m map[string]model.ForeignMapping
}

func NewTable(mappings []model.ForeignMapping) Table {
	m := make(map[string]model.ForeignMapping, len(mappings))
	for _, f := range mappings {
		m[f.Name] = f
	}
	return Table{m: m}
}

func (t Table) Get(name string) (model.ForeignMapping, bool) {
	f, ok := t.m[name]
	return f, ok
}

func (t Table) Len() int { return len(t.m) }

// Hand-maintained symbols for companies the directory lists without a local
// ticker. An empty symbol with Private or Acquired records why none exists.
var knownMappings = []model.ForeignMapping{
	// US tech
	{Name: "Google", Symbol: "GOOGL", Exchange: "NASDAQ"},
	{Name: "微軟", Symbol: "MSFT", Exchange: "NASDAQ"},
	{Name: "蘋果", Symbol: "AAPL", Exchange: "NASDAQ"},
	{Name: "亞馬遜", Symbol: "AMZN", Exchange: "NASDAQ"},
	{Name: "亞馬遜網路服務公司", Symbol: "AMZN", Exchange: "NASDAQ"},
	{Name: "Meta", Symbol: "META", Exchange: "NASDAQ"},
	{Name: "輝達", Symbol: "NVDA", Exchange: "NASDAQ"},
	{Name: "OpenAI", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "Anthropic", Symbol: "", Exchange: model.ExchangePrivate},

	// Semiconductors
	{Name: "安謀", Symbol: "ARM", Exchange: "NASDAQ"},
	{Name: "益華", Symbol: "CDNS", Exchange: "NASDAQ"},
	{Name: "新思科技", Symbol: "SNPS", Exchange: "NASDAQ"},
	{Name: "Imagination", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "英特爾", Symbol: "INTC", Exchange: "NASDAQ"},
	{Name: "超微半導體", Symbol: "AMD", Exchange: "NASDAQ"},
	{Name: "高通", Symbol: "QCOM", Exchange: "NASDAQ"},
	{Name: "德州儀器", Symbol: "TXN", Exchange: "NASDAQ"},
	{Name: "博通", Symbol: "AVGO", Exchange: "NASDAQ"},
	{Name: "恩智浦半導體", Symbol: "NXPI", Exchange: "NASDAQ"},
	{Name: "意法半導體", Symbol: "STM", Exchange: "NYSE"},
	{Name: "美光", Symbol: "MU", Exchange: "NASDAQ"},
	{Name: "應用材料", Symbol: "AMAT", Exchange: "NASDAQ"},
	{Name: "科林研發", Symbol: "LRCX", Exchange: "NASDAQ"},
	{Name: "科磊", Symbol: "KLAC", Exchange: "NASDAQ"},
	{Name: "艾司摩爾", Symbol: "ASML", Exchange: "NASDAQ"},
	{Name: "格羅方德", Symbol: "GFS", Exchange: "NASDAQ"},
	{Name: "安華高科技", Symbol: "AVGO", Exchange: "NASDAQ"},
	{Name: "亞德諾半導體", Symbol: "ADI", Exchange: "NASDAQ"},
	{Name: "邁威爾", Symbol: "MRVL", Exchange: "NASDAQ"},
	{Name: "慧榮科技股份有限公司", Symbol: "SIMO", Exchange: "NASDAQ"},

	// Korea and Japan
	{Name: "三星電子", Symbol: "005930.KS", Exchange: "KRX"},
	{Name: "三星半導體", Symbol: "005930.KS", Exchange: "KRX"},
	{Name: "三星SDI", Symbol: "006400.KS", Exchange: "KRX"},
	{Name: "三星顯示", Symbol: "005930.KS", Exchange: "KRX"},
	{Name: "SK海力士", Symbol: "000660.KS", Exchange: "KRX"},
	{Name: "LG化學", Symbol: "051910.KS", Exchange: "KRX"},
	{Name: "LG顯示", Symbol: "034220.KS", Exchange: "KRX"},
	{Name: "LG", Symbol: "066570.KS", Exchange: "KRX"},
	{Name: "京瓷", Symbol: "6971.T", Exchange: "TSE"},
	{Name: "村田製作所", Symbol: "6981.T", Exchange: "TSE"},
	{Name: "日立", Symbol: "6501.T", Exchange: "TSE"},
	{Name: "松下電器", Symbol: "6752.T", Exchange: "TSE"},
	{Name: "索尼", Symbol: "6758.T", Exchange: "TSE"},
	{Name: "東京電力", Symbol: "9501.T", Exchange: "TSE"},
	{Name: "信越化學", Symbol: "4063.T", Exchange: "TSE"},
	{Name: "瑞薩電子", Symbol: "6723.T", Exchange: "TSE"},
	{Name: "太陽誘電", Symbol: "6976.T", Exchange: "TSE"},
	{Name: "TDK Electronics", Symbol: "6762.T", Exchange: "TSE"},
	{Name: "日亞化", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "Canon", Symbol: "7751.T", Exchange: "TSE"},
	{Name: "尼康株式會社", Symbol: "7731.T", Exchange: "TSE"},
	{Name: "歐姆龍", Symbol: "6645.T", Exchange: "TSE"},
	{Name: "Advantest", Symbol: "6857.T", Exchange: "TSE"},
	{Name: "小松製作所", Symbol: "6301.T", Exchange: "TSE"},
	{Name: "三菱電機", Symbol: "6503.T", Exchange: "TSE"},
	{Name: "三菱重工", Symbol: "7011.T", Exchange: "TSE"},
	{Name: "富士電機", Symbol: "6504.T", Exchange: "TSE"},
	{Name: "精工愛普生", Symbol: "6724.T", Exchange: "TSE"},
	{Name: "大金", Symbol: "6367.T", Exchange: "TSE"},
	{Name: "牧田日本", Symbol: "6586.T", Exchange: "TSE"},

	// China
	{Name: "阿里巴巴集團", Symbol: "BABA", Exchange: "NYSE"},
	{Name: "華為", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "中芯國際", Symbol: "0981.HK", Exchange: "HKEX"},
	{Name: "京東方", Symbol: "000725.SZ", Exchange: "SZSE"},
	{Name: "海康威視", Symbol: "002415.SZ", Exchange: "SZSE"},
	{Name: "海思半導體", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "比亞迪", Symbol: "1211.HK", Exchange: "HKEX"},
	{Name: "聯想", Symbol: "0992.HK", Exchange: "HKEX"},
	{Name: "中興", Symbol: "0763.HK", Exchange: "HKEX"},
	{Name: "匯頂科技", Symbol: "603160.SS", Exchange: "SSE"},
	{Name: "幣安", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "支付寶", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "眾安", Symbol: "6060.HK", Exchange: "HKEX"},

	// US internet, software, hardware
	{Name: "Paypal", Symbol: "PYPL", Exchange: "NASDAQ"},
	{Name: "Stripe", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "Coinbase", Symbol: "COIN", Exchange: "NASDAQ"},
	{Name: "Robinhood", Symbol: "HOOD", Exchange: "NASDAQ"},
	{Name: "Airbnb", Symbol: "ABNB", Exchange: "NASDAQ"},
	{Name: "網飛", Symbol: "NFLX", Exchange: "NASDAQ"},
	{Name: "Dropbox", Symbol: "DBX", Exchange: "NASDAQ"},
	{Name: "VMware", Symbol: "VMW", Exchange: "NYSE"},
	{Name: "Splunk", Symbol: "", Exchange: model.ExchangeAcquired},
	{Name: "思科系統", Symbol: "CSCO", Exchange: "NASDAQ"},
	{Name: "甲骨文", Symbol: "ORCL", Exchange: "NYSE"},
	{Name: "思愛普", Symbol: "SAP", Exchange: "NYSE"},
	{Name: "戴爾", Symbol: "DELL", Exchange: "NYSE"},
	{Name: "惠普", Symbol: "HPQ", Exchange: "NYSE"},
	{Name: "HPE", Symbol: "HPE", Exchange: "NYSE"},

	// Security
	{Name: "CrowdStrike", Symbol: "CRWD", Exchange: "NASDAQ"},
	{Name: "Fortinet", Symbol: "FTNT", Exchange: "NASDAQ"},
	{Name: "Palo Alto Networks", Symbol: "PANW", Exchange: "NASDAQ"},
	{Name: "Zscaler", Symbol: "ZS", Exchange: "NASDAQ"},
	{Name: "Okta", Symbol: "OKTA", Exchange: "NASDAQ"},
	{Name: "趨勢科技", Symbol: "4704.T", Exchange: "TSE"},

	// Industrial
	{Name: "ABB", Symbol: "ABB", Exchange: "NYSE"},
	{Name: "西門子", Symbol: "SIEGY", Exchange: "OTC"},
	{Name: "Honeywell", Symbol: "HON", Exchange: "NASDAQ"},
	{Name: "艾默生電氣公司", Symbol: "EMR", Exchange: "NYSE"},
	{Name: "Eaton Corporation Plc", Symbol: "ETN", Exchange: "NYSE"},
	{Name: "TE Connectivity", Symbol: "TEL", Exchange: "NYSE"},
	{Name: "洛克威爾自動化", Symbol: "ROK", Exchange: "NYSE"},

	// Healthcare
	{Name: "輝瑞大藥廠", Symbol: "PFE", Exchange: "NYSE"},
	{Name: "羅氏大藥廠", Symbol: "RHHBY", Exchange: "OTC"},
	{Name: "諾華", Symbol: "NVS", Exchange: "NYSE"},
	{Name: "嬌生", Symbol: "JNJ", Exchange: "NYSE"},
	{Name: "默克集團", Symbol: "MRK", Exchange: "NYSE"},
	{Name: "拜耳", Symbol: "BAYRY", Exchange: "OTC"},
	{Name: "美國安進", Symbol: "AMGN", Exchange: "NASDAQ"},
	{Name: "Thermo Fisher Scientific", Symbol: "TMO", Exchange: "NYSE"},
	{Name: "安捷倫科技", Symbol: "A", Exchange: "NYSE"},
	{Name: "史賽克", Symbol: "SYK", Exchange: "NYSE"},

	// Consumer
	{Name: "Nike", Symbol: "NKE", Exchange: "NYSE"},
	{Name: "耐克森", Symbol: "NKE", Exchange: "NYSE"},
	{Name: "Adidas", Symbol: "ADDYY", Exchange: "OTC"},
	{Name: "Puma", Symbol: "PUMSY", Exchange: "OTC"},
	{Name: "迪卡儂", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "可口可樂", Symbol: "KO", Exchange: "NYSE"},
	{Name: "百事公司", Symbol: "PEP", Exchange: "NASDAQ"},
	{Name: "雀巢", Symbol: "NSRGY", Exchange: "OTC"},
	{Name: "達能集團", Symbol: "DANOY", Exchange: "OTC"},
	{Name: "Walmart", Symbol: "WMT", Exchange: "NYSE"},
	{Name: "麥當勞", Symbol: "MCD", Exchange: "NYSE"},
	{Name: "Subway", Symbol: "", Exchange: model.ExchangePrivate},

	// Telecom
	{Name: "AT&T", Symbol: "T", Exchange: "NYSE"},
	{Name: "威訊通訊", Symbol: "VZ", Exchange: "NYSE"},
	{Name: "Ericsson", Symbol: "ERIC", Exchange: "NASDAQ"},
	{Name: "Nokia Network", Symbol: "NOK", Exchange: "NYSE"},

	// Logistics
	{Name: "聯邦快遞", Symbol: "FDX", Exchange: "NYSE"},
	{Name: "優比速公司", Symbol: "UPS", Exchange: "NYSE"},
	{Name: "德迅", Symbol: "DSDVY", Exchange: "OTC"},

	// Automotive
	{Name: "特斯拉", Symbol: "TSLA", Exchange: "NASDAQ"},
	{Name: "Mobileye", Symbol: "MBLY", Exchange: "NASDAQ"},

	// Others
	{Name: "Palantir", Symbol: "PLTR", Exchange: "NYSE"},
	{Name: "Teradata", Symbol: "TDC", Exchange: "NYSE"},
	{Name: "SAS", Symbol: "", Exchange: model.ExchangePrivate},
	{Name: "Nasdaq", Symbol: "NDAQ", Exchange: "NASDAQ"},
	{Name: "ANSYS", Symbol: "ANSS", Exchange: "NASDAQ"},
	{Name: "PTC", Symbol: "PTC", Exchange: "NASDAQ"},
	{Name: "歐特克", Symbol: "ADSK", Exchange: "NASDAQ"},
	{Name: "達梭系統", Symbol: "DASTY", Exchange: "OTC"},
}

// KnownMappings returns the curated table. Each call builds a fresh Table.
func KnownMappings() Table {
	return NewTable(knownMappings)
}
