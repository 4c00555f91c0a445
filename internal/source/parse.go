package source

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shanehull/icchain/internal/model"
)

// ChainPage is the parsed content of one industry page.
type ChainPage struct {
	Code          string
	Name          string
	Subcategories []Subcategory
	Records       []model.ChainRecord
	// TwoWaySplit is set when the page had no midstream marker and subcategories
	// were split between upstream and downstream only.
	TwoWaySplit bool
}

func (p *ChainPage) Empty() bool {
	return p == nil || len(p.Records) == 0
}

type Subcategory struct {
	Code     string
	Name     string
	Position model.Position
}

const (
	titlePanelClass = "chain-title-panel"
	chainPanelClass = "company-chain-panel"
	icLinkPrefix    = "ic_link_"
	companyPrefix   = "companyList_"
)

var (
	subcategoryCodeRe = regexp.MustCompile(`^[A-Z0-9]+$`)
	stockCodeRe       = regexp.MustCompile(`stk_code=(\d+)`)
	skippedLinkNames  = map[string]bool{"更多": true, "...": true}
)

// sectionMarkers holds the document-order index of the first marker of each
// section, -1 when the page has none.
type sectionMarkers struct {
	up, mid, down int
}

func (m sectionMarkers) classify(idx int) model.Position {
	if m.mid >= 0 {
		switch {
		case idx < m.mid:
			return model.Upstream
		case m.down >= 0 && idx < m.down:
			return model.Midstream
		default:
			return model.Downstream
		}
	}
	if m.down < 0 || idx < m.down {
		return model.Upstream
	}
	return model.Downstream
}

// ParsePage extracts subcategories and company rows from an industry page.
// Every element is numbered in document order; a subcategory takes its position
// from where its first ic_link element falls relative to the section markers.
func ParsePage(code string, body []byte) (*ChainPage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s page: %w", code, err)
	}

	page := &ChainPage{Code: code, Name: chainName(doc)}

	markers := sectionMarkers{up: -1, mid: -1, down: -1}
	type link struct {
		code, name string
		idx        int
	}
	var links []link

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		if s.HasClass(titlePanelClass) {
			text := strings.TrimSpace(leadingText(s))
			switch {
			case strings.HasPrefix(text, string(model.Upstream)) && markers.up < 0:
				markers.up = i
			case strings.HasPrefix(text, string(model.Midstream)) && markers.mid < 0:
				markers.mid = i
			case strings.HasPrefix(text, string(model.Downstream)) && markers.down < 0:
				markers.down = i
			}
		}
		id, ok := s.Attr("id")
		if !ok || !strings.HasPrefix(id, icLinkPrefix) || !s.HasClass(chainPanelClass) {
			return
		}
		sub := strings.TrimPrefix(id, icLinkPrefix)
		name := strings.TrimSpace(leadingText(s))
		if !subcategoryCodeRe.MatchString(sub) || name == "" {
			return
		}
		links = append(links, link{code: sub, name: name, idx: i})
	})
	page.TwoWaySplit = markers.mid < 0

	subIndex := make(map[string]int)
	for _, l := range links {
		if i, ok := subIndex[l.code]; ok {
			// repeated panels keep the first position but take the latest label
			page.Subcategories[i].Name = l.name
			continue
		}
		subIndex[l.code] = len(page.Subcategories)
		page.Subcategories = append(page.Subcategories, Subcategory{
			Code:     l.code,
			Name:     l.name,
			Position: markers.classify(l.idx),
		})
	}

	seen := make(map[string]bool)
	doc.Find(`div[id^="` + companyPrefix + `"]`).Each(func(_ int, div *goquery.Selection) {
		id, _ := div.Attr("id")
		i, ok := subIndex[strings.TrimPrefix(id, companyPrefix)]
		if !ok {
			return
		}
		sub := page.Subcategories[i]

		div.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			name, hasTitle := a.Attr("title")
			if !hasTitle {
				name = a.Text()
			}
			name = strings.TrimSpace(name)
			if name == "" || skippedLinkNames[name] {
				return
			}

			href, _ := a.Attr("href")
			stockCode := ""
			if m := stockCodeRe.FindStringSubmatch(href); m != nil {
				stockCode = m[1]
			}

			rec := model.ChainRecord{
				ChainCode:       code,
				ChainName:       page.Name,
				Position:        sub.Position,
				Subcategory:     sub.Name,
				SubcategoryCode: sub.Code,
				StockCode:       stockCode,
				StockName:       name,
			}
			if seen[rec.Key()] {
				return
			}
			seen[rec.Key()] = true
			page.Records = append(page.Records, rec)
		})
	})

	return page, nil
}

// chainName takes the last breadcrumb of the page title.
func chainName(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if i := strings.LastIndex(title, ">"); i >= 0 {
		return strings.TrimSpace(title[i+1:])
	}
	return ""
}

// leadingText returns the text nodes that precede the first child element.
func leadingText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if goquery.NodeName(c) != "#text" {
			return false
		}
		b.WriteString(c.Text())
		return true
	})
	return b.String()
}
