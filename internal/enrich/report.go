package enrich

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render prints the reconciliation summary as a table.
func (s Stats) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"統計", "家數"})
	t.AppendRows([]table.Row{
		{"總計", s.Total},
		{"已有代號", s.Resolved},
		{"私有公司", s.Private},
		{"已被收購", s.Acquired},
		{"待查詢", s.Unresolved},
	})
	t.AppendFooter(table.Row{"對照表 / 既有 / 查詢", fmt.Sprintf("%d / %d / %d", s.BySource[SourceKnown], s.BySource[SourcePrior], s.BySource[SourceLookup])})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
