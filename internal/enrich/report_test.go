package enrich

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Render(t *testing.T) {
	s := Stats{
		Total: 12, Resolved: 7, Private: 2, Acquired: 1, Unresolved: 5,
		BySource: map[Source]int{SourceKnown: 5, SourcePrior: 2},
	}
	var buf bytes.Buffer
	s.Render(&buf)

	out := buf.String()
	for _, want := range []string{"總計", "12", "已有代號", "私有公司", "已被收購", "待查詢", "5 / 2 / 0"} {
		assert.Contains(t, out, want)
	}
}
