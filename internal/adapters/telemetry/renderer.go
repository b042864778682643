package telemetry

import (
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/ui/output"
	"go.trai.ch/moditems/internal/ui/style"
)

var _ ports.TraceRenderer = (*TextRenderer)(nil)

// TextRenderer prints one line per finished span.
type TextRenderer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{out: output.New(w)}
}

// OnSpanComplete writes a summary line such as
// "● moditems.apply 1.2ms item=mod:amulet target=hero".
func (r *TextRenderer) OnSpanComplete(s ports.SpanSummary) {
	var b strings.Builder
	b.WriteString(style.Dot + " " + s.Name + " " + s.Duration.Round(time.Microsecond).String())
	for _, k := range slices.Sorted(maps.Keys(s.Attributes)) {
		b.WriteString(" " + k + "=" + s.Attributes[k])
	}

	line := style.Paint(r.out, b.String(), style.Iris)
	if s.Err != nil {
		line += " " + style.Paint(r.out, style.Cross+" "+s.Err.Error(), style.Red)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.out.WriteString(line + "\n")
}
