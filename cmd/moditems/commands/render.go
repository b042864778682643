package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/moditems/internal/app"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/moditems/internal/ui/output"
	"go.trai.ch/moditems/internal/ui/style"
)

// printer writes command results to a styled output.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// result prints one apply result, e.g. "✓ mod:amulet → hero: applied 2, skipped 1 (luck)".
func (p *printer) result(identifier, target string, res domain.ApplyResult) {
	head := identifier + " " + style.Arrow + " " + target
	switch {
	case res.Disposition == domain.NotHandled:
		p.line("%s %s: not handled", style.Paint(p.out, "-", style.Slate), head)
	case res.Aborted():
		p.line("%s %s: %s", style.Paint(p.out, style.Cross, style.Red), head, res.Reason.Error())
	default:
		msg := fmt.Sprintf("applied %d, skipped %d", res.Outcome.Applied, res.Outcome.SkippedCount())
		if len(res.Outcome.Skipped) > 0 {
			msg += " (" + strings.Join(res.Outcome.Skipped, ", ") + ")"
		}
		p.line("%s %s: %s", style.Paint(p.out, style.Check, style.Green), head, msg)
	}
}

// stats prints every indexed stat with its base value and modifiers.
func (p *printer) stats(in app.Inspection) {
	p.line("%s", style.Paint(p.out, in.Entity, style.Iris))
	keys := in.Index.Keys()
	width := maxLen(keys)
	for _, key := range keys {
		attr, _ := in.Index.Lookup(key)
		insp, ok := attr.(statgraph.Inspectable)
		if !ok {
			p.line("  %-*s  ?", width, key)
			continue
		}

		mods := make([]string, 0, len(insp.Modifiers()))
		for _, m := range insp.Modifiers() {
			mods = append(mods, formatModifier(m))
		}
		row := fmt.Sprintf("  %-*s  %s", width, key, formatNumber(insp.BaseValue()))
		if len(mods) > 0 {
			row += "  " + strings.Join(mods, ", ")
		}
		p.line("%s", row)
	}
}

// report prints the per-member decisions of an index build.
func (p *printer) report(in app.Inspection) {
	cached := ""
	if in.Cached {
		cached = " cached"
	}
	p.line("%s %s%s", style.Paint(p.out, in.Entity, style.Iris), in.Handle, cached)

	paths := make([]string, 0, len(in.Report.Visits))
	for _, v := range in.Report.Visits {
		paths = append(paths, v.Path)
	}
	width := maxLen(paths)

	for _, v := range in.Report.Visits {
		row := fmt.Sprintf("  %-*s  %-8s  %s", width, v.Path, v.Kind, v.Outcome)
		if v.Err != nil {
			row += ": " + v.Err.Error()
		}
		p.line("%s", strings.TrimRight(row, " "))
	}
	p.line("  %d keys, fingerprint %016x", in.Index.Len(), in.Index.Fingerprint())
}

// definition prints a definition as the host would present it, followed by the
// modifier records an application would create.
func (p *printer) definition(id string, shown domain.Presentation, def domain.ItemDefinition) {
	p.line("%s", style.Paint(p.out, id, style.Iris))
	p.line("  title:        %s", shown.Title)
	p.line("  description:  %s", shown.Description)
	p.line("  icon:         %s", shown.Icon)
	p.line("  cost:         %d", shown.Cost)
	p.line("  modifiers:")
	keys := make([]string, 0, len(def.StatMods))
	for _, spec := range def.StatMods {
		keys = append(keys, spec.Key)
	}
	width := maxLen(keys)
	for _, spec := range def.StatMods {
		p.line("    %-*s  %s", width, spec.Key, formatModifier(domain.NewStatModifier(spec)))
	}
}

// formatModifier renders m as e.g. "+10 Flat (origin -1)".
func formatModifier(m domain.StatModifier) string {
	value := formatNumber(m.Value)
	if m.Value >= 0 {
		value = "+" + value
	}
	return fmt.Sprintf("%s %s (origin %d)", value, m.Type, m.Origin)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func maxLen(ss []string) int {
	n := 0
	for _, s := range ss {
		n = max(n, len(s))
	}
	return n
}
