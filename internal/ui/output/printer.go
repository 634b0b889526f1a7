package output

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
)

var _ ports.Renderer = (*Printer)(nil)

const (
	colorOK      = "2"
	colorMuted   = "8"
	colorWarn    = "3"
	colorFailure = "1"
)

// Printer writes line-oriented progress and the final summary.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out *termenv.Output) *Printer {
	return &Printer{out: out}
}

// Outcome prints one progress line. Failures are only reported by Summary.
func (p *Printer) Outcome(o domain.Outcome) {
	if o.Failed() {
		return
	}

	label := kindLabel(o.Stage)
	switch {
	case o.Stage == domain.StageRename:
		p.line(colorMuted, "Renamed: %s -> %s", o.Source, o.Target)
	case o.Status == domain.StatusConverted:
		p.line(colorOK, "Converted %s: %s (%s)", label, o.Target, humanize.IBytes(uint64(max(o.Size, 0))))
	case o.Status == domain.StatusUpToDate:
		p.line(colorMuted, "%s already up-to-date: %s", label, o.Target)
	}
}

// Removed prints a line for a deleted orphan.
func (p *Printer) Removed(path string) {
	p.line(colorWarn, "Removed: %s", path)
}

// Summary prints the summary block for r.
func (p *Printer) Summary(r *domain.Report) {
	p.blank()
	if r.UpToDate() {
		p.line(colorOK, "All icons are already up-to-date.")
	} else {
		p.line(colorOK, "Converted %d PNGs and %d WEBPs out of %d icons.", r.ConvertedPNGs, r.ConvertedWEBPs, r.TotalIcons)
		p.line("", "Removed %d PNGs and %d WEBPs.", len(r.RemovedPNGs), len(r.RemovedWEBPs))
	}

	if len(r.Failed) > 0 {
		p.blank()
		p.line(colorFailure, "The following files failed to convert:")
		for _, path := range r.Failed {
			p.line("", "%s", path)
		}
	}

	p.blank()
	if len(r.VectorLess) == 0 {
		p.line("", "No PNG-only icons found.")
		return
	}
	p.line(colorWarn, "PNG-only icons (no SVG available):")
	for _, name := range r.VectorLess {
		p.line("", "- %s", name)
	}
}

// Steps prints every recorded conversion step with its final state.
func (p *Printer) Steps(steps []domain.Step) {
	p.blank()
	if len(steps) == 0 {
		p.line("", "No conversion steps recorded.")
		return
	}

	p.line("", "Conversion steps:")
	for _, s := range steps {
		color := colorMuted
		switch s.Status {
		case domain.StepDone:
			color = colorOK
		case domain.StepFailed:
			color = colorFailure
		case domain.StepRunning:
			color = colorWarn
		}

		if s.Err != "" {
			p.line(color, "%-7s %s: %s", s.Status, s.Name, s.Err)
			continue
		}
		p.line(color, "%-7s %s", s.Status, s.Name)
	}
}

func (p *Printer) line(color, format string, args ...any) {
	s := p.out.String(fmt.Sprintf(format, args...))
	if color != "" {
		s = s.Foreground(p.out.Color(color))
	}
	_, _ = fmt.Fprintln(p.out, s.String())
}

func (p *Printer) blank() {
	_, _ = fmt.Fprintln(p.out)
}

func kindLabel(s domain.Stage) string {
	switch s {
	case domain.StageIntermediate:
		return "PNG"
	case domain.StageFinal:
		return "WEBP"
	default:
		return string(s)
	}
}
