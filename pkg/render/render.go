// Package render produces the HTML report page for a finished analysis.
// A single renderer instance is either idle or rendering; a second render
// request arriving mid-flight is dropped rather than queued, so slow
// template writes can never stack up behind each other.
package render

import (
	"errors"
	"html/template"
	"io"
	"sync/atomic"

	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/bazi/spirits"
)

var ErrRenderInFlight = errors.New("render already in progress")

const (
	stateIdle int32 = iota
	stateRendering
)

type Renderer struct {
	tmpl          *template.Template
	state         atomic.Int32
	log           logger.ILogger
	chartAssetURL string
}

// NewRenderer parses the report template. chartAssetURL points at the
// charting script used for the five-element radar; when empty the radar
// block is skipped and a plain breakdown is shown instead.
func NewRenderer(log logger.ILogger, chartAssetURL string) (*Renderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		tmpl:          tmpl,
		log:           log,
		chartAssetURL: chartAssetURL,
	}, nil
}

type PillarView struct {
	Position string
	Label    string
	Gan      string
	Zhi      string
}

type ElementView struct {
	Name    string
	Count   int
	Percent int
}

type NarrativeView struct {
	Position   string
	Commander  string
	Strategist string
	NaYin      string
	TenGod     string
	Story      string
}

type SpiritView struct {
	Text     string
	Category string
}

type ReportView struct {
	UserName      string
	Tone          string
	Pillars       []PillarView
	Elements      []ElementView
	YinCount      int
	YangCount     int
	Narratives    []NarrativeView
	Spirits       []SpiritView
	ChartAssetURL string
}

// RenderReport writes the report page. Returns ErrRenderInFlight when a
// previous render on this instance has not finished yet.
func (r *Renderer) RenderReport(w io.Writer, view ReportView) error {
	if !r.state.CompareAndSwap(stateIdle, stateRendering) {
		if r.log != nil {
			r.log.Warn("render", "render request dropped, previous render still running", nil)
		}
		return ErrRenderInFlight
	}
	defer r.state.Store(stateIdle)

	if r.chartAssetURL == "" && r.log != nil {
		r.log.Warn("render", "chart asset not configured, skipping radar block", nil)
	}
	view.ChartAssetURL = r.chartAssetURL

	return r.tmpl.Execute(w, view)
}

// BuildView flattens an analysis into template-ready data. Pillars and
// narratives follow the canonical year, month, day, hour order.
func BuildView(analysis *bazi.Analysis, spiritList []spirits.Spirit, tone bazi.Tone, userName string) ReportView {
	view := ReportView{
		UserName: userName,
		Tone:     string(bazi.NormalizeTone(string(tone))),
	}

	for _, pos := range bazi.Positions {
		pillar, ok := analysis.Chart.Pillars[pos]
		if !ok {
			continue
		}
		view.Pillars = append(view.Pillars, PillarView{
			Position: string(pos),
			Label:    pillar.Pillar,
			Gan:      pillar.Gan,
			Zhi:      pillar.Zhi,
		})
		if entry, ok := analysis.Narrative[pos]; ok {
			view.Narratives = append(view.Narratives, NarrativeView{
				Position:   string(pos),
				Commander:  entry.Commander,
				Strategist: entry.Strategist,
				NaYin:      entry.NaYin,
				TenGod:     entry.TenGod,
				Story:      entry.Story,
			})
		}
	}

	total := 0
	for _, count := range analysis.Chart.FiveElements {
		total += count
	}
	for _, name := range []string{"木", "火", "土", "金", "水"} {
		count := analysis.Chart.FiveElements[name]
		percent := 0
		if total > 0 {
			percent = count * 100 / total
		}
		view.Elements = append(view.Elements, ElementView{Name: name, Count: count, Percent: percent})
	}

	view.YinCount = analysis.Chart.YinYang["陰"]
	view.YangCount = analysis.Chart.YinYang["陽"]

	for _, s := range spiritList {
		view.Spirits = append(view.Spirits, SpiritView{
			Text:     s.DisplayText(),
			Category: s.Category,
		})
	}

	return view
}
