// Package report renders an analysis as an XLSX workbook.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	analysis "smartcrop/pkg/analysis/service"
	"smartcrop/pkg/plan/types"
)

const (
	SheetSummary     = "Summary"
	SheetIssues      = "Issues"
	SheetRecommended = "Recommended Crops"
	SheetPlan        = "Cultivation Plan"
	SheetFertilizers = "Fertilizers"

	MaxRecommended = 12
	ContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Data struct {
	Outcome     analysis.Outcome
	Plan        *types.CropPlan // nil for crops outside the catalog
	GeneratedAt time.Time
}

// Write renders d into w.
func Write(w io.Writer, d Data) error {
	f, err := Build(d)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func Build(d Data) (*excelize.File, error) {
	f := excelize.NewFile()
	b := &builder{f: f}
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetIssues, SheetRecommended, SheetPlan, SheetFertilizers} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}
	b.header, _ = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	b.summary(d)
	b.issues(d.Outcome)
	b.recommended(d.Outcome)
	b.plan(d.Plan)
	b.fertilizers(d.Plan)
	if b.err != nil {
		f.Close()
		return nil, fmt.Errorf("build report: %w", b.err)
	}
	return f, nil
}

// builder keeps the first error so sheet code can stay linear.
type builder struct {
	f      *excelize.File
	header int
	err    error
}

func (b *builder) row(sheet string, r int, vals ...any) {
	if b.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		b.err = err
		return
	}
	b.err = b.f.SetSheetRow(sheet, cell, &vals)
}

func (b *builder) head(sheet string, cols ...any) {
	b.row(sheet, 1, cols...)
	if b.err != nil {
		return
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	b.err = b.f.SetCellStyle(sheet, "A1", last, b.header)
}

func (b *builder) summary(d Data) {
	o := d.Outcome
	ph := "Not provided"
	if o.PH != nil {
		ph = strconv.FormatFloat(*o.PH, 'f', 2, 64)
	}
	season := string(o.Season)
	if season == "" {
		season = "Not specified"
	}
	verdict := "Not suitable"
	if o.Analysis.Suitable {
		verdict = "Suitable"
	}
	b.head(SheetSummary, "Field", "Value")
	rows := [][2]any{
		{"Generated", d.GeneratedAt.Format("2006-01-02 15:04")},
		{"Crop", o.Crop},
		{"Soil type", string(o.SoilType)},
		{"Temperature (°C)", o.Temperature},
		{"pH", ph},
		{"Season", season},
		{"Score", o.Analysis.Score},
		{"Verdict", verdict},
		{"Message", o.Analysis.Message},
	}
	for i, r := range rows {
		b.row(SheetSummary, i+2, r[0], r[1])
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(SheetSummary, "A", "A", 20)
	}
	if b.err == nil {
		b.err = b.f.SetColWidth(SheetSummary, "B", "B", 50)
	}
}

func (b *builder) issues(o analysis.Outcome) {
	b.head(SheetIssues, "#", "Issue")
	if len(o.Analysis.Penalties) == 0 {
		b.row(SheetIssues, 2, "", "No issues found")
		return
	}
	for i, p := range o.Analysis.Penalties {
		b.row(SheetIssues, i+2, i+1, p)
	}
}

func (b *builder) recommended(o analysis.Outcome) {
	b.head(SheetRecommended, "Crop", "Score", "Water", "Soil types")
	if len(o.SuitableCrops) == 0 {
		b.row(SheetRecommended, 2, "No suitable crops for these conditions")
		return
	}
	n := len(o.SuitableCrops)
	if n > MaxRecommended {
		n = MaxRecommended
	}
	for i, rc := range o.SuitableCrops[:n] {
		soils := ""
		for j, s := range rc.SoilTypes {
			if j > 0 {
				soils += ", "
			}
			soils += string(s)
		}
		b.row(SheetRecommended, i+2, rc.Name, rc.Score, string(rc.WaterRequirement), soils)
	}
	if extra := len(o.SuitableCrops) - n; extra > 0 {
		b.row(SheetRecommended, n+2, fmt.Sprintf("+ %d more", extra))
	}
}

func (b *builder) plan(p *types.CropPlan) {
	b.head(SheetPlan, "Stage", "Start", "End", "Days", "Details")
	if p == nil {
		b.row(SheetPlan, 2, "No cultivation plan for this crop")
		return
	}
	r := 2
	for _, st := range p.Timeline {
		b.row(SheetPlan, r, st.Stage, st.StartDate, st.EndDate, st.DurationDays, st.Details)
		r++
	}
	b.row(SheetPlan, r, "Estimated harvest", "", p.EstimatedHarvestDate, p.DurationDays)
	for _, note := range p.SoilNotes {
		r++
		b.row(SheetPlan, r, "Soil note", "", "", "", note)
	}
}

func (b *builder) fertilizers(p *types.CropPlan) {
	b.head(SheetFertilizers, "Fertilizer", "Price", "Use")
	if p == nil || len(p.Fertilizers) == 0 {
		b.row(SheetFertilizers, 2, "No fertilizer recommendations available")
		return
	}
	for i, fp := range p.Fertilizers {
		b.row(SheetFertilizers, i+2, fp.Name, fp.Price, fp.Use)
	}
}
