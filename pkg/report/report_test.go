package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"smartcrop/pkg/agronomy"
	analysis "smartcrop/pkg/analysis/service"
	"smartcrop/pkg/plan/types"
)

func readBack(t *testing.T, d Data) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestReportSheets(t *testing.T) {
	ph := 6.5
	ranked := make([]agronomy.RankedCrop, 14)
	for i := range ranked {
		ranked[i] = agronomy.RankedCrop{CropProfile: agronomy.CropProfile{Name: fmt.Sprintf("Crop%d", i), SoilTypes: []agronomy.SoilType{agronomy.Loam, agronomy.Clay}}, Score: 99 - i}
	}
	d := Data{
		Outcome: analysis.Outcome{
			Crop: "Wheat", SoilType: agronomy.Clay, Temperature: 30, PH: &ph, Season: agronomy.Monsoon,
			Analysis:      agronomy.SuitabilityResult{Score: 30, Penalties: []string{"a", "b"}, Message: "Wheat is not suitable for the given conditions"},
			SuitableCrops: ranked,
		},
		Plan: &types.CropPlan{
			Crop: "Wheat", DurationDays: 120, EstimatedHarvestDate: "2025-03-01",
			Timeline:    []types.StagePlan{{Stage: "Land Preparation", StartDate: "2024-11-01", EndDate: "2024-11-08", DurationDays: 7}},
			SoilNotes:   []string{"note"},
			Fertilizers: []agronomy.FertilizerPick{{Name: "Urea", Price: 22, Use: "N"}},
		},
		GeneratedAt: time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC),
	}
	f := readBack(t, d)

	want := []string{SheetSummary, SheetIssues, SheetRecommended, SheetPlan, SheetFertilizers}
	if got := f.GetSheetList(); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("sheets = %v", got)
	}
	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	checks := []struct{ sheet, ref, want string }{
		{SheetSummary, "B3", "Wheat"},
		{SheetSummary, "B6", "6.50"},
		{SheetSummary, "B9", "Not suitable"},
		{SheetIssues, "B3", "b"},
		{SheetRecommended, "A2", "Crop0"},
		{SheetRecommended, "D2", "Loam, Clay"},
		{SheetRecommended, "A13", "Crop11"},
		{SheetRecommended, "A14", "+ 2 more"},
		{SheetPlan, "C2", "2024-11-08"},
		{SheetPlan, "C3", "2025-03-01"},
		{SheetPlan, "E4", "note"},
		{SheetFertilizers, "A2", "Urea"},
	}
	for _, c := range checks {
		if got := cell(c.sheet, c.ref); got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.ref, got, c.want)
		}
	}
}

func TestReportWithoutPlanOrIssues(t *testing.T) {
	f := readBack(t, Data{Outcome: analysis.Outcome{Crop: "Quinoa", Analysis: agronomy.SuitabilityResult{Message: "Crop not found in database"}}})
	for sheet, want := range map[string]string{
		SheetIssues:      "No issues found",
		SheetRecommended: "No suitable crops for these conditions",
		SheetPlan:        "No cultivation plan for this crop",
		SheetFertilizers: "No fertilizer recommendations available",
	} {
		ref := "A2"
		if sheet == SheetIssues {
			ref = "B2"
		}
		if got, _ := f.GetCellValue(sheet, ref); got != want {
			t.Errorf("%s = %q, want %q", sheet, got, want)
		}
	}
	if got, _ := f.GetCellValue(SheetSummary, "B6"); got != "Not provided" {
		t.Errorf("pH = %q", got)
	}
}
