package agronomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadCatalogDefaults(t *testing.T) {
	c, err := LoadCatalog("", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != DefaultCatalog().Len() {
		t.Fatalf("got %d crops", c.Len())
	}
}

func TestLoadCatalogCSV(t *testing.T) {
	crops := writeFile(t, "crops.csv", "\uFEFFName,Soil Types,Temp_Min,Temp-Max,pH min,pH max,Water,Seasons,Score\n"+
		"Millet,Sandy;Sandy Loam,25,35,5.5,7.5,Low,Summer;Monsoon,77\n"+
		",,,,,,,,\n"+
		"Barley,Loam,12,22,6,7.8,moderate,Winter,74\n")
	ferts := writeFile(t, "ferts.csv", "crop,fertilizer,cost,purpose\nMillet,Urea,18,Nitrogen\nMillet,DAP,30,Phosphorus\nMillet,FYM,12,Organic matter\n")

	c, err := LoadCatalog(crops, ferts, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("want 2 crops, got %d", c.Len())
	}
	m, ok := c.Crop("Millet")
	if !ok || m.WaterRequirement != WaterLow || len(m.SoilTypes) != 2 || m.Seasons[1] != Monsoon || m.BaseScore != 77 {
		t.Fatalf("Millet parsed as %+v", m)
	}
	a := New(c)
	got := a.Recommend("Millet")
	if len(got) != 2 || got[0].Name != "FYM" || got[1].Name != "Urea" {
		t.Fatalf("Recommend = %+v", got)
	}
	if r := a.Score("Millet", Sandy, 30, None(), Summer); r.Score != 77 {
		t.Fatalf("Score = %+v", r)
	}
}

func TestLoadCatalogCSVErrors(t *testing.T) {
	cases := map[string]string{
		"missing column": "name,soil\nA,Loam\n",
		"bad soil":       "name,soil,temp_min,temp_max,ph_min,ph_max,score\nA,Peat,1,2,6,7,50\n",
		"bad number":     "name,soil,temp_min,temp_max,ph_min,ph_max,score\nA,Loam,x,2,6,7,50\n",
		"bad range":      "name,soil,temp_min,temp_max,ph_min,ph_max,score\nA,Loam,9,2,6,7,50\n",
		"bad season":     "name,soil,temp_min,temp_max,ph_min,ph_max,score,season\nA,Loam,1,2,6,7,50,Spring\n",
		"nan bounds":     "name,soil,temp_min,temp_max,ph_min,ph_max,score,season\nX,Loam,NaN,NaN,NaN,NaN,90,Winter\n",
		"nan ph":         "name,soil,temp_min,temp_max,ph_min,ph_max,score\nX,Loam,10,20,NaN,7,90\n",
		"infinite temp":  "name,soil,temp_min,temp_max,ph_min,ph_max,score\nX,Loam,-Inf,+Inf,6,7,90\n",
	}
	for name, body := range cases {
		if _, err := LoadCatalog(writeFile(t, "c.csv", body), "", ""); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := LoadCatalog("", writeFile(t, "f.csv", "crop,name,price\nRice,Urea,NaN\n"), ""); err == nil {
		t.Error("nan price: expected error")
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.csv"), "", ""); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestLoadCatalogWorkbook(t *testing.T) {
	x := excelize.NewFile()
	defer x.Close()
	if _, err := x.NewSheet(SheetDurations); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{{"Crop", "Days"}, {"Maize", 100}, {"Rice", 140}}
	for i, r := range rows {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(SheetDurations, cellName, &r); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := x.NewSheet(SheetFertilizers); err != nil {
		t.Fatal(err)
	}
	frows := [][]interface{}{{"Crop", "Name", "Price", "Use"}, {"Garlic", "Compost", 15, "Bulb size"}}
	for i, r := range frows {
		cellName, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := x.SetSheetRow(SheetFertilizers, cellName, &r); err != nil {
			t.Fatal(err)
		}
	}
	p := filepath.Join(t.TempDir(), "ref.xlsx")
	if err := x.SaveAs(p); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog("", "", p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Duration("Maize") != 100 || c.Duration("Rice") != 140 {
		t.Fatalf("durations = %d/%d", c.Duration("Maize"), c.Duration("Rice"))
	}
	// durations sheet replaces the table, so unlisted crops fall back
	if c.Duration("Sugarcane") != DefaultDuration {
		t.Fatalf("Sugarcane = %d", c.Duration("Sugarcane"))
	}
	if c.Len() != 12 {
		t.Fatalf("crops should stay built-in, got %d", c.Len())
	}
	if got := New(c).Recommend("Garlic"); len(got) != 1 || got[0].Name != "Compost" {
		t.Fatalf("Recommend = %+v", got)
	}
}
