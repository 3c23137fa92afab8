package agronomy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetCrops       = "Crops"
	SheetFertilizers = "Fertilizers"
	SheetDurations   = "Durations"
)

// LoadCatalog starts from the built-in tables and replaces each one that a
// file provides. The workbook may carry Crops, Fertilizers and Durations
// sheets; the CSV files, when set, take precedence over the workbook.
func LoadCatalog(cropsCSV, fertilizersCSV, workbookXLSX string) (*Catalog, error) {
	crops := defaultCrops()
	ferts := defaultFertilizers()
	durs := defaultDurations()

	if workbookXLSX != "" {
		sheets, err := readWorkbook(workbookXLSX)
		if err != nil {
			return nil, err
		}
		if rows, ok := sheets[SheetCrops]; ok {
			if crops, err = parseCrops(rows); err != nil {
				return nil, fmt.Errorf("%s sheet %s: %w", workbookXLSX, SheetCrops, err)
			}
		}
		if rows, ok := sheets[SheetFertilizers]; ok {
			if ferts, err = parseFertilizers(rows); err != nil {
				return nil, fmt.Errorf("%s sheet %s: %w", workbookXLSX, SheetFertilizers, err)
			}
		}
		if rows, ok := sheets[SheetDurations]; ok {
			if durs, err = parseDurations(rows); err != nil {
				return nil, fmt.Errorf("%s sheet %s: %w", workbookXLSX, SheetDurations, err)
			}
		}
	}
	if cropsCSV != "" {
		rows, err := readCSV(cropsCSV)
		if err != nil {
			return nil, err
		}
		if crops, err = parseCrops(rows); err != nil {
			return nil, fmt.Errorf("%s: %w", cropsCSV, err)
		}
	}
	if fertilizersCSV != "" {
		rows, err := readCSV(fertilizersCSV)
		if err != nil {
			return nil, err
		}
		if ferts, err = parseFertilizers(rows); err != nil {
			return nil, fmt.Errorf("%s: %w", fertilizersCSV, err)
		}
	}
	return NewCatalog(crops, ferts, durs, nil)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readWorkbook(path string) (map[string][][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	out := map[string][][]string{}
	for _, name := range x.GetSheetList() {
		rows, err := x.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%s sheet %s: %w", path, name, err)
		}
		out[name] = rows
	}
	return out, nil
}

// table resolves column positions from a header row, accepting aliases.
type table struct {
	head map[string]int
	rows [][]string
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func newTable(rows [][]string) (*table, error) {
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}
	t := &table{head: map[string]int{}, rows: rows[1:]}
	for i, h := range rows[0] {
		t.head[normHeader(h)] = i
	}
	return t, nil
}

func (t *table) col(keys ...string) int {
	for _, k := range keys {
		if idx, ok := t.head[normHeader(k)]; ok {
			return idx
		}
	}
	return -1
}

func (t *table) require(what string, keys ...string) (int, error) {
	if i := t.col(keys...); i != -1 {
		return i, nil
	}
	return -1, fmt.Errorf("missing required column %s", what)
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' || r == ',' }) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloatCell(rec []string, idx int, what string, line int) (float64, error) {
	v, err := strconv.ParseFloat(cell(rec, idx), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: bad %s %q", line, what, cell(rec, idx))
	}
	return v, nil
}

func parseCrops(rows [][]string) ([]CropProfile, error) {
	t, err := newTable(rows)
	if err != nil {
		return nil, err
	}
	cName, err := t.require("name", "name", "crop", "cropname")
	if err != nil {
		return nil, err
	}
	cSoil, err := t.require("soil_types", "soiltypes", "soil", "soils")
	if err != nil {
		return nil, err
	}
	cTMin, err := t.require("temp_min", "tempmin", "mintemp", "optimaltempmin")
	if err != nil {
		return nil, err
	}
	cTMax, err := t.require("temp_max", "tempmax", "maxtemp", "optimaltempmax")
	if err != nil {
		return nil, err
	}
	cPMin, err := t.require("ph_min", "phmin", "minph", "optimalphmin")
	if err != nil {
		return nil, err
	}
	cPMax, err := t.require("ph_max", "phmax", "maxph", "optimalphmax")
	if err != nil {
		return nil, err
	}
	cScore, err := t.require("score", "score", "basescore")
	if err != nil {
		return nil, err
	}
	cWater := t.col("water", "waterrequirement", "water_req")
	cSeason := t.col("season", "seasons")

	var out []CropProfile
	for i, rec := range t.rows {
		line := i + 2
		if blank(rec) {
			continue
		}
		cp := CropProfile{Name: cell(rec, cName), WaterRequirement: WaterModerate}
		for _, s := range splitList(cell(rec, cSoil)) {
			st, ok := ParseSoilType(s)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown soil type %q", line, s)
			}
			cp.SoilTypes = append(cp.SoilTypes, st)
		}
		if cp.OptimalTemp.Min, err = parseFloatCell(rec, cTMin, "temp_min", line); err != nil {
			return nil, err
		}
		if cp.OptimalTemp.Max, err = parseFloatCell(rec, cTMax, "temp_max", line); err != nil {
			return nil, err
		}
		if cp.OptimalPH.Min, err = parseFloatCell(rec, cPMin, "ph_min", line); err != nil {
			return nil, err
		}
		if cp.OptimalPH.Max, err = parseFloatCell(rec, cPMax, "ph_max", line); err != nil {
			return nil, err
		}
		if cp.BaseScore, err = strconv.Atoi(cell(rec, cScore)); err != nil {
			return nil, fmt.Errorf("row %d: bad score %q", line, cell(rec, cScore))
		}
		if w := cell(rec, cWater); w != "" {
			wr, ok := ParseWaterRequirement(w)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown water requirement %q", line, w)
			}
			cp.WaterRequirement = wr
		}
		for _, s := range splitList(cell(rec, cSeason)) {
			se, ok := ParseSeason(s)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown season %q", line, s)
			}
			cp.Seasons = append(cp.Seasons, se)
		}
		out = append(out, cp)
	}
	return out, nil
}

func parseFertilizers(rows [][]string) ([]FertilizerRecord, error) {
	t, err := newTable(rows)
	if err != nil {
		return nil, err
	}
	cCrop, err := t.require("crop", "crop", "cropname")
	if err != nil {
		return nil, err
	}
	cName, err := t.require("name", "name", "fertilizer", "product")
	if err != nil {
		return nil, err
	}
	cPrice, err := t.require("price", "price", "cost")
	if err != nil {
		return nil, err
	}
	cUse := t.col("use", "usage", "purpose", "notes")

	var out []FertilizerRecord
	for i, rec := range t.rows {
		line := i + 2
		if blank(rec) {
			continue
		}
		price, err := parseFloatCell(rec, cPrice, "price", line)
		if err != nil {
			return nil, err
		}
		out = append(out, FertilizerRecord{Crop: cell(rec, cCrop), Name: cell(rec, cName), Price: price, Use: cell(rec, cUse)})
	}
	return out, nil
}

func parseDurations(rows [][]string) (map[string]int, error) {
	t, err := newTable(rows)
	if err != nil {
		return nil, err
	}
	cCrop, err := t.require("crop", "crop", "name")
	if err != nil {
		return nil, err
	}
	cDays, err := t.require("days", "days", "duration", "durationdays")
	if err != nil {
		return nil, err
	}
	out := map[string]int{}
	for i, rec := range t.rows {
		if blank(rec) {
			continue
		}
		d, err := strconv.Atoi(cell(rec, cDays))
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("row %d: bad duration %q", i+2, cell(rec, cDays))
		}
		out[cell(rec, cCrop)] = d
	}
	return out, nil
}
