package agronomy

import "testing"

func TestRankLoamMonsoon(t *testing.T) {
	got := New(nil).Rank(Loam, 25, mustMeasure(t, 6.5), Monsoon)
	want := []struct {
		name  string
		score int
	}{
		{"Rice", 95}, {"Maize", 88}, {"Sugarcane", 85}, {"Wheat", 80},
		{"Soybean", 80}, {"Tomato", 78}, {"Potato", 60},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d crops, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Name != w.name || got[i].Score != w.score {
			t.Fatalf("position %d: got %s/%d, want %s/%d", i, got[i].Name, got[i].Score, w.name, w.score)
		}
	}
	if got[0].BaseScore != 95 || got[0].WaterRequirement != WaterHigh {
		t.Fatalf("profile fields not carried: %+v", got[0])
	}
}

func TestRankOrderingAndUniqueness(t *testing.T) {
	a := New(nil)
	for _, soil := range SoilTypes {
		for _, temp := range []float64{10, 18, 24, 31} {
			got := a.Rank(soil, temp, None(), NoSeason)
			seen := map[string]bool{}
			for i, rc := range got {
				if rc.Score < SuitabilityCutoff {
					t.Fatalf("%s/%v: %s below cutoff", soil, temp, rc.Name)
				}
				if i > 0 && got[i-1].Score < rc.Score {
					t.Fatalf("%s/%v: not sorted at %d", soil, temp, i)
				}
				if seen[rc.Name] {
					t.Fatalf("%s/%v: duplicate %s", soil, temp, rc.Name)
				}
				seen[rc.Name] = true
				if !a.Score(rc.Name, soil, temp, None(), NoSeason).Suitable {
					t.Fatalf("%s ranked but not suitable", rc.Name)
				}
			}
		}
	}
}

func TestRankStableForTies(t *testing.T) {
	base := CropProfile{SoilTypes: []SoilType{Loam}, OptimalTemp: Range{0, 40}, OptimalPH: Range{5, 8}, Seasons: []Season{YearRound}, BaseScore: 70}
	var crops []CropProfile
	for _, n := range []string{"Zeta", "Alpha", "Mid"} {
		cp := base
		cp.Name = n
		crops = append(crops, cp)
	}
	cat, err := NewCatalog(crops, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := New(cat).Rank(Loam, 20, None(), NoSeason)
	for i, n := range []string{"Zeta", "Alpha", "Mid"} {
		if got[i].Name != n {
			t.Fatalf("tie order changed: %+v", got)
		}
	}
}

func TestRankEmptyIsNotNil(t *testing.T) {
	got := New(nil).Rank(Sandy, 50, None(), NoSeason)
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}
