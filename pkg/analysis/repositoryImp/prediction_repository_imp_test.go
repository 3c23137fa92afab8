package repositoryImp

import (
	"path/filepath"
	"testing"
	"time"

	"smartcrop/database"
	"smartcrop/entities"
)

func TestCreateAndList(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "pred.db"))
	if err != nil {
		t.Fatal(err)
	}
	r := New(db)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ph := 6.5
	for i, crop := range []string{"Rice", "Wheat", "Maize"} {
		p := &entities.Prediction{
			PublicID:  crop,
			UserID:    "u1",
			Crop:      crop,
			PH:        &ph,
			Penalties: []string{"p" + crop},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := r.Create(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Create(&entities.Prediction{PublicID: "other", UserID: "u2", Crop: "Rice"}); err != nil {
		t.Fatal(err)
	}

	got, err := r.ListByUser("u1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Crop != "Maize" || got[1].Crop != "Wheat" {
		t.Fatalf("got %+v", got)
	}
	if len(got[0].Penalties) != 1 || got[0].Penalties[0] != "pMaize" || got[0].PH == nil || *got[0].PH != 6.5 {
		t.Fatalf("round trip lost fields: %+v", got[0])
	}
}
