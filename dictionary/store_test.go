package dictionary

import (
	"context"
	"testing"
)

func TestClampBounds(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{4.9, 4.9},
		{5.0, 5.0},
		{5.3, 5.0},
		{-5.0, -5.0},
		{-7.2, -5.0},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMemoryStoreUpsertClampsOnWrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, "u1", "猫", 9.5); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	dict, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if dict["猫"] != MaxWeight {
		t.Fatalf("expected weight saturated at %v, got %v", MaxWeight, dict["猫"])
	}
}

func TestMemoryStoreBatchUpsert(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.BatchUpsert(ctx, "u1", map[string]float64{
		"猫": 1.3,
		"犬": -6.0,
	})
	if err != nil {
		t.Fatalf("batch upsert failed: %v", err)
	}

	dict, _ := store.Get(ctx, "u1")
	if dict["猫"] != 1.3 {
		t.Fatalf("expected 猫 = 1.3, got %v", dict["猫"])
	}
	if dict["犬"] != MinWeight {
		t.Fatalf("expected 犬 clamped to %v, got %v", MinWeight, dict["犬"])
	}
}

func TestMemoryStoreDictionariesAreIsolatedPerUser(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, "alice", "選挙", -5.0); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	dict, _ := store.Get(ctx, "bob")
	if len(dict) != 0 {
		t.Fatalf("expected empty dictionary for other user, got %v", dict)
	}
}

func TestMemoryStoreDeleteWhere(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seed := map[string]float64{
		"近い":  0.05,
		"境界":  0.1,
		"マイナス": -0.1,
		"残る":  0.2,
		"強い":  3.0,
	}
	if err := store.BatchUpsert(ctx, "u1", seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	removed, err := store.DeleteWhere(ctx, "u1", 0.1)
	if err != nil {
		t.Fatalf("delete where failed: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}

	dict, _ := store.Get(ctx, "u1")
	if len(dict) != 2 {
		t.Fatalf("expected 2 words to survive, got %v", dict)
	}
	if _, ok := dict["残る"]; !ok {
		t.Fatal("expected 残る to survive cleanup")
	}
}

func TestMemoryStoreEntriesCarryTimestamps(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, "u1", "猫", 1.0); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	entries, err := store.Entries(ctx, "u1")
	if err != nil {
		t.Fatalf("entries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LastUpdated.IsZero() {
		t.Fatal("expected last updated timestamp to be set")
	}
}

func TestEnabledSources(t *testing.T) {
	dict := map[string]float64{
		"猫":            1.0,
		"SOURCE:yahoo": 1.0,
		"SOURCE:nhk":   -1.0,
	}

	allowed, hasSettings := EnabledSources(dict)
	if !hasSettings {
		t.Fatal("expected source settings to be detected")
	}
	if !allowed["yahoo"] {
		t.Fatal("expected yahoo to be enabled")
	}
	if allowed["nhk"] {
		t.Fatal("expected nhk to be disabled")
	}
	if len(allowed) != 1 {
		t.Fatalf("expected exactly one enabled source, got %v", allowed)
	}
}

func TestEnabledSourcesNoSettings(t *testing.T) {
	allowed, hasSettings := EnabledSources(map[string]float64{"猫": 1.0})
	if hasSettings {
		t.Fatal("expected no source settings for a plain word dictionary")
	}
	if len(allowed) != 0 {
		t.Fatalf("expected empty allowed set, got %v", allowed)
	}
}
