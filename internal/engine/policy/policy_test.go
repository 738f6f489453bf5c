package policy

import (
	"os"
	"path/filepath"
	"testing"

	"buildsmart_backend/internal/engine/domain"
)

func TestSizeDefault_RoomSpecific(t *testing.T) {
	pol := Default()

	sqft, ok := pol.SizeDefault("small", domain.RoomBathroom)
	if !ok || sqft != 40 {
		t.Fatalf("small bathroom: got %g %v, want 40", sqft, ok)
	}
	sqft, ok = pol.SizeDefault("medium", domain.RoomKitchen)
	if !ok || sqft != 150 {
		t.Fatalf("medium kitchen: got %g %v, want 150", sqft, ok)
	}
	sqft, ok = pol.SizeDefault("large", domain.RoomBedroom)
	if !ok || sqft != 250 {
		t.Fatalf("large bedroom: got %g %v, want 250", sqft, ok)
	}
}

func TestSizeDefault_FallsBackToDefault(t *testing.T) {
	sqft, ok := Default().SizeDefault("medium", domain.RoomLivingRoom)
	if !ok || sqft != 250 {
		t.Fatalf("medium living room: got %g %v, want the 250 fallback", sqft, ok)
	}
}

func TestSizeDefault_MasterBathroomSharesBathroomDefaults(t *testing.T) {
	master, _ := Default().SizeDefault("large", domain.RoomMasterBathroom)
	regular, _ := Default().SizeDefault("large", domain.RoomBathroom)
	if master != regular {
		t.Fatalf("master bathroom %g must share bathroom default %g", master, regular)
	}
}

func TestSizeDefault_UnknownDescriptor(t *testing.T) {
	if _, ok := Default().SizeDefault("gigantic", domain.RoomKitchen); ok {
		t.Fatalf("unknown descriptor must not resolve")
	}
}

func TestBudgetBand(t *testing.T) {
	band, ok := Default().BudgetBand(domain.TierMedium)
	if !ok {
		t.Fatalf("medium band missing")
	}
	if band.MinPerSqFt != 125 || band.MaxPerSqFt != 225 {
		t.Fatalf("medium band: got %g-%g, want 125-225", band.MinPerSqFt, band.MaxPerSqFt)
	}
}

func TestLoad_OverlaysOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := "budgetFloorMin: 7500\nbudgetBands:\n  low:\n    minPerSqFt: 50\n    maxPerSqFt: 90\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	pol, err := Load(path)
	if err != nil {
		t.Fatalf("load policy: %v", err)
	}
	if pol.BudgetFloorMin != 7500 {
		t.Fatalf("expected overridden floor 7500, got %g", pol.BudgetFloorMin)
	}
	if pol.BudgetFloorMax != 10000 {
		t.Fatalf("expected default floor 10000 to survive, got %g", pol.BudgetFloorMax)
	}
	band, ok := pol.BudgetBand(domain.TierLow)
	if !ok || band.MinPerSqFt != 50 || band.MaxPerSqFt != 90 {
		t.Fatalf("expected overridden low band 50-90, got %g-%g %v", band.MinPerSqFt, band.MaxPerSqFt, ok)
	}
	// Size defaults were omitted from the overlay and keep their values.
	if sqft, _ := pol.SizeDefault("small", domain.RoomKitchen); sqft != 100 {
		t.Fatalf("expected default size tables to survive, got %g", sqft)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
