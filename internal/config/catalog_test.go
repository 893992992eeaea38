package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogSeedFile(t *testing.T) {
	cat, err := LoadCatalog(filepath.Join("testdata", "festivals.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.TithiRules) == 0 {
		t.Error("expected at least one tithi rule")
	}
	if len(cat.NakshatraRules) == 0 {
		t.Error("expected at least one nakshatra rule")
	}
	if len(cat.FixedRules) == 0 {
		t.Error("expected at least one fixed-date rule")
	}

	var foundDeepavali bool
	for _, r := range cat.TithiRules {
		if r.Name.En == "Deepavali" {
			foundDeepavali = true
			if r.Tithi != 30 || r.Paksha != "krishna" {
				t.Errorf("Deepavali rule mismatch: %+v", r)
			}
		}
	}
	if !foundDeepavali {
		t.Error("expected seed catalog to contain Deepavali")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog("testdata/does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestLoadCatalogRejectsInconsistentPaksha(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := "tithiRules:\n  - name:\n      en: Bad Rule\n    type: religious\n    month: 7\n    tithi: 30\n    paksha: shukla\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadCatalog(path)
	if err == nil {
		t.Fatal("expected paksha-mismatch validation error")
	}
	var valErr *CatalogValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *CatalogValidationError, got %T: %v", err, err)
	}
}
