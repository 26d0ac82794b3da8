package i18n

import "testing"

func TestCatalogsCoverSameKeys(t *testing.T) {
	for lang, catalog := range catalogs {
		if lang == "ru" {
			continue
		}
		for key := range ru {
			if _, ok := catalog[key]; !ok {
				t.Errorf("%s catalog is missing %q", lang, key)
			}
		}
		for key := range catalog {
			if _, ok := ru[key]; !ok {
				t.Errorf("%s catalog has extra key %q", lang, key)
			}
		}
	}
}

func TestTFormatsAndFallsBack(t *testing.T) {
	got := T("en", "login_ok", "Alice")
	if got != "Logged in as Alice." {
		t.Fatalf("T = %q", got)
	}

	// Unknown language falls back to Russian.
	if T("de", "language_set") != ru["language_set"] {
		t.Fatal("unknown language did not fall back to ru")
	}

	// Unknown key degrades to the key itself.
	if T("ru", "no_such_key") != "no_such_key" {
		t.Fatal("unknown key did not degrade to itself")
	}
}

func TestHas(t *testing.T) {
	if !Has("uz", "btn_tests") {
		t.Fatal("uz catalog lost btn_tests")
	}
	if Has("ru", "definitely_missing") {
		t.Fatal("Has reported a phantom key")
	}
}
