package i18n

import (
	"encoding/json"
	"io/fs"
	"sort"
	"strings"
	"testing"
)

func TestLocaleKeysParity(t *testing.T) {
	en := mustLoadLocaleKeys(t, "en")
	fr := mustLoadLocaleKeys(t, "fr")

	missingInFR := missingKeys(en, fr)
	missingInEN := missingKeys(fr, en)

	if len(missingInFR) > 0 {
		t.Errorf("keys missing in fr locale: %s", strings.Join(missingInFR, ", "))
	}
	if len(missingInEN) > 0 {
		t.Errorf("keys missing in en locale: %s", strings.Join(missingInEN, ", "))
	}
}

func mustLoadLocaleKeys(t *testing.T, language string) map[string]struct{} {
	t.Helper()

	content, err := fs.ReadFile(embeddedLocales, "locales/"+language+".json")
	if err != nil {
		t.Fatalf("read locale %q: %v", language, err)
	}

	document := map[string]any{}
	if err := json.Unmarshal(content, &document); err != nil {
		t.Fatalf("parse locale %q: %v", language, err)
	}

	keys := map[string]struct{}{}
	collectKeys("", document, keys)
	if len(keys) == 0 {
		t.Fatalf("locale %q is empty", language)
	}
	return keys
}

func collectKeys(prefix string, node map[string]any, keys map[string]struct{}) {
	for name, value := range node {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if child, ok := value.(map[string]any); ok {
			collectKeys(key, child, keys)
			continue
		}
		keys[key] = struct{}{}
	}
}

func missingKeys(source map[string]struct{}, target map[string]struct{}) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
