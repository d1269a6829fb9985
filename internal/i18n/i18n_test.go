package i18n

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFS struct {
	fstest.MapFS
	mu    sync.Mutex
	reads map[string]int
}

func (files *countingFS) ReadFile(name string) ([]byte, error) {
	files.mu.Lock()
	files.reads[name]++
	files.mu.Unlock()
	return files.MapFS.ReadFile(name)
}

func newCountingFS(documents map[string]string) *countingFS {
	files := &countingFS{MapFS: fstest.MapFS{}, reads: map[string]int{}}
	for name, content := range documents {
		files.MapFS[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return files
}

func TestTranslateWalksNestedKeysAndSubstitutesParams(t *testing.T) {
	manager, err := NewManager("fr", fstest.MapFS{
		"fr.json": {Data: []byte(`{"a":{"b":"X {n}"}}`)},
	})
	require.NoError(t, err)

	assert.Equal(t, "X 5", manager.Translate("fr", "a.b", map[string]any{"n": 5}))
	assert.Equal(t, "a.c", manager.Translate("fr", "a.c", nil))
	assert.Equal(t, "X {n}", manager.Translate("fr", "a.b", nil))
	assert.Equal(t, "a", manager.Translate("fr", "a", nil), "non-string terminal echoes the key")
	assert.Equal(t, "a.b.c", manager.Translate("fr", "a.b.c", nil))
}

func TestTranslateLeavesUnmatchedPlaceholders(t *testing.T) {
	manager, err := NewManager("en", fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello {name}, you have {count} tasks"}`)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello Anna, you have {count} tasks", manager.Translate("en", "greeting", map[string]any{"name": "Anna", "other": 1}))
}

func TestTranslateFallsBackToDefaultLocaleWhenLoadFails(t *testing.T) {
	manager, err := NewManager("fr", fstest.MapFS{
		"fr.json": {Data: []byte(`{"error":{"internal":"Erreur serveur"}}`)},
		"en.json": {Data: []byte(`{not json`)},
	})
	require.NoError(t, err)

	assert.Equal(t, "Erreur serveur", manager.Translate("en", "error.internal", nil))
	assert.Equal(t, "Erreur serveur", manager.Translate("de", "error.internal", nil))
}

func TestTranslateEchoesKeyWhenEveryLocaleFails(t *testing.T) {
	manager, err := NewManager("fr", fstest.MapFS{
		"fr.json": {Data: []byte(`[]`)},
	})
	require.NoError(t, err)

	assert.Equal(t, "error.internal", manager.Translate("fr", "error.internal", nil))
}

func TestDocumentsAreLoadedOncePerLocale(t *testing.T) {
	files := newCountingFS(map[string]string{
		"fr.json": `{"title":"Mariage"}`,
		"en.json": `{"title":"Wedding"}`,
	})
	manager, err := NewManager("fr", files)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.Translate("en", "title", nil)
			manager.Translate("fr", "title", nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, files.reads["en.json"])
	assert.Equal(t, 1, files.reads["fr.json"])
}

func TestNewManagerRequiresDefaultLocale(t *testing.T) {
	_, err := NewManager("fr", fstest.MapFS{"en.json": {Data: []byte(`{}`)}})
	assert.Error(t, err)

	_, err = NewManager("fr", fstest.MapFS{})
	assert.Error(t, err)
}

func TestLanguageNegotiation(t *testing.T) {
	manager, err := NewEmbeddedManager("fr")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr"}, manager.SupportedLanguages())
	assert.Equal(t, "en", manager.DetectFromAcceptLanguage("de-DE,en-US;q=0.8,fr;q=0.5"))
	assert.Equal(t, "fr", manager.DetectFromAcceptLanguage("de-DE"))
	assert.Equal(t, "en", manager.NormalizeLanguage("EN_gb"))
	assert.Equal(t, "fr", manager.NormalizeLanguage("es"))
	assert.True(t, manager.IsSupported("en-US"))
	assert.False(t, manager.IsSupported("es"))
}

func TestEmbeddedLocalesTranslateErrors(t *testing.T) {
	manager, err := NewEmbeddedManager("fr")
	require.NoError(t, err)

	assert.Equal(t, "Non autorisé", manager.Translate("fr", "error.unauthorized", nil))
	assert.Equal(t, "Unauthorized", manager.Translate("en", "error.unauthorized", nil))
	assert.Equal(t, "Erreur serveur", manager.Translate("fr", "error.internal", nil))
	assert.Equal(t, "The title field is required", manager.Translate("en", "validation.required", map[string]any{"field": "title"}))
}
