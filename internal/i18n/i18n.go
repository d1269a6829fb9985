package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

const (
	LangFR = "fr"
	LangEN = "en"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Manager resolves dot-separated keys against nested locale documents.
// Documents are read from files on first use and kept for the lifetime of
// the manager, including failed reads.
type Manager struct {
	defaultLanguage string
	files           fs.FS
	supported       []string

	mu        sync.RWMutex
	documents map[string]map[string]any
}

func NewEmbeddedManager(defaultLanguage string) (*Manager, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewManager(defaultLanguage, locales)
}

// NewManager lists the *.json documents in files without parsing them.
func NewManager(defaultLanguage string, files fs.FS) (*Manager, error) {
	names, err := fs.Glob(files, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no locales found")
	}

	manager := &Manager{
		files:     files,
		documents: map[string]map[string]any{},
	}
	for _, name := range names {
		manager.supported = append(manager.supported, strings.ToLower(strings.TrimSuffix(name, path.Ext(name))))
	}
	sort.Strings(manager.supported)

	language := normalizeLanguageTag(defaultLanguage)
	if !manager.isSupported(language) {
		return nil, fmt.Errorf("default locale %q missing", defaultLanguage)
	}
	manager.defaultLanguage = language
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	normalized := normalizeLanguageTag(raw)
	if manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

func (manager *Manager) IsSupported(raw string) bool {
	return manager.isSupported(normalizeLanguageTag(raw))
}

func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		token = strings.TrimSpace(strings.Split(token, ";")[0])
		normalized := normalizeLanguageTag(token)
		if manager.isSupported(normalized) {
			return normalized
		}
	}
	return manager.defaultLanguage
}

// Translate never returns an empty string: an unknown key, a key that does
// not end on a string, or a locale that cannot be loaded all yield the key
// itself. Placeholders without a matching param are left untouched.
func (manager *Manager) Translate(language string, key string, params map[string]any) string {
	document, ok := manager.document(manager.NormalizeLanguage(language))
	if !ok {
		document, ok = manager.document(manager.defaultLanguage)
	}
	if !ok {
		return key
	}

	value, ok := lookup(document, key)
	if !ok {
		return key
	}
	return interpolate(value, params)
}

func (manager *Manager) document(language string) (map[string]any, bool) {
	manager.mu.RLock()
	document, cached := manager.documents[language]
	manager.mu.RUnlock()
	if cached {
		return document, document != nil
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()
	if document, cached := manager.documents[language]; cached {
		return document, document != nil
	}

	document, err := loadDocument(manager.files, language+".json")
	if err != nil {
		document = nil
	}
	manager.documents[language] = document
	return document, document != nil
}

func loadDocument(files fs.FS, name string) (map[string]any, error) {
	content, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, err
	}
	document := map[string]any{}
	if err := json.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", name, err)
	}
	return document, nil
}

func lookup(document map[string]any, key string) (string, bool) {
	var current any = document
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}
	value, ok := current.(string)
	return value, ok
}

func interpolate(value string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(value, "{") {
		return value
	}
	replacements := make([]string, 0, len(params)*2)
	for name, param := range params {
		replacements = append(replacements, "{"+name+"}", fmt.Sprint(param))
	}
	return strings.NewReplacer(replacements...).Replace(value)
}

func (manager *Manager) isSupported(language string) bool {
	if language == "" {
		return false
	}
	for _, supported := range manager.supported {
		if supported == language {
			return true
		}
	}
	return false
}

func normalizeLanguageTag(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	if language == "" {
		return ""
	}
	language = strings.ReplaceAll(language, "_", "-")
	if separator := strings.Index(language, "-"); separator >= 0 {
		language = language[:separator]
	}
	return language
}
