package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const PublicPrefix = "/uploads"

var ErrOutsideRoot = errors.New("path escapes upload root")

// LocalStore writes uploaded documents below root. Files are exposed under
// PublicPrefix by the HTTP server.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (store *LocalStore) Root() string {
	return store.root
}

func (store *LocalStore) Save(coupleID uint, extension string, content io.Reader) (string, error) {
	relative := path.Join("documents", fmt.Sprint(coupleID), uuid.NewString()+extension)
	target := filepath.Join(store.root, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", err
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(target)
		return "", err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(target)
		return "", err
	}
	return PublicPrefix + "/" + relative, nil
}

// Remove deletes the file behind a public URL. A missing file is not an error.
func (store *LocalStore) Remove(fileURL string) error {
	target, err := store.resolve(fileURL)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (store *LocalStore) resolve(fileURL string) (string, error) {
	relative := strings.TrimPrefix(fileURL, PublicPrefix+"/")
	if relative == fileURL {
		return "", ErrOutsideRoot
	}
	cleaned := path.Clean("/" + relative)
	if cleaned == "/" || strings.Contains(relative, "..") {
		return "", ErrOutsideRoot
	}
	return filepath.Join(store.root, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}
