package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persiste el token entre ejecuciones. Load devuelve "" si no hay token.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore guarda el token en memoria (tests, procesos efímeros).
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore construye un MemoryStore con un token inicial opcional.
func NewMemoryStore(token string) *MemoryStore { return &MemoryStore{token: token} }

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear() error { return m.Save("") }

// FileStore guarda el token en un archivo con permisos 0600.
type FileStore struct {
	path string
}

// NewFileStore construye un FileStore sobre path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// DefaultTokenPath ~/.config/inventory-tracker/token (o el equivalente del SO).
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inventory-tracker", "token"), nil
}

func (f *FileStore) Load() (string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("leer token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio del token: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("guardar token: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("borrar token: %w", err)
	}
	return nil
}
