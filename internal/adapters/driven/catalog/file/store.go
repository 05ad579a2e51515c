package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
	"github.com/pantrykit/pantry-cli/internal/core/ports/driven"
	"github.com/pantrykit/pantry-cli/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.CatalogStore   = (*Store)(nil)
	_ driven.CatalogWatcher = (*Store)(nil)
)

// catalogFile is the on-disk TOML shape.
type catalogFile struct {
	Schema struct {
		People []string `toml:"people"`
	} `toml:"schema"`
	Foods []map[string]any `toml:"foods"`
}

// Store is a TOML-file-backed catalog store.
type Store struct {
	filePath string
}

// NewStore creates a catalog store for the given file path.
// If path is empty, defaults to ~/.pantry/catalog.toml.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".pantry", "catalog.toml")
	}
	return &Store{filePath: path}, nil
}

// Load reads and decodes the catalog file.
func (s *Store) Load(_ context.Context) (*driven.Catalog, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	var decoded catalogFile
	if err := toml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(decoded.Schema.People) != 2 {
		return nil, fmt.Errorf("schema.people must list exactly two people, got %d", len(decoded.Schema.People))
	}

	catalog := &driven.Catalog{
		People: [2]string{decoded.Schema.People[0], decoded.Schema.People[1]},
		Foods:  make([]domain.RawFood, len(decoded.Foods)),
	}
	for i, raw := range decoded.Foods {
		catalog.Foods[i] = domain.RawFood(raw)
	}
	return catalog, nil
}

// Path returns the catalog file path.
func (s *Store) Path() string {
	return s.filePath
}

// Watch invokes onChange after every write to the catalog file until
// ctx is cancelled. The parent directory is watched rather than the
// file itself: editors typically replace the file on save, which
// would otherwise drop the watch.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		return err
	}

	target := filepath.Clean(s.filePath)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				logger.Debug("catalog file changed: %s", event.Op)
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watch error: %v", err)
		}
	}
}
