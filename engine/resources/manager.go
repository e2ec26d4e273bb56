package resources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/feralbyte/skirmish/engine/core"
)

var ErrManagerClosed = errors.New("resource manager already closed")

type cacheEntry struct {
	resource *Resource
	dirty    bool
}

// Manager loads and caches assets under a base path. A filesystem watcher
// marks changed assets dirty so the next acquire reloads them in place,
// keeping handles stable. The manager never calls back into the renderer.
type Manager struct {
	basePath string
	loaders  map[Type]Loader

	mutex sync.RWMutex
	cache map[string]*cacheEntry

	watcher  *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

func NewManager(basePath string) (*Manager, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("asset path %s: %w", basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %s is not a directory", basePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		basePath: basePath,
		loaders: map[Type]Loader{
			TypeTexture:      &TextureLoader{},
			TypeBitmapFont:   &BitmapFontLoader{},
			TypeShaderSource: &ShaderSourceLoader{},
		},
		cache:   make(map[string]*cacheEntry),
		watcher: watcher,
		done:    make(chan struct{}),
	}

	if err := m.watchRecursive(basePath); err != nil {
		watcher.Close()
		return nil, err
	}
	go m.watch()

	core.LogInfo("Resource manager initialized with base path '%s'.", basePath)
	return m, nil
}

func (m *Manager) watchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return m.watcher.Add(path)
		}
		return nil
	})
}

// watch marks cached assets dirty when their file changes on disk. Reload
// itself happens lazily on the next acquire, on the loop's thread.
func (m *Manager) watch() {
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			key := filepath.Clean(ev.Name)
			m.mutex.Lock()
			if entry, exists := m.cache[key]; exists {
				entry.dirty = true
				core.LogDebug("Asset '%s' changed on disk, marked for reload.", key)
			}
			m.mutex.Unlock()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err.Error())
		}
	}
}

// Acquire returns the cached resource for the given relative path, loading
// it on first use or when the watcher flagged it dirty. The handle survives
// reloads.
func (m *Manager) Acquire(resourceType Type, relPath string) (*Resource, error) {
	if m.isClosed {
		return nil, ErrManagerClosed
	}

	loader, ok := m.loaders[resourceType]
	if !ok {
		return nil, fmt.Errorf("no loader registered for resource type %s", resourceType)
	}

	key := filepath.Clean(filepath.Join(m.basePath, relPath))

	m.mutex.RLock()
	entry, exists := m.cache[key]
	m.mutex.RUnlock()
	if exists && !entry.dirty {
		return entry.resource, nil
	}

	loaded, err := loader.Load(key)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if exists {
		// Keep the original handle so borrowers stay valid across reloads.
		loaded.Handle = entry.resource.Handle
		entry.resource = loaded
		entry.dirty = false
		return loaded, nil
	}
	loaded.Handle = uuid.New()
	m.cache[key] = &cacheEntry{resource: loaded}
	return loaded, nil
}

// ReleaseAll unloads every cached asset and stops the watcher. Called once
// during teardown; the manager is unusable afterwards.
func (m *Manager) ReleaseAll() error {
	if m.isClosed {
		return ErrManagerClosed
	}
	m.isClosed = true
	close(m.done)
	if err := m.watcher.Close(); err != nil {
		core.LogError("failed to close asset watcher: %s", err.Error())
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for key, entry := range m.cache {
		loader := m.loaders[entry.resource.Type]
		if loader != nil {
			if err := loader.Unload(entry.resource); err != nil {
				core.LogError("failed to unload asset '%s': %s", key, err.Error())
			}
		}
		delete(m.cache, key)
	}
	return nil
}
