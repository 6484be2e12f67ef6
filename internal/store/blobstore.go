// Package store implements the durable embedded database for fieldsync: a
// byte-image blob store, a SQLite engine hydrated from that image, the schema
// catalog, and the Store façade every other layer goes through.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zylem/fieldsync/pkg/types"
)

// blobStore persists a single opaque database image under a fixed name inside
// a directory. The image is the only durable artifact; everything else the
// engine touches is scratch state rebuilt from it.
type blobStore struct {
	dir  string
	name string
}

func newBlobStore(dir, name string) *blobStore {
	return &blobStore{dir: dir, name: name}
}

func (b *blobStore) imagePath() string {
	return filepath.Join(b.dir, b.name+".image")
}

func (b *blobStore) versionPath() string {
	return filepath.Join(b.dir, b.name+".version")
}

// ensureDir creates the data directory. Failure means the byte store is
// unusable and callers should run in-memory only.
func (b *blobStore) ensureDir() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", types.ErrStorageUnavailable, b.dir, err)
	}
	return nil
}

// Load reads the stored image. A missing image is a normal first run and
// returns (nil, nil); anything else wraps ErrStorageUnavailable.
func (b *blobStore) Load() ([]byte, error) {
	data, err := os.ReadFile(b.imagePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading image: %v", types.ErrStorageUnavailable, err)
	}
	return data, nil
}

// Save atomically replaces the stored image using the temp-file, fsync,
// rename pattern. The previous image stays intact until the rename, so a
// crash mid-save never corrupts older state.
func (b *blobStore) Save(data []byte) error {
	if err := b.ensureDir(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.dir, ".image-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp image: %v", types.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing image: %v", types.ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing image: %v", types.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp image: %v", types.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, b.imagePath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing image: %v", types.ErrStorageUnavailable, err)
	}
	return nil
}

// Clear removes the stored image and version marker. Missing files are fine.
func (b *blobStore) Clear() error {
	if err := os.Remove(b.imagePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing image: %v", types.ErrStorageUnavailable, err)
	}
	if err := os.Remove(b.versionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing version marker: %v", types.ErrStorageUnavailable, err)
	}
	return nil
}

// LoadVersion returns the integer stored in the version marker, or 0 when no
// marker exists. The marker lives outside the image on purpose: schema
// migration is decided before the engine is hydrated.
func (b *blobStore) LoadVersion() (int, error) {
	data, err := os.ReadFile(b.versionPath())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading version marker: %v", types.ErrStorageUnavailable, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		// Treat a garbled marker as version 0 so open forces a rebuild.
		return 0, nil
	}
	return v, nil
}

// SaveVersion writes the version marker.
func (b *blobStore) SaveVersion(v int) error {
	if err := b.ensureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(b.versionPath(), []byte(strconv.Itoa(v)+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: writing version marker: %v", types.ErrStorageUnavailable, err)
	}
	return nil
}
