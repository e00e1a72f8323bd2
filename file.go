package memocache

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minlz"
)

// SaveToFile atomically saves cache data to the given filePath.
//
// The data is serialized with [gob] and compressed with minlz. The snapshot
// records every slot in storage order together with the cursor, so the FIFO
// eviction order is preserved across a save/load round trip.
//
// Keys and values must be gob-encodable; nothing else in the package
// requires this.
//
// The saved data may be loaded with [LoadFromFile].
func (c *Cache[K, V]) SaveToFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot stat %q: %s", dir, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create dir %q: %s", dir, err)
		}
	}

	// Save cache data into a temporary file.
	tmpFile, err := os.CreateTemp(dir, "memocache.tmp.*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %s", dir, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if err := c.SaveTo(tmpFile); err != nil {
		_ = tmpFile.Close()

		return fmt.Errorf("cannot save cache data to %q: %s", tmpPath, err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file %q: %s", tmpPath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("cannot rename %q to %q: %s", tmpPath, filePath, err)
	}

	return nil
}

// SaveTo saves cache data to the given writer.
//
// The data is serialized with [gob] and compressed with minlz.
//
// The saved data may be loaded with [LoadFrom].
func (c *Cache[K, V]) SaveTo(w io.Writer) error {
	zw := minlz.NewWriter(w)
	enc := gob.NewEncoder(zw)

	if err := enc.Encode(len(c.slots)); err != nil {
		return fmt.Errorf("cannot encode capacity: %s", err)
	}
	if err := enc.Encode(c.cursor); err != nil {
		return fmt.Errorf("cannot encode cursor: %s", err)
	}

	for i := range c.slots {
		if err := enc.Encode(c.slots[i].used); err != nil {
			return fmt.Errorf("cannot encode slot %d state: %s", i, err)
		}
		if !c.slots[i].used {
			continue
		}
		e := entry[K, V]{Key: c.slots[i].key, Value: c.slots[i].value}
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("cannot encode slot %d entry: %s", i, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("cannot close minlz writer: %s", err)
	}

	return nil
}

// entry is used for serializing key-value pairs.
type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// LoadFromFile loads cache data from the given filePath.
//
// Returns an error if the file does not exist or is corrupted.
//
// See [Cache.SaveToFile] for saving cache data to file.
func LoadFromFile[K comparable, V any](filePath string) (*Cache[K, V], error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return load[K, V](f)
}

// LoadFromFileOrNew tries loading cache data from the given filePath.
//
// The function falls back to creating a new cache with the given capacity
// if an error occurs during loading.
func LoadFromFileOrNew[K comparable, V any](filePath string, capacity int) *Cache[K, V] {
	c, err := LoadFromFile[K, V](filePath)
	if err == nil {
		return c
	}

	return New[K, V](capacity)
}

// LoadFrom loads cache data from the given reader.
//
// Returns an error if the data is corrupted.
//
// See [Cache.SaveTo] for saving cache data to a writer.
func LoadFrom[K comparable, V any](r io.Reader) (*Cache[K, V], error) {
	return load[K, V](r)
}

func load[K comparable, V any](r io.Reader) (*Cache[K, V], error) {
	zr := minlz.NewReader(r)
	dec := gob.NewDecoder(zr)

	var capacity int
	if err := dec.Decode(&capacity); err != nil {
		return nil, fmt.Errorf("cannot decode capacity: %s", err)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("invalid capacity %d", capacity)
	}

	var cursor int
	if err := dec.Decode(&cursor); err != nil {
		return nil, fmt.Errorf("cannot decode cursor: %s", err)
	}
	if cursor < 0 || cursor >= capacity {
		return nil, fmt.Errorf("invalid cursor %d for capacity %d", cursor, capacity)
	}

	c := New[K, V](capacity)
	c.cursor = cursor

	for i := 0; i < capacity; i++ {
		var used bool
		if err := dec.Decode(&used); err != nil {
			return nil, fmt.Errorf("cannot decode slot %d state: %s", i, err)
		}
		if !used {
			continue
		}

		var e entry[K, V]
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("cannot decode slot %d entry: %s", i, err)
		}
		c.slots[i] = slot[K, V]{key: e.Key, value: e.Value, used: true}
		c.used++
	}

	return c, nil
}
