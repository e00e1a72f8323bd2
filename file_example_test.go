package memocache_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.dw1.io/memocache"
)

// ExampleCache_SaveToFile demonstrates saving cache data to a file.
func ExampleCache_SaveToFile() {
	// Create a temporary file for the example
	tmpDir, _ := os.MkdirTemp("", "memocache-example")
	defer func() { _ = os.RemoveAll(tmpDir) }()
	filePath := filepath.Join(tmpDir, "cache.dat")

	cache := memocache.New[string, int](100)

	// Add some data
	cache.Set("users", 1000)
	cache.Set("posts", 5000)

	// Save to file
	err := cache.SaveToFile(filePath)
	if err != nil {
		fmt.Println("Error saving:", err)
		return
	}

	fmt.Println("Cache saved successfully")

	// Output:
	// Cache saved successfully
}

// ExampleLoadFromFile demonstrates loading cache data from a file.
func ExampleLoadFromFile() {
	// Create a temporary file for the example
	tmpDir, _ := os.MkdirTemp("", "memocache-example")
	defer func() { _ = os.RemoveAll(tmpDir) }()
	filePath := filepath.Join(tmpDir, "cache.dat")

	// First, create and save a cache
	cache := memocache.New[string, string](100)
	cache.Set("greeting", "hello")
	cache.Set("language", "Go")
	err := cache.SaveToFile(filePath)
	if err != nil {
		fmt.Println("Error saving:", err)
		return
	}

	// Now load it back
	loadedCache, err := memocache.LoadFromFile[string, string](filePath)
	if err != nil {
		fmt.Println("Error loading:", err)
		return
	}

	if v, ok := loadedCache.Get("greeting"); ok {
		fmt.Println("greeting:", v)
	}
	if v, ok := loadedCache.Get("language"); ok {
		fmt.Println("language:", v)
	}

	// Output:
	// greeting: hello
	// language: Go
}

// ExampleCache_SaveTo demonstrates saving cache data to an arbitrary writer.
func ExampleCache_SaveTo() {
	cache := memocache.New[int, int](8)
	cache.Set(1, 100)
	cache.Set(2, 200)

	var buf bytes.Buffer
	if err := cache.SaveTo(&buf); err != nil {
		fmt.Println("Error saving:", err)
		return
	}

	restored, err := memocache.LoadFrom[int, int](&buf)
	if err != nil {
		fmt.Println("Error loading:", err)
		return
	}

	fmt.Println("entries:", restored.Len())

	// Output:
	// entries: 2
}

// ExampleLoadFromFileOrNew demonstrates the fallback constructor.
func ExampleLoadFromFileOrNew() {
	// The file doesn't exist, so a fresh cache is returned instead.
	cache := memocache.LoadFromFileOrNew[string, int]("does-not-exist.dat", 32)

	fmt.Println("capacity:", cache.Capacity())
	fmt.Println("entries:", cache.Len())

	// Output:
	// capacity: 32
	// entries: 0
}
