package header_engine

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test cache manager setup and basic operations
func TestCacheManager_BasicOperations(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "headstamp_cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(tempDir)
	require.NoError(t, err)
	require.NotNil(t, cacheManager)

	// Create a source file to associate cache entries with
	testFile := filepath.Join(tempDir, "test.c")
	content := RenderHeader(testFields(), StyleCBlock, 80)
	err = ioutil.WriteFile(testFile, content, 0644)
	require.NoError(t, err)

	// Nothing cached initially
	_, found := cacheManager.GetHeaderCache(testFile, StyleCBlock.Name)
	assert.False(t, found)

	// Set cache
	parsed := ParseHeader(content, StyleCBlock)
	require.True(t, parsed.Present)
	err = cacheManager.SetHeaderCache(testFile, StyleCBlock.Name, parsed)
	require.NoError(t, err)

	// Get from cache
	cached, found := cacheManager.GetHeaderCache(testFile, StyleCBlock.Name)
	assert.True(t, found)
	assert.Equal(t, parsed.Span, cached.Span)
	assert.Equal(t, parsed.Fields.FileName, cached.Fields.FileName)
	assert.True(t, parsed.Fields.CreatedAt.Equal(cached.Fields.CreatedAt))
}

// Test cache invalidation when the source file is modified
func TestCacheManager_FileInvalidation(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "headstamp_cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(tempDir)
	require.NoError(t, err)

	testFile := filepath.Join(tempDir, "test.c")
	content := RenderHeader(testFields(), StyleCBlock, 80)
	err = ioutil.WriteFile(testFile, content, 0644)
	require.NoError(t, err)

	parsed := ParseHeader(content, StyleCBlock)
	require.NoError(t, cacheManager.SetHeaderCache(testFile, StyleCBlock.Name, parsed))

	_, found := cacheManager.GetHeaderCache(testFile, StyleCBlock.Name)
	require.True(t, found)

	// Modify the file; size and mtime change invalidate the entry
	err = ioutil.WriteFile(testFile, append(content, []byte("\nint x;\n")...), 0644)
	require.NoError(t, err)
	err = os.Chtimes(testFile, time.Now().Add(time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, found = cacheManager.GetHeaderCache(testFile, StyleCBlock.Name)
	assert.False(t, found)
}

// Test that a style change invalidates a cached parse
func TestCacheManager_StyleMismatch(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "headstamp_cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(tempDir)
	require.NoError(t, err)

	testFile := filepath.Join(tempDir, "test.c")
	require.NoError(t, ioutil.WriteFile(testFile, []byte("int x;\n"), 0644))

	require.NoError(t, cacheManager.SetHeaderCache(testFile, StyleCBlock.Name, models.ParsedHeader{}))

	_, found := cacheManager.GetHeaderCache(testFile, StyleHash.Name)
	assert.False(t, found)
}

func TestCacheManager_ClearAndStats(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "headstamp_cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(tempDir)
	require.NoError(t, err)

	testFile := filepath.Join(tempDir, "test.c")
	require.NoError(t, ioutil.WriteFile(testFile, []byte("int x;\n"), 0644))
	require.NoError(t, cacheManager.SetHeaderCache(testFile, StyleCBlock.Name, models.ParsedHeader{}))

	stats := cacheManager.GetStats()
	assert.Equal(t, true, stats["cache_enabled"])
	assert.Equal(t, 1, stats["cache_files"])

	require.NoError(t, cacheManager.ClearCache())
	stats = cacheManager.GetStats()
	assert.Equal(t, 0, stats["cache_files"])
}

func TestEngine_CacheDisabled(t *testing.T) {
	engine := NewEngine("", false)

	stats, err := engine.GetCacheStats()
	require.NoError(t, err)
	assert.Equal(t, false, stats["cache_enabled"])
	assert.NoError(t, engine.ClearCache())
}
