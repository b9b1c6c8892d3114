package header_engine

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/zeebo/xxh3"
)

// CacheEntry is a cached parse result with the file metadata used for
// invalidation.
type CacheEntry struct {
	Header    models.ParsedHeader
	StyleName string
	Timestamp time.Time
	FileSize  int64
	ModTime   time.Time
}

// FileCache manages on-disk parse caching with invalidation on file change.
type FileCache struct {
	cacheDir string
	mutex    sync.RWMutex
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
	LastResetTime time.Time
	mutex         sync.RWMutex
}

// CacheManager provides high-level caching of header parse results, so a
// repeated run over a large tree only re-parses files that actually changed.
type CacheManager struct {
	fileCache *FileCache
	stats     *CacheStats
}

// NewCacheManager creates a new cache manager instance. If cacheDir is empty
// it defaults to ".headstamp-cache" in the current working directory.
func NewCacheManager(cacheDir string) (*CacheManager, error) {
	if cacheDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		cacheDir = filepath.Join(cwd, ".headstamp-cache")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cacheManager := &CacheManager{
		fileCache: &FileCache{cacheDir: cacheDir},
		stats: &CacheStats{
			LastResetTime: time.Now(),
		},
	}

	go cacheManager.performAutoCleanup()

	return cacheManager, nil
}

// generateCacheKey creates a unique cache file name for a source path.
func (fc *FileCache) generateCacheKey(filePath string) string {
	return fmt.Sprintf("%016x.cache", xxh3.HashString(filePath))
}

func (fc *FileCache) getCachePath(cacheKey string) string {
	return filepath.Join(fc.cacheDir, cacheKey)
}

// isFileChanged checks if a file has been modified since it was cached.
func (fc *FileCache) isFileChanged(filePath string, entry *CacheEntry) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return true
	}
	return !fileInfo.ModTime().Equal(entry.ModTime) || fileInfo.Size() != entry.FileSize
}

// Get retrieves a cached parse result if still valid for the file and style.
func (fc *FileCache) Get(filePath, styleName string) (models.ParsedHeader, bool) {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()

	cachePath := fc.getCachePath(fc.generateCacheKey(filePath))

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return models.ParsedHeader{}, false
	}

	var entry CacheEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		os.Remove(cachePath)
		return models.ParsedHeader{}, false
	}

	if entry.StyleName != styleName || fc.isFileChanged(filePath, &entry) {
		os.Remove(cachePath)
		return models.ParsedHeader{}, false
	}

	return entry.Header, true
}

// Set stores a parse result together with the file metadata it is valid for.
func (fc *FileCache) Set(filePath, styleName string, header models.ParsedHeader) error {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	entry := CacheEntry{
		Header:    header,
		StyleName: styleName,
		Timestamp: time.Now(),
		FileSize:  fileInfo.Size(),
		ModTime:   fileInfo.ModTime(),
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&entry); err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	cachePath := fc.getCachePath(fc.generateCacheKey(filePath))
	if err := os.WriteFile(cachePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Clear removes all cache files.
func (fc *FileCache) Clear() error {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	entries, err := os.ReadDir(fc.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".cache") {
			os.Remove(filepath.Join(fc.cacheDir, entry.Name()))
		}
	}
	return nil
}

// GetHeaderCache returns a cached parse result for a file, if any.
func (cm *CacheManager) GetHeaderCache(filePath, styleName string) (models.ParsedHeader, bool) {
	cm.stats.recordRequest()
	header, found := cm.fileCache.Get(filePath, styleName)
	if found {
		cm.stats.recordHit()
	} else {
		cm.stats.recordMiss()
	}
	return header, found
}

// SetHeaderCache stores a parse result for a file.
func (cm *CacheManager) SetHeaderCache(filePath, styleName string, header models.ParsedHeader) error {
	return cm.fileCache.Set(filePath, styleName, header)
}

// ClearCache removes all cached parse results.
func (cm *CacheManager) ClearCache() error {
	if err := cm.fileCache.Clear(); err != nil {
		return err
	}
	cm.stats.reset()
	return nil
}

// GetStats returns statistics about the cache.
func (cm *CacheManager) GetStats() map[string]interface{} {
	cm.stats.mutex.RLock()
	defer cm.stats.mutex.RUnlock()

	stats := make(map[string]interface{})
	stats["cache_enabled"] = true
	stats["cache_dir"] = cm.fileCache.cacheDir

	files := 0
	var totalSize int64
	if entries, err := os.ReadDir(cm.fileCache.cacheDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cache") {
				continue
			}
			files++
			if info, err := entry.Info(); err == nil {
				totalSize += info.Size()
			}
		}
	}
	stats["cache_files"] = files
	stats["total_size"] = totalSize

	if cm.stats.TotalRequests > 0 {
		stats["hit_rate"] = float64(cm.stats.CacheHits) / float64(cm.stats.TotalRequests) * 100
	} else {
		stats["hit_rate"] = float64(0)
	}
	return stats
}

// performAutoCleanup drops cache entries older than a week.
func (cm *CacheManager) performAutoCleanup() {
	cutoff := time.Now().Add(-7 * 24 * time.Hour)

	entries, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cache") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(cm.fileCache.cacheDir, entry.Name()))
		}
	}
}

func (cs *CacheStats) recordRequest() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	cs.TotalRequests++
}

func (cs *CacheStats) recordHit() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	cs.CacheHits++
}

func (cs *CacheStats) recordMiss() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	cs.CacheMisses++
}

func (cs *CacheStats) reset() {
	cs.mutex.Lock()
	defer cs.mutex.Unlock()
	cs.TotalRequests = 0
	cs.CacheHits = 0
	cs.CacheMisses = 0
	cs.LastResetTime = time.Now()
}
