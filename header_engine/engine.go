package header_engine

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"unicode/utf8"

	"github.com/headstamp/headstamp/header_engine/contracts"
	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/zeebo/xxh3"
)

// Engine composes the registry, parser, policy and renderer into the per-file
// rewrite pipeline.
type Engine struct {
	cacheManager *CacheManager
}

// NewEngine initializes a new header engine. When caching is enabled, parse
// results are cached on disk and invalidated when the file changes.
func NewEngine(cacheDir string, enableCache bool) contracts.IHeaderEngine {
	var cacheManager *CacheManager
	if enableCache {
		var err error
		cacheManager, err = NewCacheManager(cacheDir)
		if err != nil {
			// Fall back to no caching if cache initialization fails
			log.Printf("Warning: Failed to initialize cache manager: %v", err)
			cacheManager = nil
		}
	}
	return &Engine{cacheManager: cacheManager}
}

// ProcessFile runs the rewrite state machine for one file: classify the
// style from the extension, parse any existing header, decide between
// update, insert and skip, then render and splice the new block. The
// returned result carries the full new content; nothing is written to
// storage here, so a dry run and a commit run compute identical bytes.
func (e *Engine) ProcessFile(path string, relPath string, content []byte, stamp models.Stamp, identity models.Identity, opts models.Options) models.FileResult {
	result := models.FileResult{
		RelativePath: relPath,
		NewContent:   content,
		OldHash:      xxh3.Hash(content),
	}
	result.NewHash = result.OldHash

	style, ok := ResolveStyle(filepath.Ext(relPath))
	if !ok {
		result.Outcome = models.RewriteOutcome{
			Kind:   models.OutcomeSkipped,
			Reason: "unsupported extension",
		}
		return result
	}

	if !utf8.Valid(content) {
		result.Outcome = models.RewriteOutcome{
			Kind:   models.OutcomeFailed,
			Reason: "not valid UTF-8 text",
		}
		result.Err = fmt.Errorf("%s: content is not valid UTF-8 text", relPath)
		return result
	}

	parsed := e.parseWithCache(path, content, style)
	fileName := filepath.Base(relPath)

	if parsed.Present {
		width := opts.Width
		if opts.PreserveWidth && parsed.Width >= MinWidth {
			width = parsed.Width
		}

		fields := DecideFields(&parsed.Fields, fileName, stamp, identity, opts.ClampSameDay)
		rendered := RenderHeader(fields, style, width)

		oldFields := parsed.Fields
		if bytes.Equal(content[parsed.Span.Start:parsed.Span.End], rendered) {
			result.Outcome = models.RewriteOutcome{
				Kind:      models.OutcomeUnchanged,
				OldFields: &oldFields,
				NewFields: &fields,
			}
			return result
		}

		newContent := make([]byte, 0, len(content)-(parsed.Span.End-parsed.Span.Start)+len(rendered))
		newContent = append(newContent, content[:parsed.Span.Start]...)
		newContent = append(newContent, rendered...)
		newContent = append(newContent, content[parsed.Span.End:]...)

		result.NewContent = newContent
		result.NewHash = xxh3.Hash(newContent)
		result.Outcome = models.RewriteOutcome{
			Kind:      models.OutcomeUpdated,
			OldFields: &oldFields,
			NewFields: &fields,
		}
		return result
	}

	if !opts.AddMissing {
		result.Outcome = models.RewriteOutcome{
			Kind:   models.OutcomeSkipped,
			Reason: "no header, insertion disabled",
		}
		return result
	}

	fields := DecideFields(nil, fileName, stamp, identity, opts.ClampSameDay)
	rendered := RenderHeader(fields, style, opts.Width)

	result.NewContent = insertHeader(content, rendered)
	result.NewHash = xxh3.Hash(result.NewContent)
	result.Outcome = models.RewriteOutcome{
		Kind:      models.OutcomeInserted,
		NewFields: &fields,
	}
	return result
}

// insertHeader places the rendered block at the top of the file, after a
// shebang line if one is present, followed by one separator line.
func insertHeader(content, rendered []byte) []byte {
	prefix := []byte(nil)
	rest := content
	if bytes.HasPrefix(content, []byte("#!")) {
		if nl := bytes.IndexByte(content, '\n'); nl >= 0 {
			prefix = content[:nl+1]
			rest = content[nl+1:]
		} else {
			prefix = append(append([]byte{}, content...), '\n')
			rest = nil
		}
	}

	newContent := make([]byte, 0, len(content)+len(rendered)+2)
	newContent = append(newContent, prefix...)
	newContent = append(newContent, rendered...)
	newContent = append(newContent, '\n')
	newContent = append(newContent, rest...)
	return newContent
}

func (e *Engine) parseWithCache(path string, content []byte, style models.CommentStyle) models.ParsedHeader {
	if e.cacheManager == nil || path == "" {
		return ParseHeader(content, style)
	}
	if header, found := e.cacheManager.GetHeaderCache(path, style.Name); found {
		return header
	}
	header := ParseHeader(content, style)
	_ = e.cacheManager.SetHeaderCache(path, style.Name, header)
	return header
}

// GetCacheStats returns statistics about the parse cache.
func (e *Engine) GetCacheStats() (map[string]interface{}, error) {
	if e.cacheManager == nil {
		return map[string]interface{}{"cache_enabled": false}, nil
	}
	return e.cacheManager.GetStats(), nil
}

// ClearCache removes all cached parse results.
func (e *Engine) ClearCache() error {
	if e.cacheManager == nil {
		return nil
	}
	return e.cacheManager.ClearCache()
}
