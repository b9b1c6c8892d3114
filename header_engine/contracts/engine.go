package contracts

import (
	"github.com/headstamp/headstamp/header_engine/models"
)

// IHeaderEngine processes one file at a time: classify the comment style,
// parse an existing header, decide whether to insert, update or skip, and
// produce the new file content. Implementations are stateless per file apart
// from an optional parse cache.
type IHeaderEngine interface {
	ProcessFile(path string, relPath string, content []byte, stamp models.Stamp, identity models.Identity, opts models.Options) models.FileResult
	GetCacheStats() (map[string]interface{}, error)
	ClearCache() error
}
