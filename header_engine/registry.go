package header_engine

import (
	"sort"
	"strings"

	"github.com/headstamp/headstamp/header_engine/models"
)

// Comment style families. Headers are framed line by line, so block-comment
// languages get one delimiter pair per line and line-comment languages mirror
// their marker on both ends of each line.
var (
	StyleCBlock = models.CommentStyle{Name: "c-block", Open: "/* ", Close: " */", Filler: '*'}
	StyleSlash  = models.CommentStyle{Name: "slash-line", Open: "// ", Close: " //", Filler: '/'}
	StyleHash   = models.CommentStyle{Name: "hash-line", Open: "# ", Close: " #", Filler: '#'}
	StyleDash   = models.CommentStyle{Name: "dash-line", Open: "-- ", Close: " --", Filler: '-'}
	StyleHTML   = models.CommentStyle{Name: "html-block", Open: "<!-- ", Close: " -->", Filler: '-'}
	StyleOCaml  = models.CommentStyle{Name: "ocaml-block", Open: "(* ", Close: " *)", Filler: '*'}
	StyleAsm    = models.CommentStyle{Name: "semicolon-line", Open: "; ", Close: " ;", Filler: ';'}
	StyleLisp   = models.CommentStyle{Name: "lisp-line", Open: ";; ", Close: " ;;", Filler: ';'}
	StyleVim    = models.CommentStyle{Name: "vim-line", Open: "\" ", Close: " \"", Filler: '"'}
	StyleTeX    = models.CommentStyle{Name: "percent-line", Open: "% ", Close: " %", Filler: '%'}
	StyleF90    = models.CommentStyle{Name: "bang-line", Open: "! ", Close: " !", Filler: '!'}
)

// styleByExtension maps a lowercase file extension (with leading dot) to its
// comment style. Extensions not listed here are not supported and the file is
// skipped unless the caller overrides the recognized set.
var styleByExtension = map[string]models.CommentStyle{
	".c":    StyleCBlock,
	".h":    StyleCBlock,
	".cpp":  StyleCBlock,
	".hpp":  StyleCBlock,
	".cc":   StyleCBlock,
	".cxx":  StyleCBlock,
	".java": StyleCBlock,
	".css":  StyleCBlock,

	".go":    StyleSlash,
	".js":    StyleSlash,
	".jsx":   StyleSlash,
	".ts":    StyleSlash,
	".tsx":   StyleSlash,
	".cs":    StyleSlash,
	".rs":    StyleSlash,
	".swift": StyleSlash,
	".kt":    StyleSlash,
	".scala": StyleSlash,

	".py":   StyleHash,
	".sh":   StyleHash,
	".bash": StyleHash,
	".rb":   StyleHash,
	".pl":   StyleHash,
	".yml":  StyleHash,
	".yaml": StyleHash,
	".toml": StyleHash,
	".mk":   StyleHash,

	".sql": StyleDash,
	".hs":  StyleDash,
	".lua": StyleDash,
	".elm": StyleDash,

	".html": StyleHTML,
	".htm":  StyleHTML,
	".xml":  StyleHTML,
	".svg":  StyleHTML,

	".ml":  StyleOCaml,
	".mli": StyleOCaml,

	".asm": StyleAsm,
	".s":   StyleAsm,

	".lisp": StyleLisp,
	".el":   StyleLisp,
	".clj":  StyleLisp,

	".vim": StyleVim,

	".tex": StyleTeX,
	".sty": StyleTeX,

	".f90": StyleF90,
	".f95": StyleF90,
}

// ResolveStyle returns the comment style for a file extension. The lookup is
// case-insensitive. The second return value is false when the extension is
// not supported.
func ResolveStyle(ext string) (models.CommentStyle, bool) {
	style, ok := styleByExtension[strings.ToLower(ext)]
	return style, ok
}

// SupportedExtensions returns the sorted list of extensions the registry
// recognizes.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(styleByExtension))
	for ext := range styleByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
