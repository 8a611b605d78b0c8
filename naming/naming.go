// Package naming generates final exported identifiers for locally scoped
// classes and ids. Names are produced from a user template so that the same
// local name always maps to the same scoped name within one source file.
package naming

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
)

// DefaultTemplate is used when configuration does not specify one.
const DefaultTemplate = "{{.Path}}__{{.Local}}___{{.Hash}}"

// hashLength keeps generated names short while leaving enough entropy to
// avoid collisions between files.
const hashLength = 8

// Values holds the variables available to a scoped-name template.
type Values struct {
	Local string // original class or id name
	Path  string // slugged stem of the source file path
	Hash  string // digest of source path and content
}

// Generator produces scoped names for one source file.
type Generator struct {
	tmpl *template.Template
	path string
	hash string
}

// NewGenerator parses the template and precomputes the per-file values from
// the source path and content. An empty template selects DefaultTemplate.
func NewGenerator(tmplText, path string, content []byte) (*Generator, error) {
	if tmplText == "" {
		tmplText = DefaultTemplate
	}
	tmpl, err := template.New("scoped-name").Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("unable to parse scoped name template: %w", err)
	}
	return &Generator{
		tmpl: tmpl,
		path: pathStem(path),
		hash: contentHash(path, content),
	}, nil
}

// Name generates the scoped name for a single local identifier.
func (g *Generator) Name(local string) (string, error) {
	buf := new(bytes.Buffer)
	values := Values{Local: local, Path: g.path, Hash: g.hash}
	if err := g.tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand scoped name for %q: %w", local, err)
	}
	name := buf.String()
	if !validIdent(name) {
		return "", fmt.Errorf("scoped name template produced invalid identifier %q for %q", name, local)
	}
	return name, nil
}

// pathStem turns a source path into an identifier-safe component: base name
// without extension, slugged.
func pathStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if s := slug.Make(stem); s != "" {
		return s
	}
	return "stylesheet"
}

// contentHash digests path and content together so that files with identical
// content still get distinct names.
func contentHash(path string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(content)
	sum := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	return sum[:hashLength]
}

// validIdent checks the generated name against CSS identifier syntax, enough
// to catch template mistakes early (empty result, spaces, leading digit).
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-', r > 0x7f:
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
