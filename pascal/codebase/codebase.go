// Package codebase tracks open Mini-Pascal documents and re-analyzes
// them as they change, feeding the language server.
package codebase

import (
	"os"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"github.com/xyproto/env/v2"

	"github.com/minipas/minipas/pascal/parser"
)

var log = commonlog.GetLogger("minipas.codebase")

type File struct {
	Path    string
	Content []byte
	Result  *parser.Result
}

type Codebase struct {
	maxDepth int
	files    map[string]*File
}

func New() *Codebase {
	return &Codebase{
		maxDepth: env.Int("MINIPAS_MAX_DEPTH", parser.DefaultMaxDepth),
		files:    make(map[string]*File),
	}
}

// UpdateFile replaces a document's content and re-analyzes it. The
// previous result is discarded wholesale; analysis is cheap enough
// that nothing incremental is kept.
func (c *Codebase) UpdateFile(path string, content []byte) *parser.Result {
	result := parser.ParseSource(content, parser.WithMaxDepth(c.maxDepth))
	c.files[path] = &File{Path: path, Content: content, Result: result}
	log.Debugf("analyzed %s: %d errors", path, len(result.Errors))
	return result
}

// ScanFile reads a document from disk and analyzes it.
func (c *Codebase) ScanFile(path string) (*parser.Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return c.UpdateFile(path, content), nil
}

func (c *Codebase) GetFile(path string) *File {
	return c.files[path]
}

func (c *Codebase) CloseFile(path string) {
	delete(c.files, path)
}
