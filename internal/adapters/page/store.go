package page

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/randomtoy/fortune-go/web"
)

// IndexFile is the document served at the base path.
const IndexFile = "index.html"

// EmbeddedStore reads the index page from a filesystem once and keeps it.
type EmbeddedStore struct {
	fsys fs.FS

	once  sync.Once
	index []byte
	err   error
}

// NewEmbeddedStore serves the page compiled into the binary.
func NewEmbeddedStore() *EmbeddedStore {
	return NewStore(web.StaticFiles)
}

func NewStore(fsys fs.FS) *EmbeddedStore {
	return &EmbeddedStore{fsys: fsys}
}

func (s *EmbeddedStore) init() {
	raw, err := fs.ReadFile(s.fsys, IndexFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded page %s: %w", IndexFile, err)
		return
	}
	s.index = raw
}

func (s *EmbeddedStore) Index(_ context.Context) ([]byte, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	return s.index, nil
}
