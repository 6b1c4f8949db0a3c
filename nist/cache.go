package nist

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

//PageCache is an on-disk cache of fetched webbook pages, one
//zstd-compressed file per page, keyed by the hash of the URL. A whole
//periodic-table import hits the webbook twice per element, so re-runs
//against a warm cache need no network at all.
type PageCache struct {
	Dir string
}

//NewPageCache creates the cache directory if needed.
func NewPageCache(dir string) (*PageCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, Error{WriteFailed + ": " + err.Error(), dir, []string{"NewPageCache"}}
	}
	return &PageCache{Dir: dir}, nil
}

func (p *PageCache) path(url string) string {
	return filepath.Join(p.Dir, fmt.Sprintf("%x.zst", sha1.Sum([]byte(url))))
}

//Get returns the cached page for url, if any.
func (p *PageCache) Get(url string) ([]byte, bool) {
	f, err := os.Open(p.path(url))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false
	}
	return data, true
}

//Put stores a page under url's key, overwriting any previous copy.
func (p *PageCache) Put(url string, data []byte) error {
	path := p.path(url)
	f, err := os.Create(path)
	if err != nil {
		return Error{WriteFailed + ": " + err.Error(), path, []string{"Put"}}
	}
	w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return Error{WriteFailed + ": " + err.Error(), path, []string{"Put"}}
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		f.Close()
		return Error{WriteFailed + ": " + err.Error(), path, []string{"Put"}}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return Error{WriteFailed + ": " + err.Error(), path, []string{"Put"}}
	}
	return f.Close()
}
