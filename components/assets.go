package components

import (
	"io/fs"
	"strings"
)

// AssetResolver reports whether a static asset path can be served.
type AssetResolver interface {
	Exists(path string) bool
}

// FSResolver resolves asset paths against a filesystem after removing Prefix.
type FSResolver struct {
	FS     fs.FS
	Prefix string
}

func (r FSResolver) Exists(path string) bool {
	name := strings.TrimPrefix(path, r.Prefix)
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(r.FS, name)
	return err == nil && !info.IsDir()
}
