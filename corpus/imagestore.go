/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/giahung24/ccm-migration/common"
)

// ImageStore persists raw image bytes once per content hash, under dir,
// as "<hash>.bin". Concurrent writers racing on the same hash are resolved
// by opening with O_CREATE|O_EXCL: the first writer to create the file
// wins; every subsequent writer for that hash observes ErrExist, treats
// the existing artifact as authoritative, and moves on without touching
// it - matching spec.md's "first writer wins" resource policy.
type ImageStore struct {
	dir string
}

// NewImageStore returns a store rooted at dir, creating dir if needed.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("corpus: create image store dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Put persists raw under its content hash, returning the hash. If an
// artifact with that hash already exists, raw is discarded silently - the
// store only ever needs one copy per hash.
func (s *ImageStore) Put(raw []byte) (string, error) {
	hash := HashImage(raw)
	path := filepath.Join(s.dir, hash+".bin")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			common.Log.Trace("corpus: image %s already persisted, skipping", hash)
			return hash, nil
		}
		return "", fmt.Errorf("corpus: create image artifact %s: %w", hash, err)
	}
	defer f.Close()

	if _, err := f.Write(raw); err != nil {
		return "", fmt.Errorf("corpus: write image artifact %s: %w", hash, err)
	}
	return hash, nil
}

// Path returns the on-disk path an artifact for hash would live at,
// whether or not it has been written yet.
func (s *ImageStore) Path(hash string) string {
	return filepath.Join(s.dir, hash+".bin")
}
