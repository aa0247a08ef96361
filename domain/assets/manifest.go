// Package assets maps image name fragments to concrete image keys.
package assets

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Tier selects an image resolution.
type Tier string

const (
	TierThumb Tier = "thumb"
	TierLarge Tier = "large"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Manifest is the list of image keys available per tier. Keys are kept
// sorted so lookups do not depend on directory listing order.
type Manifest struct {
	tiers map[Tier][]string
}

func NewManifest(thumbs, large []string) *Manifest {
	return &Manifest{
		tiers: map[Tier][]string{
			TierThumb: sortedCopy(thumbs),
			TierLarge: sortedCopy(large),
		},
	}
}

func sortedCopy(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}

// Keys returns the sorted keys of a tier.
func (m *Manifest) Keys(tier Tier) []string {
	return sortedCopy(m.tiers[tier])
}

// Len is the number of keys in a tier.
func (m *Manifest) Len(tier Tier) int {
	return len(m.tiers[tier])
}

// Resolve returns the first key containing fragment.
func (m *Manifest) Resolve(fragment string, tier Tier) (string, bool) {
	if fragment == "" {
		return "", false
	}
	for _, k := range m.tiers[tier] {
		if strings.Contains(k, fragment) {
			return k, true
		}
	}
	return "", false
}

// Positional is the fallback binding for photo id: keys[id mod len].
// It returns "" for an empty tier.
func (m *Manifest) Positional(id int, tier Tier) string {
	keys := m.tiers[tier]
	if len(keys) == 0 {
		return ""
	}
	i := id % len(keys)
	if i < 0 {
		i += len(keys)
	}
	return keys[i]
}

// ResolveOr tries fragment first and falls back to the positional key.
func (m *Manifest) ResolveOr(fragment string, tier Tier, fallbackID int) string {
	if k, ok := m.Resolve(fragment, tier); ok {
		return k
	}
	return m.Positional(fallbackID, tier)
}

// ScanDir lists image files directly inside dir. A missing directory yields
// an empty list.
func ScanDir(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(path.Ext(e.Name()))] {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}
