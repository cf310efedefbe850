package cache

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Stats summarizes the on-disk cache directory.
type Stats struct {
	Exists        bool   `json:"exists"`
	Size          int64  `json:"size"`
	Files         int    `json:"files"`
	SizeFormatted string `json:"sizeFormatted,omitempty"`
}

// Stats walks the cache directory, summing sizes and counting regular
// files. An absent directory yields {Exists:false} with zero counts.
func (s *Store) Stats() (Stats, error) {
	if _, err := os.Stat(s.dir); err != nil {
		if os.IsNotExist(err) {
			return Stats{}, nil
		}
		return Stats{}, fmt.Errorf("failed to stat cache directory %s: %w", s.dir, err)
	}

	stats := Stats{Exists: true}
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stats.Files++
		stats.Size += info.Size()
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("failed to walk cache directory %s: %w", s.dir, err)
	}

	stats.SizeFormatted = FormatBytes(stats.Size)
	return stats, nil
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders a byte count in base-1024 units with two-decimal
// precision. Zero is the special case "0 Bytes".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 Bytes"
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}
