// Package cache derives and persists the CI cache key: a short content
// hash over the dependency lockfile and the test-runner configuration,
// used to decide whether a cached CI artifact is still valid.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/kevinpostal/katamari-devtools/internal/logger"
)

// KeyLength is the number of hex characters kept from the digest.
const KeyLength = 16

// DeriveKey hashes the given files, byte for byte in list order, and
// returns the first KeyLength lowercase hex characters of the SHA-256
// digest. Files that do not exist are skipped; any other read error is
// reported with the offending path.
func DeriveKey(paths []string) (string, error) {
	h := sha256.New()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Debug("cache input %s absent, skipping", path)
				continue
			}
			return "", fmt.Errorf("failed to read cache input %s: %w", path, err)
		}
		h.Write(data)
	}

	return hex.EncodeToString(h.Sum(nil))[:KeyLength], nil
}
