package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"
)

// ObjectStore accepts image uploads keyed by generated file names and
// exposes a public URL per stored object.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, content []byte) (string, error)
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateKey produces a unique object name for an uploaded file:
// unix-millis timestamp, a random base36 suffix, and the original extension.
func GenerateKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(8), ext)
}

func randomSuffix(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a fixed character rather than panic mid-upload.
			b.WriteByte('0')
			continue
		}
		b.WriteByte(suffixAlphabet[idx.Int64()])
	}
	return b.String()
}
