package client

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/puzpuzpuz/xsync/v3"
)

// ScriptCache memoizes the lowercase hex SHA-1 digests of script bodies, so
// repeated EVALSHA dispatches of the same script skip the hashing.
type ScriptCache struct {
	digests *xsync.MapOf[string, string]
}

func NewScriptCache() *ScriptCache {
	return &ScriptCache{
		digests: xsync.NewMapOf[string, string](),
	}
}

func (s *ScriptCache) DigestFor(script []byte) string {
	digest, _ := s.digests.LoadOrCompute(string(script), func() string {
		sum := sha1.Sum(script)
		return hex.EncodeToString(sum[:])
	})
	return digest
}

func (s *ScriptCache) Len() int {
	return s.digests.Size()
}
