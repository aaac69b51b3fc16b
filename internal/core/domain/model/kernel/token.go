package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// RandomToken returns n upper-case hexadecimal characters drawn from a random
// UUID. n is clamped to [0, 32].
func RandomToken(n int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	n = max(0, min(n, len(raw)))
	return raw[:n]
}
