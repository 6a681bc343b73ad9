package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	quoteReferencePrefix   = "QT"
	contactReferencePrefix = "CM"
)

// newReference builds a human-shareable id: prefix + UTC timestamp + a short
// random suffix. The timestamp keeps references roughly sortable and the
// suffix makes collisions between same-second submissions negligible; the
// repository's conditional put is the backstop.
func newReference(prefix string) string {
	ts := time.Now().UTC().Format("060102150405")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return prefix + ts + suffix
}
