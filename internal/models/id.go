package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID builds a collision-resistant identifier of the form
// <prefix>_<unix-millis>_<8 uuid chars>. Uniqueness is probabilistic,
// not cryptographically guaranteed; the store treats collisions as
// negligible and never checks for them.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
