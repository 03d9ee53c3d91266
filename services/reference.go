package services

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewBookingReference produces a short human-shareable label for an
// appointment: "BK", the submission timestamp in base 36, and four random
// characters so that two submissions in the same millisecond do not collide.
// It is a display label, not the storage identifier.
func NewBookingReference(unixMilli int64) string {
	stamp := strings.ToUpper(strconv.FormatInt(unixMilli, 36))
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "BK" + stamp + entropy
}
