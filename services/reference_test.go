package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingReferenceFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC).UnixMilli()
	ref := NewBookingReference(now)

	assert.Regexp(t, `^BK[0-9A-Z]+$`, ref)
	assert.True(t, len(ref) > 2)
}

func TestNewBookingReferenceSameMillisecond(t *testing.T) {
	now := time.Now().UnixMilli()
	first := NewBookingReference(now)
	second := NewBookingReference(now)
	assert.NotEqual(t, first, second, "references from the same millisecond should differ")
}
