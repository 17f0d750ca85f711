package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meetingdesk-backend/internal/domain"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical windows", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained window", "09:00", "12:00", "10:00", "11:00", true},
		{"back to back", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"one minute overlap", "09:00", "10:01", "10:00", "11:00", true},
		{"across noon", "09:30", "13:00", "12:00", "14:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// The rule is symmetric in the two windows.
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("09:00"))
	assert.True(t, ValidClock("23:59"))
	assert.True(t, ValidClock("00:00"))

	// Unpadded values would break lexical comparison and are rejected.
	assert.False(t, ValidClock("9:00"))
	assert.False(t, ValidClock("09:0"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("09:60"))
	assert.False(t, ValidClock(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-09-01"))
	assert.False(t, ValidDate("2026-9-1"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate("tomorrow"))
}

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateWindow("2026-09-02", "09:00", "10:00", now))
	})

	t.Run("SameDayIsNotPast", func(t *testing.T) {
		assert.NoError(t, ValidateWindow("2026-09-01", "09:00", "10:00", now))
	})

	t.Run("StartNotBeforeEnd", func(t *testing.T) {
		err := ValidateWindow("2026-09-02", "10:00", "10:00", now)
		assert.True(t, domain.IsValidationError(err))

		err = ValidateWindow("2026-09-02", "11:00", "10:00", now)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("PastDate", func(t *testing.T) {
		err := ValidateWindow("2026-08-31", "09:00", "10:00", now)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("MalformedInputs", func(t *testing.T) {
		assert.True(t, domain.IsValidationError(ValidateWindow("09/02/2026", "09:00", "10:00", now)))
		assert.True(t, domain.IsValidationError(ValidateWindow("2026-09-02", "9:00", "10:00", now)))
		assert.True(t, domain.IsValidationError(ValidateWindow("2026-09-02", "09:00", "25:00", now)))
	})
}
