package services

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ComputeEndTime derives an appointment end time from an HH:MM start time and
// a service duration. The result is an HH:MM:SS string with seconds fixed at
// 00. A booking whose end would cross midnight is rejected rather than rolled
// over; appointments stay within one calendar date.
func ComputeEndTime(startTime string, durationMinutes int) (string, error) {
	if durationMinutes < 0 {
		return "", fmt.Errorf("negative duration: %d", durationMinutes)
	}
	hours, minutes, err := parseClock(startTime)
	if err != nil {
		return "", err
	}
	total := hours*60 + minutes + durationMinutes
	if total >= minutesPerDay {
		return "", fmt.Errorf("appointment ending at minute %d would cross midnight", total)
	}
	return fmt.Sprintf("%02d:%02d:00", total/60, total%60), nil
}

// NormalizeStartTime turns form input ("14:30" or "14:30:00") into the
// HH:MM:SS shape the appointments table stores.
func NormalizeStartTime(startTime string) (string, error) {
	hours, minutes, err := parseClock(startTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

func parseClock(value string) (hours, minutes int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid time %q", value)
	}
	hours, err = strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hours, minutes, nil
}
