package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	reQ    = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Phone accepts a number with at least 10 digits after stripping the usual
// separators. Anything shorter is rejected.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "").Replace(s)
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return "", false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return cleaned, true
}

// Name validates a displayable customer name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Date validates a YYYY-MM-DD calendar day.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s)
}

// TimeOfDay validates an H:MM or HH:MM slot time string.
func TimeOfDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTime.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Price parses a non-negative price; returns false on junk.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Capacity parses a slot capacity, defaulting to 2 on junk and clamping abuse.
func Capacity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 2
	}
	if n > 100 {
		n = 100
	}
	return n
}

// Duration parses a service duration in minutes; rejects junk and
// non-positive values, clamps abuse.
func Duration(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	if n > 480 {
		n = 480
	}
	return n, true
}

// Status validates a booking status value.
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "pending", "confirmed", "completed", "cancelled":
		return s, true
	}
	return "", false
}

// Audience validates an explicit audience tag.
func Audience(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "Male", "Female", "Kids", "Unisex":
		return s, true
	}
	return "", false
}

// Email performs a light format check for the login form.
var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}
