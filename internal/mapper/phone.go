package mapper

import "strings"

// FormatPhone groups international numbers for display:
// +90XXXXXXXXXX as "+90 XXX XXX XXXX", and the 14 and 12 character
// +CC / +C forms likewise. Anything else is returned unchanged.
func FormatPhone(phone string) string {
	if phone == "" {
		return phone
	}
	cleaned := strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(cleaned, "+90") && len(cleaned) == 13:
		return group(cleaned[:3], cleaned[3:])
	case strings.HasPrefix(cleaned, "+") && len(cleaned) == 14:
		return group(cleaned[:3], cleaned[3:])
	case strings.HasPrefix(cleaned, "+") && len(cleaned) == 12:
		return group(cleaned[:2], cleaned[2:])
	}
	return phone
}

func group(code, rest string) string {
	return code + " " + rest[:3] + " " + rest[3:6] + " " + rest[6:]
}

// NormalizePhone strips the separators FormatPhone adds, plus dashes and parentheses.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}
