// Package validation holds the pure input validators and formatters used
// before any backend call. All functions are deterministic, total and safe
// on partial input.
package validation

import (
	"strings"
	"unicode"
)

// Length policy enforced by callers, not by ValidateEmail itself.
const (
	EmailMinLen    = 5
	EmailMaxLen    = 254
	PasswordMinLen = 6
	PasswordMaxLen = 72
)

// Maximum visible lengths of the Brazilian masks.
const (
	phoneMaskLen = 17 // (DD) D DDDD-DDDD
	cnpjMaskLen  = 18 // DD.DDD.DDD/DDDD-DD
	cepMaskLen   = 9  // DDDDD-DDD
)

// invisible runes stripped by SanitizeEmail in addition to whitespace:
// zero-width space/joiners, word joiner, BOM and soft hyphen.
func invisible(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff', '\u00ad':
		return true
	}
	return false
}

// SanitizeEmail trims surrounding whitespace, lower-cases and removes
// internal whitespace and invisible characters. Idempotent:
// SanitizeEmail(SanitizeEmail(x)) == SanitizeEmail(x).
func SanitizeEmail(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || invisible(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateEmail checks a sanitized address against a conservative
// local-part@domain grammar. All sub-checks are conjunctive.
func ValidateEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 0 || strings.Count(email, "@") != 1 {
		return false
	}
	local, domain := email[:at], email[at+1:]

	if len(local) < 1 || len(local) > 64 {
		return false
	}
	if len(domain) < 1 || len(domain) > 253 {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	for _, r := range local {
		if !localRune(r) {
			return false
		}
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !domainRune(r) {
				return false
			}
		}
	}
	return true
}

func localRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '%' || r == '+' || r == '-':
		return true
	}
	return false
}

func domainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		return true
	}
	return false
}

// ValidPasswordLength checks the trimmed password against the policy bounds.
func ValidPasswordLength(password string) bool {
	n := len(password)
	return n >= PasswordMinLen && n <= PasswordMaxLen
}

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone re-derives the Brazilian mobile mask (DD) D DDDD-DDDD from the
// digits of raw. Safe on partial input: it yields the longest producible
// prefix and never exceeds 17 characters.
func FormatPhone(raw string) string {
	d := Digits(raw)
	if d == "" {
		return ""
	}
	if len(d) <= 2 {
		return "(" + d
	}
	out := "(" + d[:2] + ") " + d[2:3]
	rest := d[3:]
	if len(rest) == 0 {
		return out
	}
	out += " "
	if len(rest) <= 4 {
		return out + rest
	}
	out += rest[:4] + "-" + rest[4:]
	return truncate(out, phoneMaskLen)
}

// FormatCNPJ re-derives the DD.DDD.DDD/DDDD-DD mask from the digits of raw,
// truncated to 18 characters.
func FormatCNPJ(raw string) string {
	d := Digits(raw)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return d
	case len(d) <= 5:
		return d[:2] + "." + d[2:]
	case len(d) <= 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	}
	return truncate(d[:2]+"."+d[2:5]+"."+d[5:8]+"/"+d[8:12]+"-"+d[12:], cnpjMaskLen)
}

// FormatCEP re-derives the DDDDD-DDD mask from the digits of raw, truncated
// to 9 characters.
func FormatCEP(raw string) string {
	d := Digits(raw)
	if len(d) <= 5 {
		return d
	}
	return truncate(d[:5]+"-"+d[5:], cepMaskLen)
}

// ValidCNPJ reports whether the digit-only form of raw has exactly 14 digits.
func ValidCNPJ(raw string) bool {
	return len(Digits(raw)) == 14
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
