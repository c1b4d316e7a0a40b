package numbering

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatShort renders the structured document number format
// "{TYPECODE}-{YY}-{SEQ:04d}", e.g. PW-25-0029. Sequences beyond 9999 simply
// widen, there is no wraparound.
func FormatShort(typeCode string, seq int64, date time.Time) string {
	return fmt.Sprintf("%s-%02d-%04d", strings.ToUpper(typeCode), date.Year()%100, seq)
}

// CancellationNumber returns an opaque cancellation number of the form
// "KND-" + 6 uppercase hex chars. Numbers are independently random, not
// sequence-derived; the 16^6 space makes collisions negligible and this layer
// does not deduplicate.
func CancellationNumber() string {
	return "KND-" + randomSuffix()
}

// StornoNumber returns an opaque storno number of the form
// "STORNO-" + 6 uppercase hex chars.
func StornoNumber() string {
	return "STORNO-" + randomSuffix()
}

func randomSuffix() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		panic("numbering: failed to read random bytes: " + err.Error())
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// legacy number shapes: CODE/YYYY/SEQ, code_yyyy_seq, backslash separators,
// arbitrary case
var legacyNumberRe = regexp.MustCompile(`^([A-Za-z]+)[\s]*[/_\\-]+[\s]*(\d{2,4})[\s]*[/_\\-]+[\s]*(\d+)$`)

// Normalize canonicalizes legacy document number spellings to the structured
// format for comparison and display. This is a best-effort text transform,
// not a parser: anything unrecognized comes back unchanged apart from
// whitespace trimming.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	m := legacyNumberRe.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}

	code := strings.ToUpper(m[1])
	year := m[2]
	if len(year) == 4 {
		year = year[2:]
	}
	seq, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return trimmed
	}

	return fmt.Sprintf("%s-%s-%04d", code, year, seq)
}
