// Package selection encodes the set of merchandise ids a user picked for
// checkout as a durable cookie-safe string.
package selection

import (
	"net/url"
	"strings"
)

// Delimiter separates merchandise ids in the serialized form. Merchandise
// ids never contain a comma, so splitting is unambiguous.
const Delimiter = ","

// ParseSelectedMerchandiseIDs decodes a persisted selection token into an
// ordered list of trimmed, non-empty merchandise ids. A value that fails
// percent-decoding is used as-is; this function never fails.
func ParseSelectedMerchandiseIDs(raw string) []string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		decoded = raw
	}

	parts := strings.Split(decoded, Delimiter)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SerializeSelectedMerchandiseIDs is the inverse of
// ParseSelectedMerchandiseIDs for ids that do not contain the delimiter.
func SerializeSelectedMerchandiseIDs(ids []string) string {
	return strings.Join(ids, Delimiter)
}
