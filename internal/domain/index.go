package domain

import (
	"fmt"
	"strings"
)

// IndexCode identifies a published monthly economic index used as the
// correction driver.
type IndexCode string

const (
	IndexINPC  IndexCode = "INPC"
	IndexIPCAE IndexCode = "IPCA-E"
	IndexIGPM  IndexCode = "IGP-M"
	IndexTR    IndexCode = "TR"
	IndexSELIC IndexCode = "SELIC"
)

var indexCodes = map[IndexCode]bool{
	IndexINPC:  true,
	IndexIPCAE: true,
	IndexIGPM:  true,
	IndexTR:    true,
	IndexSELIC: true,
}

// ParseIndexCode validates and normalizes an index code string.
func ParseIndexCode(s string) (IndexCode, error) {
	code := IndexCode(strings.ToUpper(strings.TrimSpace(s)))
	if !indexCodes[code] {
		return "", fmt.Errorf("%w: %q", ErrUnknownIndex, s)
	}
	return code, nil
}

// InterestInclusive reports whether the index already embeds an
// interest component. SELIC is a composite rate: applying a second
// interest layer on top of it would double-count interest.
func (c IndexCode) InterestInclusive() bool {
	return c == IndexSELIC
}
