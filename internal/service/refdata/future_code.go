package refdata

import (
	"fmt"
	"strconv"
	"strings"
)

// monthCodes is the CME futures month convention, January through December.
const monthCodes = "FGHJKMNQUVXZ"

// FormatError reports a native futures symbol that does not follow the
// venue's <root>_<YYMMDD> convention. It is fatal to the run: a
// malformed date field means the whole document no longer matches the
// assumed convention.
type FormatError struct {
	Symbol string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed futures symbol '%s': %s", e.Symbol, e.Reason)
}

// SimplifyFutureCode converts a native dated-futures symbol of the form
// <root>_<YYMMDD> into the compact <monthCode><yearDigit> code, e.g.
// BTCUSDT_240329 -> H4.
func SimplifyFutureCode(symbol string) (string, error) {
	parts := strings.Split(symbol, "_")
	if len(parts) != 2 {
		return "", &FormatError{Symbol: symbol, Reason: fmt.Sprintf("expected symbol to split into 2 parts, got %d", len(parts))}
	}

	date := parts[1]
	if len(date) != 6 {
		return "", &FormatError{Symbol: symbol, Reason: fmt.Sprintf("expected symbol-date to have len 6, got %d", len(date))}
	}

	month, err := strconv.Atoi(date[2:4])
	if err != nil || month < 1 || month > 12 {
		return "", &FormatError{Symbol: symbol, Reason: fmt.Sprintf("invalid month '%s'", date[2:4])}
	}

	return string(monthCodes[month-1]) + string(date[1]), nil
}
