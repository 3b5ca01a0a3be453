package idcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidIDFormat = errors.New("invalid ID format")

// Kind binds a display prefix to its zero-pad width.
type Kind struct {
	Prefix string
	Width  int
}

var (
	Product       = Kind{Prefix: "ID-", Width: 3}
	Supplier      = Kind{Prefix: "SUP-", Width: 3}
	Customer      = Kind{Prefix: "CUST-", Width: 3}
	PurchaseOrder = Kind{Prefix: "PO-", Width: 5}
	SalesOrder    = Kind{Prefix: "SO-", Width: 5}
	Campaign      = Kind{Prefix: "CAMP-", Width: 3}
	CustomerOffer = Kind{Prefix: "CUST-OFFER-", Width: 3}
)

// prefixes is ordered longest first so CUST-OFFER- never matches as CUST-.
var prefixes = []string{
	CustomerOffer.Prefix,
	Supplier.Prefix,
	Customer.Prefix,
	Campaign.Prefix,
	Product.Prefix,
	PurchaseOrder.Prefix,
	SalesOrder.Prefix,
}

// ToDisplayID zero-pads n to width and prepends prefix.
func ToDisplayID(prefix string, n int64, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// ToNumericID strips a recognized prefix and parses the rest as base 10.
// A bare numeric string is accepted unchanged.
func ToNumericID(displayID string) (int64, error) {
	rest, ok := strings.CutPrefix(displayID, matchPrefix(displayID))
	if !ok || !isDigits(rest) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, displayID)
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDFormat, displayID)
	}
	return n, nil
}

// PrefixOf returns the recognized prefix of displayID, or "" when there is none.
func PrefixOf(displayID string) string {
	return matchPrefix(displayID)
}

func (k Kind) Format(n int64) string {
	return ToDisplayID(k.Prefix, n, k.Width)
}

// Parse is ToNumericID restricted to this kind's prefix (or a bare number).
func (k Kind) Parse(displayID string) (int64, error) {
	if p := matchPrefix(displayID); p != "" && p != k.Prefix {
		return 0, fmt.Errorf("%w: %q is not a %s id", ErrInvalidIDFormat, displayID, k.Prefix)
	}
	return ToNumericID(displayID)
}

func matchPrefix(s string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
