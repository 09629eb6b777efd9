package models

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel tax codes. Both force zero tax on the line.
const (
	TaxCodeNotApplicable = "NP" // tax not applicable
	TaxCodeReverseCharge = "OO" // reverse charge / other
)

var (
	ErrTaxRateNotNumeric = errors.New("tax rate is not a number or sentinel code")
	ErrTaxRateOutOfRange = errors.New("tax rate out of range")
)

// TaxRate is either an exempt sentinel code or a numeric percentage in [0,100].
type TaxRate struct {
	Code    string // "NP" or "OO" when exempt, empty otherwise
	Percent float64
}

func (t TaxRate) Exempt() bool {
	return t.Code != ""
}

// ParseTaxRate tries the sentinel codes first, then a numeric parse.
// The two failure modes are distinct errors so the validator can report
// "not a number" separately from "out of range".
func ParseTaxRate(raw string) (TaxRate, error) {
	v := strings.TrimSpace(raw)
	if v == TaxCodeNotApplicable || v == TaxCodeReverseCharge {
		return TaxRate{Code: v}, nil
	}
	pct, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return TaxRate{}, ErrTaxRateNotNumeric
	}
	if pct < 0 || pct > 100 {
		return TaxRate{}, ErrTaxRateOutOfRange
	}
	return TaxRate{Percent: pct}, nil
}
