package entities

import (
	"strings"

	"github.com/pkg/errors"
)

// Currency is identified by its three letter code, two values with the same
// code are equal.
type Currency struct {
	code string
}

func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if len(code) != 3 {
		return Currency{}, errors.Wrapf(ErrInvalidCurrency, "%q", code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Currency{}, errors.Wrapf(ErrInvalidCurrency, "%q", code)
		}
	}

	return Currency{code: code}, nil
}

// MustCurrency panics on an invalid code, meant for literals.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Currency) Code() string {
	return c.code
}

func (c Currency) String() string {
	return c.code
}

func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// ParseCurrencies parses a list of codes, keeping order and dropping repeats.
func ParseCurrencies(codes []string) ([]Currency, error) {
	out := make([]Currency, 0, len(codes))
	seen := make(map[Currency]struct{}, len(codes))

	for _, code := range codes {
		c, err := NewCurrency(code)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}

// SupportedCurrencies is the read-only set of currencies the service answers
// for plus the base all rates are quoted in.
type SupportedCurrencies struct {
	all  []Currency
	base Currency
}

func NewSupportedCurrencies(codes []string, base string) (SupportedCurrencies, error) {
	const op = "entities.NewSupportedCurrencies"

	all, err := ParseCurrencies(codes)
	if err != nil {
		return SupportedCurrencies{}, errors.Wrap(err, op)
	}
	if len(all) == 0 {
		return SupportedCurrencies{}, errors.Wrap(ErrInvalidCurrency, op+": empty supported set")
	}

	b, err := NewCurrency(base)
	if err != nil {
		return SupportedCurrencies{}, errors.Wrap(err, op+": base")
	}

	return SupportedCurrencies{all: all, base: b}, nil
}

// All returns a copy of the supported set in configuration order.
func (s SupportedCurrencies) All() []Currency {
	out := make([]Currency, len(s.all))
	copy(out, s.all)
	return out
}

func (s SupportedCurrencies) Base() Currency {
	return s.base
}
