package datatable

import (
	"cmp"
	"fmt"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders cell values. Strings are compared with a locale collator,
// numbers numerically, nil before everything. Values of unrelated types
// compare equal so sorting never fails on heterogeneous data.
//
// A Comparer is not safe for concurrent use.
type Comparer struct {
	collator *collate.Collator
}

// NewComparer builds a Comparer for a BCP 47 locale ("es", "de-CH"). An empty
// locale uses the root collation.
func NewComparer(locale string) (*Comparer, error) {
	tag := language.Und
	if locale != "" {
		var err error
		tag, err = language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %s", ErrInvalidLocale, locale, err.Error())
		}
	}

	return &Comparer{
		collator: collate.New(tag),
	}, nil
}

func defaultComparer() *Comparer {
	return &Comparer{
		collator: collate.New(language.Und),
	}
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b in
// ascending order.
func (c *Comparer) Compare(a, b any) int {
	aNil, bNil := a == nil, b == nil
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	switch a := a.(type) {
	case string:
		if b, ok := b.(string); ok {
			return c.collator.CompareString(a, b)
		}
		return 0
	case bool:
		if b, ok := b.(bool); ok {
			return compareBool(a, b)
		}
		return 0
	case time.Time:
		if b, ok := b.(time.Time); ok {
			return a.Compare(b)
		}
		return 0
	}

	if ai, ok := asInt(a); ok {
		if bi, ok := asInt(b); ok {
			return cmp.Compare(ai, bi)
		}
	}

	af, ok := asFloat(a)
	if !ok {
		return 0
	}
	bf, ok := asFloat(b)
	if !ok {
		return 0
	}
	return cmp.Compare(af, bf)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
