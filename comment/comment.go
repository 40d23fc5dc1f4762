// Package comment provides the comment value model shared by the client and the reference server.
package comment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ErrMissingField is returned by FromMap when a required key is absent.
var ErrMissingField = errors.New("missing required field")

// requiredKeys are checked in order; the first absent one is reported.
var requiredKeys = []string{"id", "name", "text"}

// Comment is a single comment as exchanged with the comment API.
type Comment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// FromMap builds a Comment from a decoded JSON object.
//
// All of id, name and text must be present. Values are coerced loosely:
// a numeric name becomes its decimal text, and values that cannot be
// converted become the zero value. This mirrors what existing servers send
// and is not a validation step.
//
// A string id is read as base 10 from its leading digits, after optional
// leading whitespace and sign: "12" and "12abc" give 12, "010" gives 10,
// "0x10" and "abc" give 0. Out-of-range values saturate. A non-integral
// number is truncated toward zero.
func FromMap(m map[string]any) (Comment, error) {
	for _, k := range requiredKeys {
		if _, ok := m[k]; !ok {
			return Comment{}, fmt.Errorf("%w: %s", ErrMissingField, k)
		}
	}

	return Comment{
		ID:   toID(m["id"]),
		Name: cast.ToString(m["name"]),
		Text: cast.ToString(m["text"]),
	}, nil
}

func toID(v any) int64 {
	switch x := v.(type) {
	case string:
		return leadingInt(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, err := x.Float64()
		switch {
		case err != nil:
			return 0
		case f >= math.MaxInt64:
			return math.MaxInt64
		case f <= math.MinInt64:
			return math.MinInt64
		}
		return cast.ToInt64(math.Trunc(f))
	default:
		return cast.ToInt64(v)
	}
}

// leadingInt parses the longest decimal integer prefix of s.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n uint64
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if n > (math.MaxUint64-d)/10 {
			n = math.MaxUint64
			break
		}
		n = n*10 + d
	}

	if neg {
		if n > math.MaxInt64 {
			return math.MinInt64
		}
		return -int64(n)
	}
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
