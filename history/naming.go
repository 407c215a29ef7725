package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// stub renders a multi-index as "_i0_i1_...", the suffix of every slot name.
func stub(indices []int64) string {
	var sb strings.Builder

	for _, i := range indices {
		sb.WriteString("_")
		sb.WriteString(strconv.FormatInt(i, 10))
	}

	return sb.String()
}

func SlotName(tag string, indices []int64) string {
	return tag + stub(indices)
}

// ShapeLabel is the persisted shape record payload, "_s0_s1_...".
func ShapeLabel(shape []int64) string {
	return stub(shape)
}

func ParseShapeLabel(desc string) (shape []int64, err error) {
	shape = make([]int64, 0)

	if desc == "" {
		return
	}

	if !strings.HasPrefix(desc, "_") {
		err = fmt.Errorf("%q: %w", desc, ErrBadLabel)

		return
	}

	for _, token := range strings.Split(desc[1:], "_") {
		var s int64

		if !digitsOnly(token) {
			err = fmt.Errorf("%q: %w", desc, ErrBadLabel)

			return
		}

		// cast parses a leading 0 as octal.
		s, err = cast.ToInt64E(strings.TrimLeft(token, "0"))
		if err != nil || s < 1 {
			err = fmt.Errorf("%q: %w", desc, ErrBadLabel)

			return
		}

		shape = append(shape, s)
	}

	return
}

func digitsOnly(token string) bool {
	if token == "" {
		return false
	}

	for _, c := range token {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "_" + name
}

func replaceFirst(name, from, to string) string {
	return strings.Replace(name, from, to, 1)
}
