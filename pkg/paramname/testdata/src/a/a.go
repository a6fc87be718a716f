package a

import (
	"ext"

	"github.com/dmitrymomot/guard"
)

type config struct {
	Limit int
	Pool  *int
}

const blank = ""

func checks(name string, size int, cfg config, ids []int, m map[string]int) {
	_, _ = guard.NullOrEmpty(guard.Against, name, "") // want `missing parameter name for name`

	_, _ = guard.OutOfRange(guard.Against, size, "  ", 1, 10) // want `missing parameter name for size`

	_, _ = guard.Zero(guard.Against, cfg.Limit, ``) // want `missing parameter name for cfg.Limit`

	_, _ = guard.Null[*int](guard.Against, (cfg.Pool), "") // want `missing parameter name for cfg.Pool`

	_, _ = guard.Null(guard.Against, ids[0:2], ("")) // want `missing parameter name for ids\[0:2\]`

	_, _ = guard.InvalidInput(guard.Against, size, "", func(v int) bool { return v > 0 }) // want `missing parameter name for size`

	_, _ = ext.Hello(guard.Against, name, "") // want `missing parameter name for name`

	_, _ = ext.Reversed(guard.Against, "", size) // want `missing parameter name for size`

	_, _ = guard.Zero(guard.Against, m["a  b"], "") // want `missing parameter name for m\["a  b"\]`

	_, _ = guard.Null(guard.Against, func() int {
		return size
	}, "") // want `missing parameter name for func\(\) int \{ return size \}`

	_, _ = guard.NullOrEmpty(guard.Against, name, "nm")

	_, _ = guard.NullOrEmpty(guard.Against, name, blank)

	_, _ = ext.Lookalike(nil, name, "")
}
