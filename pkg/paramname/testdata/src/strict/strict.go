package strict

import "github.com/dmitrymomot/guard"

type request struct{ Email string }

func checks(name string, req request) {
	_, _ = guard.NullOrEmpty(guard.Against, name, "nm") // want `parameter name "nm" does not match argument name`

	_, _ = guard.NullOrEmpty(guard.Against, req.Email, "email") // want `parameter name "email" does not match argument req.Email`

	_, _ = guard.NullOrEmpty(guard.Against, req.Email, "req.Email")

	_, _ = guard.NullOrEmpty(guard.Against, name, "") // want `missing parameter name for name`
}
