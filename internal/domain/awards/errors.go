package awards

import "errors"

// Sentinel kinds for assignment errors.
var (
	// ErrAwardsExist signals that the committee already has awards and the
	// run was not forced. Recoverable by retrying with force.
	ErrAwardsExist = errors.New("awards already exist for this committee")
)
