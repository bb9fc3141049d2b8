package slidingwindow

import "errors"

var (
	ErrInvalidWidth     = errors.New("slidingwindow: width must be positive")
	ErrMissingPredicate = errors.New("slidingwindow: policy needs a Valid predicate")
	ErrMissingAdmit     = errors.New("slidingwindow: policy needs an Admit predicate")
	ErrUnknownPolicy    = errors.New("slidingwindow: unknown policy")
)
