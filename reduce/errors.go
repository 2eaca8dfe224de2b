package reduce

import "errors"

// ErrAbortedByCaller is returned by Kernel when the cooperative cancellation
// callback reports that the computation should stop. The partial result
// computed so far is discarded; Kernel returns (nil, ErrAbortedByCaller).
var ErrAbortedByCaller = errors.New("reduce: aborted by caller")
