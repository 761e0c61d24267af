package domain

import "errors"

// ErrConnectivity marks storage faults where the gateway itself is
// unreachable. These abort the whole run; every other storage error is
// recovered per record.
var ErrConnectivity = errors.New("storage connectivity fault")
