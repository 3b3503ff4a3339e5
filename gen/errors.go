package gen

import "errors"

// ErrDivideByZero is returned by Divide when the divisor is 0.
var ErrDivideByZero = errors.New("gen: divide by zero")

// ErrDanglingRegions is returned by Code when more than one region is
// still live — a caller failed to free a region it allocated.
var ErrDanglingRegions = errors.New("gen: dangling regions at code extraction")
