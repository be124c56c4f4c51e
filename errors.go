package isam

import "fmt"

// require panics with a formatted message if cond is false. It is the
// single precondition-checking facility used throughout the core,
// mirroring the fatal require() calls in the original isam::SparseMatrix
// and isam::SparseVector: every violation here indicates a caller bug,
// not a recoverable runtime condition.
func require(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
