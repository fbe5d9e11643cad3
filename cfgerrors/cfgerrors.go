/*
Package cfgerrors provides functionalities for programmatically handling
configuration errors produced by package [github.com/jub0bs/isolation].

Most users of package [github.com/jub0bs/isolation] have no use for this
package. However, platforms that let their tenants configure
resource-isolation exemptions (e.g. via some Web portal or some
command-line interface) may find this package useful: it indeed allows
them to inform their tenants about configuration mistakes via custom,
human-friendly error messages.
*/
package cfgerrors

import (
	"fmt"
	"iter"
)

// An UnacceptablePathError indicates an unacceptable exempt path.
// The Reason field currently only takes one value:
//   - "invalid": the path is empty, does not start with a slash,
//     or contains a query delimiter, a fragment delimiter,
//     a space, or an ASCII control character.
//
// For more details, see [github.com/jub0bs/isolation.Config].
type UnacceptablePathError struct {
	Value  string // the unacceptable value that was specified
	Reason string // invalid
}

func (err *UnacceptablePathError) Error() string {
	const tmpl = "isolation: %s exempt path %q"
	return fmt.Sprintf(tmpl, err.Reason, err.Value)
}

// All returns an iterator over the configuration errors contained in
// err's error tree. The order is unspecified and may change from one release
// to the next. All only supports error values returned by
// [github.com/jub0bs/isolation.NewMiddleware] and
// [github.com/jub0bs/isolation.Middleware.Reconfigure]; it should not be
// called on any other error value.
func All(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		every(err, yield)
	}
}

func every(err error, f func(error) bool) bool {
	switch err := err.(type) {
	// Note that there's no need for any "interface { Unwrap() error }" case
	// because nowhere do we "wrap" errors; we only ever "join" them.
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !every(err, f) {
				return false
			}
		}
		return true
	default:
		return f(err)
	}
}
