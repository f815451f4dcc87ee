// Package debug holds the contract assertions of the scanning core.
//
// Assertions compile to nothing unless the module is built with the
// httparse_debug tag:
//
//	go test -tags httparse_debug ./...
//
// A failed assertion panics with a *ContractError. Contract violations are
// programming errors in the caller and are never returned as errors.
package debug

// ContractError describes a violated caller obligation.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return "httparse: " + e.Op + ": contract violation: " + e.Msg
}

// Assert panics with a *ContractError when assertions are enabled and cond
// is false.
func Assert(cond bool, op, msg string) {
	if Enabled && !cond {
		panic(&ContractError{Op: op, Msg: msg})
	}
}
