package deepexn

// Trace runs op and, if it fails, reraises the error with label as context.
func Trace[T any](label string, op func() (T, error)) (T, error) {
	result, err := op()
	if err != nil {
		var zero T
		return zero, defaultRaiser.reraise(err, label)
	}
	return result, nil
}

func TraceErr(label string, op func() error) error {
	if err := op(); err != nil {
		return defaultRaiser.reraise(err, label)
	}
	return nil
}

// DoesFail reports whether op returned an error or panicked. Neither escapes.
func DoesFail(op func() error) (failed bool) {
	defer func() {
		if recover() != nil {
			failed = true
		}
	}()
	return op() != nil
}
