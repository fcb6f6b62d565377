package deepexn

// Protect runs op on resource and then cleanup on resource, on every exit
// path including a panic in op. If both fail the result is a *FinallyError
// holding op's error first. A panic in op continues after cleanup; when
// cleanup failed as well the panic value becomes the *FinallyError.
func Protect[R, T any](resource R, op func(R) (T, error), cleanup func(R) error) (result T, err error) {
	defer func() {
		p := recover()
		cleanupErr := runCleanup(resource, cleanup)
		if p != nil {
			if cleanupErr != nil {
				panic(NewFinally(defaultRaiser.recovered(p), cleanupErr))
			}
			panic(p)
		}
		switch {
		case err != nil && cleanupErr != nil:
			err = NewFinally(err, cleanupErr)
		case cleanupErr != nil:
			err = cleanupErr
		}
		if err != nil {
			var zero T
			result = zero
		}
	}()
	return op(resource)
}

// ProtectFunc is Protect without a resource.
func ProtectFunc[T any](op func() (T, error), cleanup func() error) (T, error) {
	return Protect(struct{}{},
		func(struct{}) (T, error) { return op() },
		func(struct{}) error { return cleanup() },
	)
}

func runCleanup[R any](resource R, cleanup func(R) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = defaultRaiser.recovered(p)
		}
	}()
	return cleanup(resource)
}
