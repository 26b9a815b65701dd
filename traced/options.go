package traced

// Option configures an Error during construction via New().
type Option func(*config)

type config struct {
	skip int
}

// WithSkip records the site n frames above the caller of New instead of the
// caller itself. Use it in constructor helpers so the helper's caller becomes
// the first trace record:
//
//	func notFound(id string) *traced.Error[AppError] {
//		return traced.New(AppError{Code: "not_found", Detail: id}, traced.WithSkip(1))
//	}
func WithSkip(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.skip = n
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}

	return c
}
