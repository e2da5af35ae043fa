package parse

type parseOpts struct {
	filename string
}

// ParseOption adjusts how a document is parsed.
type ParseOption func(*parseOpts)

// WithFilename names the input in error messages, as "name: error".
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
