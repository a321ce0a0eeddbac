package util

// ThenFunc is one stage of a Pipeline.
type ThenFunc func() error

// Pipeline chains fallible steps, short-circuiting after the first error.
// Used by the CLI driver to sequence file-read, builtin-seeding, and parse
// stages without repeating error checks at each step.
type Pipeline struct {
	err error
}

func NewPipeline() Pipeline {
	return Pipeline{err: nil}
}

func (m Pipeline) Error() error {
	return m.err
}

func (m Pipeline) Then(f ThenFunc) Pipeline {
	if m.err != nil {
		return Pipeline{m.err}
	}
	return Pipeline{err: f()}
}
