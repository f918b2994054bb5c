package domain

// Outcome is the settled result of one dispatch.
type Outcome struct {
	ID     uint64
	Method Method
	URL    string

	// Text is what the response panel shows: the body on success,
	// the error description on failure.
	Text string
	Err  error

	// Applied is false when a newer dispatch was issued before this one
	// settled, in which case Text was discarded.
	Applied bool
}

// Failed reports whether the dispatch ended in an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
