package domain

// Method is an HTTP method offered by the method selector.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Methods lists the selector options in display order.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete}

// MethodNames returns Methods as plain strings for select widgets.
func MethodNames() []string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = string(m)
	}
	return names
}

func (m Method) String() string {
	return string(m)
}

// Dispatchable reports whether a request with this method can be issued.
// Methods outside the selector list are never dispatchable.
func (m Method) Dispatchable() bool {
	switch m {
	case MethodGet, MethodPost:
		return true
	case MethodPut, MethodDelete:
		return false
	default:
		return false
	}
}
