package fetch

import "fmt"

// Result is the outcome of a fetch: either Content or Unavailable.
// The set of implementations is closed; switch on the concrete type.
type Result interface {
	isResult()
}

// Content carries the decoded UTF-8 text of the fetched object.
type Content struct {
	Source string
	Text   string
}

// Unavailable means the object could not be retrieved or decoded.
// All causes (network, auth, missing key, encoding) share this one outcome.
type Unavailable struct {
	Source string
	Reason error
}

func (Content) isResult()     {}
func (Unavailable) isResult() {}

func (u Unavailable) Error() string {
	if u.Reason == nil {
		return fmt.Sprintf("%s unavailable", u.Source)
	}
	return u.Reason.Error()
}

func (u Unavailable) Unwrap() error { return u.Reason }
