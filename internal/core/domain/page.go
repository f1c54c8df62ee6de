package domain

// Page is one slice of a code-ordered listing. NextToken resumes after the
// last item and is empty when More is false.
type Page[T any] struct {
	Items     []T
	More      bool
	NextToken string
}
