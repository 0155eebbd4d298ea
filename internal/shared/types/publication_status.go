package types

// PublicationStatus is the lifecycle state of a book.
// UNPUBLISHED may move to PUBLISHED; PUBLISHED is terminal.
type PublicationStatus string

const (
	StatusUnpublished PublicationStatus = "UNPUBLISHED"
	StatusPublished   PublicationStatus = "PUBLISHED"
)

func (s PublicationStatus) IsValid() bool {
	return s == StatusUnpublished || s == StatusPublished
}

// CanTransitionTo reports whether a book in state s may be moved to next.
// Self transitions are allowed.
func (s PublicationStatus) CanTransitionTo(next PublicationStatus) bool {
	return !(s == StatusPublished && next == StatusUnpublished)
}
