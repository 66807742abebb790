package port

// Collator derives locale-aware sort keys.
// Keys compare bytewise: Key(a) < Key(b) iff a collates before b.
type Collator interface {
	Key(s string) string
}
