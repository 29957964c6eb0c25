package Trees

// KeyNotFoundError reports that a key, or the element an Iterator used to
// denote, is not in the tree.
type KeyNotFoundError struct {
}

func (e *KeyNotFoundError) Error() string {
	return "Tree has no such element: cannot access."
}
