package domain

// Deref devolve o valor apontado ou o zero value quando p é nil
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr devolve um ponteiro para v
func Ptr[T any](v T) *T {
	return &v
}
