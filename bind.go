package main

// bind holds a value and calls onChange after each Set.
type bind[T any] struct {
	value    T
	onChange func()
}

func Bind[T any](v T, onChange func()) *bind[T] {
	return &bind[T]{value: v, onChange: onChange}
}

func (b *bind[T]) Get() T { return b.value }

func (b *bind[T]) Set(v T) {
	b.value = v
	if b.onChange != nil {
		b.onChange()
	}
}
