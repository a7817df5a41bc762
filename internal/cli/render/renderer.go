package render

// Renderer writes one use case result to its output
type Renderer[T any] interface {
	Render(result T) error
}
