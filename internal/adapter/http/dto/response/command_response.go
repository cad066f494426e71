package response

// RenderableResult is the generic outcome of a command or selection: content
// the caller renders back to the actor, plus any warnings about downstream
// side effects that failed after the operation itself succeeded.
type RenderableResult struct {
	Content   string                 `json:"content"`
	Ephemeral bool                   `json:"ephemeral"`
	Warnings  []string               `json:"warnings,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}
