package logging

import "context"

type contextKey string

const (
	documentKey contextKey = "document"
	viewKey     contextKey = "view"
)

// WithDocument adds the active document name to the context.
func WithDocument(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, documentKey, name)
}

// WithView adds a view name to the context.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewKey, view)
}

// GetDocument retrieves the active document name from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if name, ok := ctx.Value(documentKey).(string); ok {
		return name
	}
	return ""
}

// GetView retrieves the view name from the context.
// Returns empty string if not present.
func GetView(ctx context.Context) string {
	if view, ok := ctx.Value(viewKey).(string); ok {
		return view
	}
	return ""
}
