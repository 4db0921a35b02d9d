package ports

import "context"

// PageStore provides the HTML document served at the base path.
type PageStore interface {
	Index(ctx context.Context) ([]byte, error)
}
