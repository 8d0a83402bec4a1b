package dropdown

import (
	"fmt"

	"cleanselect/internal/config"
	"cleanselect/internal/dom"
)

// Mount resolves the overlay configuration from the anchor's data-*
// attributes and binds a controller to it.
func Mount(doc *dom.Document, anchor dom.Select, opts ...Option) (*Controller, error) {
	cfg, err := config.FromAttributes(anchor.Attrs())
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", anchor.ID, err)
	}
	return New(doc, anchor, cfg, opts...), nil
}

// Attach is Mount for owners that only need to tear the dropdown down. The
// returned function unmounts the controller and is idempotent.
func Attach(doc *dom.Document, anchor dom.Select, opts ...Option) (unmount func(), err error) {
	c, err := Mount(doc, anchor, opts...)
	if err != nil {
		return nil, err
	}
	return c.Unmount, nil
}
