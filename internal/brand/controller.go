package brand

import "fmt"

// Reader gives read access to the current selection.
type Reader interface {
	Current() Asset
	SelectedID() int
}

// Observer is notified after the selection changes.
type Observer interface {
	SelectionChanged(current Asset)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(current Asset)

// SelectionChanged calls f(current).
func (f ObserverFunc) SelectionChanged(current Asset) { f(current) }

type subscription struct {
	id       int
	observer Observer
}

// Controller owns the selected asset id for one page session.
type Controller struct {
	catalog   *Catalog
	selected  int
	observers []subscription
	nextSubID int
}

// NewController returns a controller selecting the catalog's first entry.
func NewController(catalog *Catalog) *Controller {
	return &Controller{
		catalog:  catalog,
		selected: catalog.First().ID,
	}
}

// Select makes id the current selection and notifies observers in
// subscription order before returning. Selecting the current id does
// nothing. An id outside the catalog returns ErrInvalidSelection and keeps
// the previous selection. Observers must not call Select.
func (c *Controller) Select(id int) error {
	asset, ok := c.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d not in 1..%d", ErrInvalidSelection, id, c.catalog.Len())
	}
	if id == c.selected {
		return nil
	}

	c.selected = id

	// Iterate a snapshot so observers may unsubscribe while notified.
	subs := make([]subscription, len(c.observers))
	copy(subs, c.observers)
	for _, s := range subs {
		s.observer.SelectionChanged(asset)
	}
	return nil
}

// Current returns the selected asset.
func (c *Controller) Current() Asset {
	asset, _ := c.catalog.Get(c.selected)
	return asset
}

// SelectedID returns the selected asset id.
func (c *Controller) SelectedID() int {
	return c.selected
}

// Catalog returns the catalog the controller selects from.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// Subscribe registers o and returns a function removing it. Calling the
// returned function more than once is harmless.
func (c *Controller) Subscribe(o Observer) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.observers = append(c.observers, subscription{id: id, observer: o})

	return func() {
		for i, s := range c.observers {
			if s.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Compile-time interface check.
var _ Reader = (*Controller)(nil)
