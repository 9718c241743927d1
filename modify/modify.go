package modify

import (
	"github.com/mdsync/mdsync/ir"
)

// Modifier is a pure transformation from one Document to another.
type Modifier func(*ir.Document) (*ir.Document, error)

// Apply runs mods over d in order, halting at the first error. Later
// modifiers may assume earlier ones ran, so no partial result is
// returned on failure.
func Apply(d *ir.Document, mods ...Modifier) (*ir.Document, error) {
	var err error
	for _, mod := range mods {
		d, err = mod(d)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

// mapItems clones d and rewrites every item (including nested ones) with
// f, which may mutate its argument in place. The result is normalized.
func mapItems(d *ir.Document, f func(it *ir.Item)) *ir.Document {
	res := d.Clone()
	res.Visit(func(it *ir.Item, isPost bool) (bool, error) {
		if !isPost {
			f(it)
		}
		return true, nil
	})
	return ir.NormalizeDocument(res)
}
