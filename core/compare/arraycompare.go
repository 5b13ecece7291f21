package compare

import "reflect"

// Diff holds the parts of two collections that differ.
// Left carries values from the first collection, Right from the second.
type Diff struct {
	Left  map[string]any `json:"left,omitempty"`
	Right map[string]any `json:"right,omitempty"`
}

// ArrayCompare computes a structural diff of two mappings. Keys present on
// one side only, and keys whose values differ strictly, are reported on the
// side(s) they come from; nested collections are diffed recursively so only
// differing leaves appear. It returns nil when nothing differs.
//
// The result is for diagnostics; it never decides equality.
func ArrayCompare(a, b map[string]any) *Diff {
	d := &Diff{}

	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			d.setLeft(key, av)
			continue
		}

		if nestedA, isCollection := asKeyed(av); isCollection {
			nestedB, bIsCollection := asKeyed(bv)
			if !bIsCollection {
				d.setLeft(key, av)
				d.setRight(key, bv)
				continue
			}
			if sub := ArrayCompare(nestedA, nestedB); sub != nil {
				if sub.Left != nil {
					d.setLeft(key, sub.Left)
				}
				if sub.Right != nil {
					d.setRight(key, sub.Right)
				}
			}
			continue
		}

		// Scalars are compared strictly: same dynamic type and value.
		if !reflect.DeepEqual(av, bv) {
			d.setLeft(key, av)
			d.setRight(key, bv)
		}
	}

	for key, bv := range b {
		if _, ok := a[key]; !ok {
			d.setRight(key, bv)
		}
	}

	if d.Left == nil && d.Right == nil {
		return nil
	}
	return d
}

// ArrayCompareValues diffs two arbitrary collections, treating sequences as
// mappings keyed by index. It returns nil when either value is not a collection.
func ArrayCompareValues(a, b any) *Diff {
	am, aOK := asKeyed(a)
	bm, bOK := asKeyed(b)
	if !aOK || !bOK {
		return nil
	}
	return ArrayCompare(am, bm)
}

func (d *Diff) setLeft(key string, v any) {
	if d.Left == nil {
		d.Left = make(map[string]any)
	}
	d.Left[key] = v
}

func (d *Diff) setRight(key string, v any) {
	if d.Right == nil {
		d.Right = make(map[string]any)
	}
	d.Right[key] = v
}
