// ABOUTME: Overflow fitter: decides how many trailing chips collapse behind a "+N more" control
// ABOUTME: Pure function over measured widths plus a Fitter that caches widths across layout passes

package fit

// Result is the visibility decision for one fit pass.
type Result struct {
	// Visible holds one flag per input item, in order.
	Visible []bool
	// Hidden is the number of trailing items collapsed away.
	Hidden int
	// FirstHidden is the index of the first hidden item, or len(items) when none is hidden.
	FirstHidden int
}

// Fit computes which trailing items must be hidden so that the visible items plus the
// show-more control fit within container columns.
//
// Hiding is monotonic from the tail. Item 0 is never hidden, even when it alone is wider
// than the container. When collapsed is false every item is visible.
func Fit(widths []int, container, showMore int, collapsed bool) Result {
	n := len(widths)
	res := Result{
		Visible:     make([]bool, n),
		FirstHidden: n,
	}

	if collapsed {
		total := 0
		for i, w := range widths {
			total += w
			if i == 0 || total <= container {
				continue
			}
			res.FirstHidden = i
			// The show-more control sits right after the last visible item;
			// if it does not fit there, that item goes too. Item 0 stays.
			if i > 1 && total-w+showMore > container {
				res.FirstHidden = i - 1
			}
			break
		}
	}

	for i := range res.Visible {
		res.Visible[i] = i < res.FirstHidden
	}
	res.Hidden = n - res.FirstHidden
	return res
}

// Measured pairs an item key with its freshly measured width.
type Measured struct {
	Key   string
	Width int
}

// Fitter runs Fit over measured items, reusing the last known width of an item
// whose measurement came back as 0 (not laid out yet).
type Fitter struct {
	widths map[string]int
}

// NewFitter creates a Fitter with an empty width cache.
func NewFitter() *Fitter {
	return &Fitter{widths: make(map[string]int)}
}

// Fit resolves cached widths and delegates to the package-level Fit.
func (f *Fitter) Fit(items []Measured, container, showMore int, collapsed bool) Result {
	widths := make([]int, len(items))
	for i, it := range items {
		w := it.Width
		if w == 0 {
			w = f.widths[it.Key]
		} else {
			f.widths[it.Key] = w
		}
		widths[i] = w
	}
	return Fit(widths, container, showMore, collapsed)
}

// Cached returns the cached width for key.
func (f *Fitter) Cached(key string) (int, bool) {
	w, ok := f.widths[key]
	return w, ok
}

// Forget drops the cached width of a removed item.
func (f *Fitter) Forget(key string) {
	delete(f.widths, key)
}
