package dsu

// DSU is a disjoint-set union over the elements [0, n). Root entries hold
// -size; non-root entries hold a parent index. The zero value is not usable;
// construct with New.
type DSU struct {
	link []int
}

// New returns a DSU with n singleton components.
func New(n int) *DSU {
	link := make([]int, n)
	for i := range link {
		link[i] = -1
	}
	return &DSU{link: link}
}

// Root returns the representative of u's component, compressing the path
// from u to the root so subsequent lookups are O(1) amortized.
func (d *DSU) Root(u int) int {
	root := u
	for d.link[root] >= 0 {
		root = d.link[root]
	}
	for d.link[u] >= 0 { // point every node on the path straight at the root
		next := d.link[u]
		d.link[u] = root
		u = next
	}
	return root
}

// Union merges the components containing u and v, attaching the smaller
// component under the larger one's root. It returns whether u and v were in
// distinct components prior to the call.
func (d *DSU) Union(u, v int) bool {
	ru, rv := d.Root(u), d.Root(v)
	if ru == rv {
		return false
	}
	if d.link[ru] > d.link[rv] { // link[root] is -size; larger size = more negative
		ru, rv = rv, ru
	}
	d.link[ru] += d.link[rv]
	d.link[rv] = ru
	return true
}

// Connected reports whether u and v belong to the same component.
func (d *DSU) Connected(u, v int) bool {
	return d.Root(u) == d.Root(v)
}

// Size returns the size of the component containing u.
func (d *DSU) Size(u int) int {
	return -d.link[d.Root(u)]
}

// Components returns the number of distinct components in [0, n).
func (d *DSU) Components() int {
	n := 0
	for _, l := range d.link {
		if l < 0 {
			n++
		}
	}
	return n
}
