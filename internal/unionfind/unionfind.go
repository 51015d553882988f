// Package unionfind implements a disjoint-set forest over string keys
package unionfind

// UnionFind groups keys into disjoint sets. Each set is represented by the first key added to it.
type UnionFind struct {
	parent map[string]string
	order  map[string]int
}

// New creates an empty UnionFind
func New() *UnionFind {
	return &UnionFind{
		parent: make(map[string]string),
		order:  make(map[string]int),
	}
}

// Add inserts key as a singleton set, if it is not already present
func (u *UnionFind) Add(key string) {
	if _, ok := u.parent[key]; ok {
		return
	}
	u.parent[key] = key
	u.order[key] = len(u.order)
}

// Find returns the representative of key's set, and false if key was never added
func (u *UnionFind) Find(key string) (string, bool) {
	if _, ok := u.parent[key]; !ok {
		return "", false
	}
	root := key
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// path compression
	for key != root {
		next := u.parent[key]
		u.parent[key] = root
		key = next
	}
	return root, true
}

// Union merges the sets containing a and b, adding either key if necessary
func (u *UnionFind) Union(a, b string) {
	u.Add(a)
	u.Add(b)
	ra, _ := u.Find(a)
	rb, _ := u.Find(b)
	if ra == rb {
		return
	}
	// the earliest-added key stays the representative
	if u.order[rb] < u.order[ra] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}

// Same returns true iff a and b belong to the same set
func (u *UnionFind) Same(a, b string) bool {
	ra, ok := u.Find(a)
	if !ok {
		return false
	}
	rb, ok := u.Find(b)
	return ok && ra == rb
}
