package catalog

// Store is the read-only product catalog. Products are fixed at
// construction time; callers never see the backing slice directly, so
// the catalog cannot be mutated from outside.
type Store struct {
	products []Product
	byID     map[string]int
}

func NewStore(products []Product) *Store {
	cp := make([]Product, len(products))
	copy(cp, products)

	byID := make(map[string]int, len(cp))
	for i, p := range cp {
		byID[p.ID] = i
	}
	return &Store{products: cp, byID: byID}
}

// NewSeededStore returns a store loaded with the static storefront
// product set.
func NewSeededStore() *Store {
	return NewStore(seedProducts)
}

// Products returns a copy of the catalog in its original order.
func (s *Store) Products() []Product {
	cp := make([]Product, len(s.products))
	copy(cp, s.products)
	return cp
}

func (s *Store) Get(id string) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.products[i], nil
}

func (s *Store) Len() int { return len(s.products) }

// Categories returns the "All" sentinel followed by the distinct
// product categories in first-seen catalog order.
func (s *Store) Categories() []string {
	out := []string{CategoryAll}
	seen := make(map[string]bool, len(s.products))
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
