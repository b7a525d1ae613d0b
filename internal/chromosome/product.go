package chromosome

import "math/rand"

// Product is a chromosome node whose children are always all present:
// nested Chromosome children indexed first, then scalar leaves, both in
// declaration order.
type Product struct {
	children []Chromosome
	leaves   []ScalarLeaf
}

// NewProduct builds a Product from its children (in declared order) and its
// own scalar leaves (in declared order).
func NewProduct(children []Chromosome, leaves []ScalarLeaf) *Product {
	return &Product{children: children, leaves: leaves}
}

func (p *Product) Len() int {
	total := 0
	for _, c := range p.children {
		total += c.Len()
	}
	return total + len(p.leaves)
}

func (p *Product) Generate(rng *rand.Rand, ctx *Context) {
	offset := 0
	for _, c := range p.children {
		c.Generate(rng, childContext(ctx, offset, c.Len()))
		offset += c.Len()
	}
	for i, l := range p.leaves {
		v, ok := ctx.Pinned(offset + i)
		l.Generate(rng, v, ok)
	}
}

// productOf is satisfied by *Product itself and, by promotion, by any type
// that embeds *Product to attach extra fields (every concrete gene type in
// package tradingparams does this). Product.Cross type-asserts against this
// interface rather than against the concrete *Product type so that crossing
// two individuals of the same wrapper type reaches the embedded Product
// regardless of what the wrapper adds around it.
type productOf interface {
	underlyingProduct() *Product
}

func (p *Product) underlyingProduct() *Product { return p }

func (p *Product) Cross(otherC Chromosome, i int) {
	wrapped, ok := otherC.(productOf)
	if !ok {
		return
	}
	other := wrapped.underlyingProduct()
	offset := 0
	for ci, c := range p.children {
		if i < offset+c.Len() {
			c.Cross(other.children[ci], i-offset)
			return
		}
		offset += c.Len()
	}
	li := i - offset
	if li >= 0 && li < len(p.leaves) {
		p.leaves[li].Cross(other.leaves[li])
	}
}

func (p *Product) Mutate(rng *rand.Rand, i int, ctx *Context) {
	offset := 0
	for ci, c := range p.children {
		if i < offset+c.Len() {
			c.Mutate(rng, i-offset, childContext(ctx, offset, c.Len()))
			return
		}
		offset += c.Len()
	}
	li := i - offset
	if li >= 0 && li < len(p.leaves) {
		v, ok := ctx.Pinned(offset + li)
		p.leaves[li].Mutate(rng, v, ok)
	}
}
