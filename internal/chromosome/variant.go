package chromosome

import "math/rand"

// Factory builds a fresh, zero-valued chromosome for one variant of a
// Variant union.
type Factory func() Chromosome

// Variant is a tagged-union chromosome node: exactly one of its variants is
// present at a time, selected by an implicit discriminant gene at index 0.
type Variant struct {
	factories []Factory
	maxLen    int
	current   int
	active    Chromosome
}

// NewVariant builds a Variant union from one factory per variant, in
// declaration order. The discriminant starts at variant 0.
func NewVariant(factories []Factory) *Variant {
	maxLen := 0
	for _, f := range factories {
		if l := f().Len(); l > maxLen {
			maxLen = l
		}
	}
	return &Variant{
		factories: factories,
		maxLen:    maxLen,
		active:    factories[0](),
	}
}

// Len is 1 (the discriminant gene) plus the longest variant's length.
func (v *Variant) Len() int {
	return 1 + v.maxLen
}

// Current returns the index of the active variant.
func (v *Variant) Current() int {
	return v.current
}

// Active returns the currently-selected variant's chromosome.
func (v *Variant) Active() Chromosome {
	return v.active
}

func (v *Variant) Generate(rng *rand.Rand, ctx *Context) {
	pinned, ok := ctx.Pinned(0)
	if ok {
		v.current = pinned.(int)
	} else {
		v.current = rng.Intn(len(v.factories))
	}
	v.active = v.factories[v.current]()
	v.active.Generate(rng, childContext(ctx, 1, v.active.Len()))
}

// Cross swaps gene i with other. At i==0 the entire active variant subtree
// (discriminant + value) is swapped unconditionally. For i>0, the swap is a
// no-op unless both sides currently hold the same variant.
func (v *Variant) Cross(otherC Chromosome, i int) {
	other, ok := otherC.(*Variant)
	if !ok {
		return
	}
	if i == 0 {
		v.active, other.active = other.active, v.active
		v.current, other.current = other.current, v.current
		return
	}
	if v.current != other.current {
		return
	}
	li := i - 1
	if li >= v.active.Len() {
		return
	}
	v.active.Cross(other.active, li)
}

// Mutate at i==0 re-samples the whole variant (possibly changing the
// discriminant); at i>0 it delegates to the active variant.
func (v *Variant) Mutate(rng *rand.Rand, i int, ctx *Context) {
	if i == 0 {
		v.Generate(rng, ctx)
		return
	}
	v.active.Mutate(rng, i-1, childContext(ctx, 1, v.active.Len()))
}
