package chromosome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Len_SumsChildrenAndLeaves(t *testing.T) {
	var a, b int
	p := NewProduct(nil, []ScalarLeaf{intLeaf(&a), intLeaf(&b)})
	assert.Equal(t, 2, p.Len())

	var c int
	nested := NewProduct(nil, []ScalarLeaf{intLeaf(&c)})
	outer := NewProduct([]Chromosome{nested}, []ScalarLeaf{intLeaf(&a)})
	assert.Equal(t, 2, outer.Len())
}

func TestProduct_Generate_RespectsPins(t *testing.T) {
	var a, b int
	p := NewProduct(nil, []ScalarLeaf{intLeaf(&a), intLeaf(&b)})
	p.Generate(rand.New(rand.NewSource(1)), &Context{Pins: map[int]any{0: 100}})
	assert.Equal(t, 100, a)
	assert.Equal(t, 7, b) // unpinned leaf falls back to its sampler
}

func TestProduct_Cross_SwapsSingleGene(t *testing.T) {
	var a1, b1, a2, b2 int = 1, 2, 10, 20
	p1 := NewProduct(nil, []ScalarLeaf{intLeaf(&a1), intLeaf(&b1)})
	p2 := NewProduct(nil, []ScalarLeaf{intLeaf(&a2), intLeaf(&b2)})

	p1.Cross(p2, 0)
	assert.Equal(t, 10, a1)
	assert.Equal(t, 1, a2)
	assert.Equal(t, 2, b1) // untouched
	assert.Equal(t, 20, b2)
}

func TestProduct_Cross_NestedChild(t *testing.T) {
	var inner1, inner2 int = 1, 2
	nested1 := NewProduct(nil, []ScalarLeaf{intLeaf(&inner1)})
	nested2 := NewProduct(nil, []ScalarLeaf{intLeaf(&inner2)})
	var own1, own2 int = 100, 200
	outer1 := NewProduct([]Chromosome{nested1}, []ScalarLeaf{intLeaf(&own1)})
	outer2 := NewProduct([]Chromosome{nested2}, []ScalarLeaf{intLeaf(&own2)})

	outer1.Cross(outer2, 0) // index 0 belongs to the nested child
	assert.Equal(t, 2, inner1)
	assert.Equal(t, 1, inner2)
	assert.Equal(t, 100, own1) // leaf at index 1, untouched

	outer1.Cross(outer2, 1) // index 1 is the own leaf
	assert.Equal(t, 200, own1)
	assert.Equal(t, 100, own2)
}

// wrapperGene embeds *Product to attach a domain field, exactly the shape
// every concrete gene type in package tradingparams uses. This is a
// regression test for Product.Cross needing to reach the embedded node when
// "other" is passed in as the wrapper type rather than a bare *Product.
type wrapperGene struct {
	*Product
	tag int
}

func newWrapperGene(v *int, tag int) *wrapperGene {
	return &wrapperGene{
		Product: NewProduct(nil, []ScalarLeaf{intLeaf(v)}),
		tag:     tag,
	}
}

func TestProduct_Cross_ReachesEmbeddedNodeThroughWrapperType(t *testing.T) {
	var v1, v2 int = 1, 2
	g1 := newWrapperGene(&v1, 11)
	g2 := newWrapperGene(&v2, 22)

	require.NotPanics(t, func() { g1.Cross(g2, 0) })
	assert.Equal(t, 2, v1)
	assert.Equal(t, 1, v2)
	// tag fields are plain struct fields outside the chromosome tree and are
	// untouched by Cross.
	assert.Equal(t, 11, g1.tag)
	assert.Equal(t, 22, g2.tag)
}

func TestProduct_Cross_UnrelatedTypeIsNoop(t *testing.T) {
	var a int = 1
	p := NewProduct(nil, []ScalarLeaf{intLeaf(&a)})
	v := NewVariant([]Factory{func() Chromosome { return NewProduct(nil, []ScalarLeaf{intLeaf(new(int))}) }})
	require.NotPanics(t, func() { p.Cross(v, 0) })
	assert.Equal(t, 1, a)
}

func TestProduct_Mutate_RespectsPin(t *testing.T) {
	var a, b int = 1, 2
	p := NewProduct(nil, []ScalarLeaf{intLeaf(&a), intLeaf(&b)})
	p.Mutate(rand.New(rand.NewSource(1)), 1, &Context{Pins: map[int]any{1: 55}})
	assert.Equal(t, 55, b)
	assert.Equal(t, 1, a)
}
