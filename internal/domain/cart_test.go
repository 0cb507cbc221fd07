package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_NewLine(t *testing.T) {
	cart := Cart{}

	cart.Add("p2", 15)

	assert.Equal(t, []CartLine{{ProductID: "p2", Quantity: 1}}, cart.Lines)
	assert.Equal(t, 15.0, cart.TotalPrice)
}

func TestAdd_ExistingLine_IncrementsQuantity(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 20,
	}

	cart.Add("p1", 10)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 30.0, cart.TotalPrice)
}

func TestAdd_RaisesTotalByExactlyOnePrice(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 4}},
		TotalPrice: 50,
	}

	cart.Add("p2", 7.5)

	assert.Equal(t, 57.5, cart.TotalPrice)
	assert.Equal(t, 5, cart.Lines[1].Quantity)
}

func TestRemove_PresentLine(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 20,
	}

	removed := cart.Remove("p1", 10)

	assert.True(t, removed)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0.0, cart.TotalPrice)
}

func TestRemove_AbsentLine_IsNoOp(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 20,
	}

	removed := cart.Remove("p9", 10)

	assert.False(t, removed)
	assert.Equal(t, []CartLine{{ProductID: "p1", Quantity: 2}}, cart.Lines)
	assert.Equal(t, 20.0, cart.TotalPrice)
}

func TestRemove_DecrementsQuantityWeighted(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 1}},
		TotalPrice: 50,
	}

	removed := cart.Remove("p1", 5)

	assert.True(t, removed)
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)
	assert.Equal(t, 35.0, cart.TotalPrice)
}

func TestClear(t *testing.T) {
	cart := Cart{
		Lines:      []CartLine{{ProductID: "p1", Quantity: 2}},
		TotalPrice: 20,
	}

	cart.Clear()

	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0.0, cart.TotalPrice)
}

func TestComputeTotalPrice(t *testing.T) {
	lines := []CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 3},
	}
	resolved := map[string]Product{
		"p1": {ID: "p1", Price: 10},
		"p2": {ID: "p2", Price: 5},
	}

	total := ComputeTotalPrice(lines, resolved)

	assert.Equal(t, 35.0, total)
}

func TestComputeTotalPrice_UnresolvedLinesContributeNothing(t *testing.T) {
	lines := []CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "gone", Quantity: 100},
	}
	resolved := map[string]Product{
		"p1": {ID: "p1", Price: 10},
	}

	total := ComputeTotalPrice(lines, resolved)

	assert.Equal(t, 20.0, total)
}

func TestComputeTotalPrice_Idempotent(t *testing.T) {
	lines := []CartLine{{ProductID: "p1", Quantity: 2}}
	resolved := map[string]Product{"p1": {ID: "p1", Price: 9.99}}

	first := ComputeTotalPrice(lines, resolved)
	second := ComputeTotalPrice(lines, resolved)

	assert.Equal(t, first, second)
}

func TestLine(t *testing.T) {
	cart := Cart{Lines: []CartLine{{ProductID: "p1", Quantity: 2}}}

	line, ok := cart.Line("p1")
	assert.True(t, ok)
	assert.Equal(t, 2, line.Quantity)

	_, ok = cart.Line("p2")
	assert.False(t, ok)
}
