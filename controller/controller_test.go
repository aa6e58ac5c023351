package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestController() *Controller {
	b := NewBuilder()

	vpac := NewFileBody(VPac, WithNames, 1, []ParsedVariable{
		{Name: "Foo", Kind: Integer, Offset: 60},
	})
	b.AddDPac("Lights", 0xF1, vpac, true)

	task := NewFileBody(Task, WithNames, 2, []ParsedVariable{
		{Name: "Counter", Kind: Huge, Offset: 0},
	})
	b.AddTask("Main", 1, task)

	return b.Build(Address{PLA: 1, ELA: 2}, true, "secret")
}

func TestLookupVariableQualified(t *testing.T) {
	c := buildTestController()
	v, ok := c.LookupVariable("lights.foo")
	require.True(t, ok)
	assert.Equal(t, VPac, v.FileKind())
	assert.Equal(t, Integer, v.Kind())
	assert.Equal(t, uint32(60), v.Offset())
	assert.Equal(t, uint32(1), v.Page())
}

func TestLookupVariableBareResolvesGlobal(t *testing.T) {
	c := buildTestController()
	v, ok := c.LookupVariable("Foo")
	require.True(t, ok)
	assert.Equal(t, byte(0xF1), v.LoadNumber())
}

func TestLookupVariableMissing(t *testing.T) {
	c := buildTestController()
	_, ok := c.LookupVariable("Nope")
	assert.False(t, ok)
	_, ok = c.LookupVariable("Lights.Nope")
	assert.False(t, ok)
}

func TestLookupVariableNonGlobalDPacNotSearchedForBareName(t *testing.T) {
	b := NewBuilder()
	vpac := NewFileBody(VPac, WithNames, 1, []ParsedVariable{{Name: "Foo", Kind: Integer, Offset: 0}})
	b.AddDPac("Private", 0xF2, vpac, false)
	c := b.Build(Address{}, false, "")

	_, ok := c.LookupVariable("Foo")
	assert.False(t, ok)
	_, ok = c.LookupVariable("Private.Foo")
	assert.True(t, ok)
}

func TestVariableEqualityIgnoresName(t *testing.T) {
	b := NewBuilder()
	vpac := NewFileBody(VPac, WithNames, 1, []ParsedVariable{
		{Name: "Foo", Kind: Integer, Offset: 60},
		{Name: "Bar", Kind: Integer, Offset: 60},
	})
	// Two variables of one file sharing an offset/kind/load-number triple.
	b.AddDPac("A", 0xF1, vpac, true)
	c := b.Build(Address{}, false, "")

	foo, _ := c.LookupVariable("A.Foo")
	bar, _ := c.LookupVariable("A.Bar")
	assert.True(t, foo.Equal(bar))
	assert.Equal(t, foo.HashKey(), bar.HashKey())

	nameFoo, _ := foo.Name()
	nameBar, _ := bar.Name()
	assert.NotEqual(t, nameFoo, nameBar)
}

func TestControllerEqual(t *testing.T) {
	c1 := buildTestController()
	c2 := buildTestController()
	assert.True(t, c1.Equal(c2))

	c3 := buildTestController()
	c3.SystemPassword = "different"
	assert.False(t, c1.Equal(c3))
}

func TestHashedNamesDropsNames(t *testing.T) {
	b := NewBuilder()
	vpac := NewFileBody(VPac, HashedNames, 1, []ParsedVariable{{Name: "Foo", Kind: Real, Offset: 0}})
	b.AddDPac("A", 1, vpac, true)
	c := b.Build(Address{}, false, "")

	v, ok := c.LookupVariable("A.Foo")
	require.True(t, ok)
	_, hasName := v.Name()
	assert.False(t, hasName)
	assert.Equal(t, Real, v.Kind())
}
