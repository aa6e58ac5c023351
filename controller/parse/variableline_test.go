package parse

import (
	"testing"

	"github.com/exoline-go/exoline/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariableLineSimple(t *testing.T) {
	kind, name, _, hasArray, err := ParseVariableLine("H Foo")
	require.NoError(t, err)
	assert.Equal(t, controller.Huge, kind)
	assert.Equal(t, "Foo", name)
	assert.False(t, hasArray)
}

func TestParseVariableLineStringLength(t *testing.T) {
	kind, name, _, hasArray, err := ParseVariableLine("$:30Greeting")
	require.NoError(t, err)
	assert.Equal(t, controller.String, kind)
	assert.Equal(t, "Greeting", name)
	assert.False(t, hasArray)
}

func TestParseVariableLineArray(t *testing.T) {
	kind, name, arrayLen, hasArray, err := ParseVariableLine("X Bar(3)")
	require.NoError(t, err)
	assert.Equal(t, controller.Index, kind)
	assert.Equal(t, "Bar", name)
	require.True(t, hasArray)
	assert.Equal(t, uint32(3), arrayLen)
}

func TestParseVariableLineDiscardsTrailingValue(t *testing.T) {
	kind, name, _, _, err := ParseVariableLine("I Count = 5")
	require.NoError(t, err)
	assert.Equal(t, controller.Integer, kind)
	assert.Equal(t, "Count", name)
}

func TestParseVariableLineInvalidKind(t *testing.T) {
	_, _, _, _, err := ParseVariableLine("Z Foo")
	assert.Error(t, err)
	var invalidVar *InvalidVariableError
	assert.ErrorAs(t, err, &invalidVar)
}

func TestParseVariableLineBadArraySyntax(t *testing.T) {
	_, _, _, _, err := ParseVariableLine("H Foo(3")
	assert.Error(t, err)
}

func TestParseVariableLineMissingName(t *testing.T) {
	_, _, _, _, err := ParseVariableLine("H")
	assert.Error(t, err)
}
