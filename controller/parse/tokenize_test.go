package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeIniHeaderAndSections(t *testing.T) {
	text := "x = 99\ny = 50\n[s1]\na = 1\nb = 2\n[s2]\nc = 3\nd = 4\n"
	sections := TokenizeIni(text)
	require.Len(t, sections, 3)

	assert.False(t, sections[0].HasName)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "x", sections[0].Items[0].Key)
	assert.Equal(t, "99", sections[0].Items[0].Value)

	assert.Equal(t, "s1", sections[1].Name)
	require.Len(t, sections[1].Items, 2)
	assert.Equal(t, "a", sections[1].Items[0].Key)
	assert.Equal(t, "1", sections[1].Items[0].Value)

	assert.Equal(t, "s2", sections[2].Name)
}

func TestTokenizeIniComments(t *testing.T) {
	text := "; leading comment\n[s]\na = 1 ; trailing\n; comment only\nb = 2\n"
	sections := TokenizeIni(text)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "1", sections[0].Items[0].Value)
	assert.Equal(t, "trailing", sections[0].Items[0].Comment)
	assert.Equal(t, "2", sections[0].Items[1].Value)
}

func TestTokenizeExoSections(t *testing.T) {
	text := "{ s1\na = 1\nb = 2\n}\n{ s2\nc = 3\nd = 4\n}\n"
	sections := TokenizeExo(text)
	require.Len(t, sections, 2)
	assert.Equal(t, "s1", sections[0].Name)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "a = 1", sections[0].Items[0].Line)
	assert.Equal(t, "s2", sections[1].Name)
}

func TestTokenizeExoTrailingCommentOnBrace(t *testing.T) {
	text := "{ task ; a task\nln = 1\n}\n"
	sections := TokenizeExo(text)
	require.Len(t, sections, 1)
	assert.Equal(t, "task", sections[0].Name)
}
