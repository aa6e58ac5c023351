package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoadMdl(t *testing.T) {
	content := "{ dpac\nQDig.Dpe/MS\nMyPac.Dpe/LN=3\n}\n{ task\nMyTask.Tsk\n}\n{ text\nMyText.Txt/MS\n}\n"
	m := ParseLoadMdl(content)

	require.Len(t, m.DPacs, 2)
	assert.Equal(t, "QDig.Dpe", m.DPacs[0].Filename)
	assert.True(t, m.DPacs[0].Global)
	assert.False(t, m.DPacs[0].HasLoadNumber)

	assert.Equal(t, "MyPac.Dpe", m.DPacs[1].Filename)
	assert.False(t, m.DPacs[1].Global)
	require.True(t, m.DPacs[1].HasLoadNumber)
	assert.Equal(t, byte(3), m.DPacs[1].LoadNumber)

	require.Len(t, m.Tasks, 1)
	assert.Equal(t, "MyTask.Tsk", m.Tasks[0].Filename)

	require.Len(t, m.Texts, 1)
	assert.Equal(t, "MyText.Txt", m.Texts[0].Filename)
	assert.True(t, m.Texts[0].Global)
}

func TestParseLoadMdlIgnoresUnknownSections(t *testing.T) {
	content := "{ other\nSomething.Xyz\n}\n"
	m := ParseLoadMdl(content)
	assert.Empty(t, m.DPacs)
	assert.Empty(t, m.Tasks)
	assert.Empty(t, m.Texts)
}
