package parse

import (
	"testing"

	"github.com/exoline-go/exoline/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBPacBasic(t *testing.T) {
	content := "{ bpac\nname = MyRecords\nvln = 4\n}\n{ values\n: H Col1 : I Col2 :\nrow0\n}\n"
	pf, err := ParseDPac(content, controller.WithNames, 0)
	require.NoError(t, err)
	assert.Equal(t, "MyRecords", pf.Name)
	assert.Equal(t, byte(4), pf.LoadNumber)

	f := buildFile(t, controller.BPac, pf)
	require.Equal(t, 2, f.Len())

	col1, ok := f.Get("Records(0).Col1")
	require.True(t, ok)
	assert.Equal(t, uint32(0), col1.Offset())

	col2, ok := f.Get("Records(0).Col2")
	require.True(t, ok)
	assert.Equal(t, uint32(4), col2.Offset())
}

func TestParseBPacRecordGapSynthesizesPlaceholders(t *testing.T) {
	content := "{ bpac\nname = MyRecords\n}\n{ values\n: H Col1 :\nfirst #2\n}\n"
	pf, err := ParseDPac(content, controller.WithNames, 0)
	require.NoError(t, err)
	f := buildFile(t, controller.BPac, pf)
	require.Equal(t, 3, f.Len())

	for i, off := range []uint32{0, 4, 8} {
		v, ok := f.Get(indexedName("Records", i) + ".Col1")
		require.True(t, ok)
		assert.Equal(t, off, v.Offset())
	}
}

func TestParseBPacRejectsStringColumn(t *testing.T) {
	content := "{ bpac\nname = MyRecords\n}\n{ values\n: $ Name :\nrow0\n}\n"
	_, err := ParseDPac(content, controller.WithNames, 0)
	assert.Error(t, err)
}
