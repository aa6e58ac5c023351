package parse

import (
	"strconv"
	"testing"

	"github.com/exoline-go/exoline/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFile(t *testing.T, kind controller.FileKind, pf ParsedFile) controller.File {
	t.Helper()
	b := controller.NewBuilder()
	switch kind {
	case controller.Task:
		b.AddTask("f", pf.LoadNumber, pf.Body)
	case controller.VPac, controller.BPac:
		b.AddDPac("f", pf.LoadNumber, pf.Body, false)
	case controller.Text:
		b.AddText("f", pf.Body)
	}
	ctl := b.Build(controller.Address{}, false, "")
	switch kind {
	case controller.Task:
		f, ok := ctl.Tasks().Get("f")
		require.True(t, ok)
		return f
	case controller.VPac, controller.BPac:
		f, ok := ctl.DPacs().Get("f")
		require.True(t, ok)
		return f
	default:
		f, ok := ctl.Texts().Get("f")
		require.True(t, ok)
		return f
	}
}

func TestParseTaskNameAndLoadNumber(t *testing.T) {
	content := "{ task\nname = MyTask\nln = 3\n}\n"
	pf, err := ParseTask(content, controller.WithNames, 0)
	require.NoError(t, err)
	assert.Equal(t, "MyTask", pf.Name)
	assert.Equal(t, byte(3), pf.LoadNumber)
}

func TestParseTaskProcLoadNumber(t *testing.T) {
	content := "{ task\nname = MyTask\ntln = Proc\n}\n"
	pf, err := ParseTask(content, controller.WithNames, 0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), pf.LoadNumber)
}

func TestParseTaskLocals(t *testing.T) {
	content := "{ task\nname = MyTask\n}\n{ local\nH Foo\nI Bar\n}\n"
	pf, err := ParseTask(content, controller.WithNames, 0)
	require.NoError(t, err)
	f := buildFile(t, controller.Task, pf)
	require.Equal(t, 2, f.Len())

	foo, ok := f.Get("Foo")
	require.True(t, ok)
	assert.Equal(t, controller.Huge, foo.Kind())
	assert.Equal(t, uint32(0), foo.Offset())

	bar, ok := f.Get("Bar")
	require.True(t, ok)
	assert.Equal(t, controller.Integer, bar.Kind())
	assert.Equal(t, uint32(3), bar.Offset())
}

func TestParseTaskLocalsArray(t *testing.T) {
	content := "{ task\nname = MyTask\n}\n{ locals\nX Items(2)\n}\n"
	pf, err := ParseTask(content, controller.WithNames, 0)
	require.NoError(t, err)
	f := buildFile(t, controller.Task, pf)
	require.Equal(t, 3, f.Len())

	for i, off := range []uint32{0, 1, 2} {
		v, ok := f.Get(indexedName("Items", i))
		require.True(t, ok)
		assert.Equal(t, off, v.Offset())
	}
}

func TestParseTaskDuplicateLocalSectionErrors(t *testing.T) {
	content := "{ task\nname = MyTask\n}\n{ local\nH Foo\n}\n{ local\nH Bar\n}\n"
	_, err := ParseTask(content, controller.WithNames, 0)
	assert.Error(t, err)
}

func indexedName(name string, i int) string {
	return name + "(" + strconv.Itoa(i) + ")"
}
