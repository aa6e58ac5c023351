package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/exoline-go/exoline/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newFixtureControllerDir lays out a minimal controller program: one
// Task, one VPac, one Text, referenced from Load.Mdl, with an
// Exists.Mod address and a TcpIpSettings.Exo password policy.
func newFixtureControllerDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "Exists.Mod"), "MyController\n1\t2\nA building controller\n")
	writeFile(t, filepath.Join(dir, "Load.Mdl"), "{ dpac\nMyPac.Dpe/MS\n}\n{ task\nMyTask.Tsk\n}\n{ text\nMyText.Txt\n}\n")
	writeFile(t, filepath.Join(dir, "MyTask.Tsk"), "{ task\nname = MyTask\nln = 5\n}\n{ local\nH Foo\n}\n")
	writeFile(t, filepath.Join(dir, "MyPac.Dpe"), "{ vpac\nname = MyPac\nvln = 6\n}\n{ variables\nX Bar\n}\n")
	writeFile(t, filepath.Join(dir, "MyText.Txt"), "{ text\nname = MyText\n}\n{ strings\n$ Greeting\n}\n")
	writeFile(t, filepath.Join(dir, "TcpIpSettings.Exo"), "[TCP/IP Settings]\nRequirePassword = Yes\nSystemPassword = secret\n")

	return dir
}

func TestLoadAll(t *testing.T) {
	dir := newFixtureControllerDir(t)
	l := NewLoader(Config{Mode: controller.WithNames})

	ctl, err := l.LoadAll(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, controller.Address{PLA: 1, ELA: 2}, ctl.Address)
	assert.True(t, ctl.RequirePassword)
	assert.Equal(t, "secret", ctl.SystemPassword)

	task, ok := ctl.Tasks().Get("MyTask")
	require.True(t, ok)
	assert.Equal(t, byte(5), task.LoadNumber())
	foo, ok := task.Get("Foo")
	require.True(t, ok)
	assert.Equal(t, controller.Huge, foo.Kind())

	pac, ok := ctl.DPacs().Get("MyPac")
	require.True(t, ok)
	assert.Equal(t, byte(6), pac.LoadNumber())
	_, ok = ctl.Globals().Get("MyPac")
	assert.True(t, ok, "MyPac was flagged /MS and should be global")

	text, ok := ctl.Texts().Get("MyText")
	require.True(t, ok)
	assert.Equal(t, byte(127), text.LoadNumber())
}

func TestLoadGlobalsSkipsNonGlobalDPacs(t *testing.T) {
	dir := newFixtureControllerDir(t)
	// Add a second, non-global DPac that LoadGlobals must skip.
	writeFile(t, filepath.Join(dir, "Load.Mdl"), "{ dpac\nMyPac.Dpe/MS\nPrivatePac.Dpe\n}\n{ task\nMyTask.Tsk\n}\n{ text\nMyText.Txt\n}\n")
	writeFile(t, filepath.Join(dir, "PrivatePac.Dpe"), "{ vpac\nname = PrivatePac\nvln = 1\n}\n{ variables\nH Secret\n}\n")

	l := NewLoader(Config{Mode: controller.WithNames})
	ctl, err := l.LoadGlobals(context.Background(), dir)
	require.NoError(t, err)

	_, ok := ctl.DPacs().Get("MyPac")
	assert.True(t, ok)
	_, ok = ctl.DPacs().Get("PrivatePac")
	assert.False(t, ok, "LoadGlobals must not load a non-global, non-system DPac")
}

func TestLoadSelectiveCustomSelector(t *testing.T) {
	dir := newFixtureControllerDir(t)
	l := NewLoader(Config{Mode: controller.WithNames})

	ctl, err := l.LoadSelective(context.Background(), dir, func(filename string, global bool) bool {
		return filename == "MyTask.Tsk"
	})
	require.NoError(t, err)

	_, ok := ctl.Tasks().Get("MyTask")
	assert.True(t, ok)
	_, ok = ctl.DPacs().Get("MyPac")
	assert.False(t, ok)
	_, ok = ctl.Texts().Get("MyText")
	assert.False(t, ok)
}

func TestLoadAllMissingExistsModErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(Config{})
	_, err := l.LoadAll(context.Background(), dir)
	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadAllDropsFileWithNoLoadNumber(t *testing.T) {
	dir := newFixtureControllerDir(t)
	writeFile(t, filepath.Join(dir, "MyTask.Tsk"), "{ task\nname = MyTask\n}\n{ local\nH Foo\n}\n")

	l := NewLoader(Config{Mode: controller.WithNames})
	ctl, err := l.LoadAll(context.Background(), dir)
	require.NoError(t, err)

	_, ok := ctl.Tasks().Get("MyTask")
	assert.False(t, ok, "a task with no discoverable load number must be dropped, not defaulted")
}

func TestLoadSystemWithoutProdDirIsEmptyButAddressed(t *testing.T) {
	l := NewLoader(Config{})
	ctl := l.LoadSystem(context.Background())
	assert.Equal(t, controller.Address{PLA: 254, ELA: 254}, ctl.Address)
	assert.Equal(t, 0, ctl.DPacs().Len())
}

func TestLoadSystemLoadsFromProdDirSLib(t *testing.T) {
	prodDir := t.TempDir()
	slibDir := filepath.Join(prodDir, "SLib")
	require.NoError(t, os.MkdirAll(slibDir, 0o755))
	writeFile(t, filepath.Join(slibDir, "QSystem.Dpe"), "{ vpac\nname = QSystem\nvln = 9\n}\n{ variables\nH Version\n}\n")

	l := NewLoader(Config{ProdDir: prodDir, Mode: controller.WithNames})
	ctl := l.LoadSystem(context.Background())

	assert.Equal(t, controller.Address{PLA: 254, ELA: 254}, ctl.Address)
	pac, ok := ctl.DPacs().Get("QSystem")
	require.True(t, ok)
	assert.Equal(t, byte(9), pac.LoadNumber())
}

func TestResolveFilenamePrefixes(t *testing.T) {
	l := NewLoader(Config{ProdDir: "/prod"})

	slib := l.resolveFilename("SLib:QSystem.Dpe", "/ctl", "")
	assert.Equal(t, filepath.Clean("/prod/SLib/QSystem.Dpe"), slib)

	alib := l.resolveFilename("AL:Common.Dpe", "/ctl", "")
	assert.Equal(t, filepath.Clean("/prod/ALib/Common.Dpe"), alib)

	mlib := l.resolveFilename("ML:Other.Dpe", "/ctl", "/lib")
	assert.Equal(t, filepath.Clean("/lib/Other.Dpe"), mlib)

	proj := l.resolveFilename("Proj:Shared.Dpe", "/ctl/Dir", "")
	assert.Equal(t, filepath.Clean("/ctl/Shared.Dpe"), proj)

	prod := l.resolveFilename("Prod:Lib/Extra.Dpe", "/ctl", "")
	assert.Equal(t, filepath.Clean("/prod/Lib/Extra.Dpe"), prod)

	unresolved := l.resolveFilename("Plain.Tsk", "/ctl", "")
	assert.Equal(t, "Plain.Tsk", unresolved)
}

func TestResolveFilenameWithoutProdDirFallsBackToLiteral(t *testing.T) {
	l := NewLoader(Config{})
	assert.Equal(t, "SLib:QSystem.Dpe", l.resolveFilename("SLib:QSystem.Dpe", "/ctl", ""))
}

func TestIsUnder(t *testing.T) {
	assert.True(t, isUnder("/prod/SLib/QSystem.Dpe", "/prod/SLib"))
	assert.True(t, isUnder("/prod/SLib", "/prod/SLib"))
	assert.False(t, isUnder("/prod/ALib/Foo.Dpe", "/prod/SLib"))
}

func TestCacheLoadsSLibFileAtMostOnce(t *testing.T) {
	prodDir := t.TempDir()
	slibDir := filepath.Join(prodDir, "SLib")
	require.NoError(t, os.MkdirAll(slibDir, 0o755))
	writeFile(t, filepath.Join(slibDir, "QDig.Dpe"), "{ vpac\nname = QDig\nvln = 2\n}\n{ variables\nL Flag\n}\n")

	dir := newFixtureControllerDir(t)
	l := NewLoader(Config{ProdDir: prodDir, Mode: controller.WithNames})

	ctl1, err := l.LoadGlobals(context.Background(), dir)
	require.NoError(t, err)
	_, err = l.LoadGlobals(context.Background(), dir)
	require.NoError(t, err)

	l.cacheMu.Lock()
	cell, ok := l.cache[filepath.Join(slibDir, "QDig.Dpe")]
	l.cacheMu.Unlock()
	require.True(t, ok, "QDig.Dpe should have been cached after the first load")
	assert.True(t, cell.ok)

	pac, ok := ctl1.DPacs().Get("QDig")
	require.True(t, ok)
	assert.Equal(t, byte(2), pac.LoadNumber())
}
