package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExistsModHeaderAndModule(t *testing.T) {
	content := "MyController\n1\t2\nA building controller\n[Module]\nModuleLibrary = C:\\Exo\\MyLib\n"
	m := ParseExistsMod(content)
	assert.Equal(t, "MyController", m.Name)
	assert.Equal(t, byte(1), m.PLA)
	assert.Equal(t, byte(2), m.ELA)
	assert.Equal(t, "A building controller", m.Description)
	assert.True(t, m.HasModuleLibrary)
	assert.Equal(t, `C:\Exo\MyLib`, m.ModuleLibrary)
}

func TestParseExistsModWithoutModuleSection(t *testing.T) {
	content := "MyController\n1\t2\nA building controller\n"
	m := ParseExistsMod(content)
	assert.False(t, m.HasModuleLibrary)
}

func TestParseExistsModSingleAddressField(t *testing.T) {
	content := "MyController\n1\nA building controller\n"
	m := ParseExistsMod(content)
	assert.Equal(t, byte(1), m.PLA)
	assert.Equal(t, byte(0), m.ELA)
}
