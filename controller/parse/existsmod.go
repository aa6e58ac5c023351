// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"strconv"
	"strings"
)

// ExistsMod is the decoded content of a controller's Exists.Mod file:
// its network address and an optional pointer to the module library
// directory to load Load.Mdl and its referenced files from.
type ExistsMod struct {
	Name             string
	PLA              byte
	ELA              byte
	Description      string
	HasDescription   bool
	ModuleLibrary    string
	HasModuleLibrary bool
}

// ParseExistsMod decodes Exists.Mod: an unnamed header of three
// positional lines (name, "PLA\tELA", description) followed by a
// "[Module]" section carrying an optional ModuleLibrary pointer.
func ParseExistsMod(content string) ExistsMod {
	var m ExistsMod

	for _, section := range TokenizeIni(content) {
		if !section.HasName {
			for i, item := range section.Items {
				switch i {
				case 0:
					m.Name = item.Key
				case 1:
					pla, ela, hasELA := splitOnceTrim(item.Key, '\t')
					if v, err := strconv.ParseUint(pla, 10, 8); err == nil {
						m.PLA = byte(v)
					}
					if hasELA {
						if v, err := strconv.ParseUint(ela, 10, 8); err == nil {
							m.ELA = byte(v)
						}
					}
				case 2:
					m.Description, m.HasDescription = item.Key, true
				}
			}
			continue
		}

		if !strings.EqualFold(section.Name, "module") {
			continue
		}
		for _, item := range section.Items {
			if strings.EqualFold(item.Key, "modulelibrary") && item.HasValue {
				m.ModuleLibrary, m.HasModuleLibrary = item.Value, true
			}
		}
	}

	return m
}
