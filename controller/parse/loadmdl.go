// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"strconv"
	"strings"
)

// LoadMdlItem is one "filename[/LN=n][/MS]" reference from Load.Mdl.
type LoadMdlItem struct {
	Filename      string
	LoadNumber    byte
	HasLoadNumber bool
	Global        bool
}

// LoadMdl is the decoded content of a module library's Load.Mdl: the
// three lists of files the controller program is built from.
type LoadMdl struct {
	DPacs []LoadMdlItem
	Tasks []LoadMdlItem
	Texts []LoadMdlItem
}

// ParseLoadMdl decodes Load.Mdl: "[DPac]", "[Task]" and "[Text]"
// brace sections (the names are matched case-insensitively, in
// keeping with the rest of the grammar) each listing one reference
// per line.
func ParseLoadMdl(content string) LoadMdl {
	var m LoadMdl

	for _, section := range TokenizeExo(content) {
		var list *[]LoadMdlItem
		switch {
		case strings.EqualFold(section.Name, "dpac"):
			list = &m.DPacs
		case strings.EqualFold(section.Name, "task"):
			list = &m.Tasks
		case strings.EqualFold(section.Name, "text"):
			list = &m.Texts
		default:
			continue
		}

		for _, item := range section.Items {
			parts := strings.Split(item.Line, "/")
			filename := trimASCII(parts[0])
			if filename == "" {
				continue
			}

			loadItem := LoadMdlItem{Filename: filename}
			for _, flag := range parts[1:] {
				name, value, hasValue := splitOnceTrim(flag, '=')
				switch strings.ToUpper(name) {
				case "MS":
					loadItem.Global = true
				case "LN":
					if hasValue {
						if v, err := strconv.ParseUint(value, 10, 8); err == nil {
							loadItem.LoadNumber, loadItem.HasLoadNumber = byte(v), true
						}
					}
				}
			}

			*list = append(*list, loadItem)
		}
	}

	return m
}
