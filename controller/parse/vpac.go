// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exoline-go/exoline/controller"
)

// ParseVPac decodes a VPac (or QPac) DPac body: a "[VPac]"/"[QPac]"
// header carrying name, load number ("Ln"/"Vln"), page count
// ("Pages", default 1) and segment-alignment policy
// ("AlignWithSegments", default yes), and a single "[Variables]"
// section declaring the pack's contents.
func ParseVPac(sections []ExoSection, mode controller.LoadMode, contentHash uint64) (ParsedFile, error) {
	var pf ParsedFile
	var vars []controller.ParsedVariable
	var offset uint32
	pages := uint32(1)
	alignWithSegments := true
	sawVariables := false

	for _, section := range sections {
		switch {
		case strings.EqualFold(section.Name, "vpac"), strings.EqualFold(section.Name, "qpac"):
			for _, item := range section.Items {
				key, value, hasValue := splitOnceTrim(item.Line, '=')
				switch strings.ToLower(key) {
				case "name":
					if hasValue {
						pf.Name, pf.HasName = value, true
					}
				case "ln", "vln":
					if hasValue {
						if v, err := strconv.ParseUint(value, 10, 8); err == nil {
							pf.LoadNumber, pf.HasLoadNumber = byte(v), true
						}
					}
				case "pages":
					pages = 1
					if hasValue {
						if v, err := strconv.ParseUint(value, 10, 32); err == nil && v > 0 {
							pages = uint32(v)
						}
					}
				case "alignwithsegments":
					alignWithSegments = !hasValue || strings.EqualFold(value, "yes")
				}
			}
		case strings.EqualFold(section.Name, "variables"):
			if sawVariables {
				return pf, &InvalidSyntaxError{Msg: "Variables section defined more than once"}
			}
			sawVariables = true
			for _, item := range section.Items {
				kind, name, arrayLen, hasArrayLen, err := ParseVariableLine(item.Line)
				if err != nil {
					return pf, err
				}
				addVPacVariable(&vars, &offset, kind, name, arrayLen, hasArrayLen, item.Comment, item.HasComment, pages, alignWithSegments)
			}
		}
	}

	pf.Body = controller.NewFileBody(controller.VPac, mode, contentHash, vars)
	return pf, nil
}

// addVPacVariable places one variable (or array of them) at the
// running offset under VPac's segment-alignment rules, emitting a
// "Pages(p).Name" alias for every page beyond the first.
func addVPacVariable(vars *[]controller.ParsedVariable, offset *uint32, kind controller.VariableKind, name string, arrayLen uint32, hasArrayLen bool, comment string, hasComment bool, pages uint32, alignWithSegments bool) {
	size := kind.OffsetSizeVPac()
	pageSize := uint32(kind.PageSizeVPac())

	if alignWithSegments && kind != controller.String {
		startSegment := *offset / 60
		endSegment := (*offset + pageSize - 1) / 60
		if startSegment != endSegment {
			*offset = (startSegment + 1) * 60
		}
	}

	if !hasArrayLen {
		*vars = append(*vars, controller.ParsedVariable{Name: name, Kind: kind, Offset: *offset, Comment: comment, HasComment: hasComment})
		for page := uint32(1); page < pages; page++ {
			*vars = append(*vars, controller.ParsedVariable{
				Name: fmt.Sprintf("Pages(%d).%s", page, name), Kind: kind, Offset: *offset + page*60, Comment: comment, HasComment: hasComment,
			})
		}
		*offset += size
		return
	}

	// On top of the boundary bump above. The "% 3" matches observed
	// loader behavior; it is not derivable from the layout rules.
	if alignWithSegments {
		offsetInSegment := *offset % 60
		if offsetInSegment+size+size*arrayLen > 60 {
			*offset += (size - offsetInSegment%size) % 3
		}
	}

	for i := uint32(0); i <= arrayLen; i++ {
		varName := fmt.Sprintf("%s(%d)", name, i)
		*vars = append(*vars, controller.ParsedVariable{Name: varName, Kind: kind, Offset: *offset, Comment: comment, HasComment: hasComment})
		for page := uint32(1); page < pages; page++ {
			*vars = append(*vars, controller.ParsedVariable{
				Name: fmt.Sprintf("Pages(%d).%s(%d)", page, name, i), Kind: kind, Offset: *offset + page*60, Comment: comment, HasComment: hasComment,
			})
		}
		*offset += size
	}
}
