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

type bpacColumn struct {
	kind controller.VariableKind
	name string
}

// ParseBPac decodes a BPac DPac body: a "[BPac]" header carrying name
// and load number ("Ln"/"Vln"), and a "[Values]" section whose first
// item line is a column header ("...: K1 Name1 : K2 Name2 : ...") and
// whose subsequent lines are data rows, optionally tagged "#N" with
// the row's intended record number. Rows skipped by a gap in the
// numbering are synthesised as placeholder records so stored offsets
// stay dense. BPac cannot declare string columns.
func ParseBPac(sections []ExoSection, mode controller.LoadMode, contentHash uint64) (ParsedFile, error) {
	var pf ParsedFile
	var vars []controller.ParsedVariable
	var offset uint32
	sawValues := false

	for _, section := range sections {
		switch {
		case strings.EqualFold(section.Name, "bpac"):
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
				}
			}
		case strings.EqualFold(section.Name, "values"):
			if sawValues {
				return pf, &InvalidSyntaxError{Msg: "Values section defined more than once"}
			}
			sawValues = true

			var columns []bpacColumn
			var i, nr uint32
			for _, item := range section.Items {
				if columns == nil {
					var err error
					columns, err = parseBPacColumnHeaders(item.Line)
					if err != nil {
						return pf, err
					}
					continue
				}

				if rowNr, ok := parseRecordNumberSuffix(item.Line); ok && rowNr > nr {
					nr = rowNr
				}
				for i < nr {
					for _, col := range columns {
						addBPacVariable(&vars, &offset, col.kind, fmt.Sprintf("Records(%d).%s", i, col.name), "", false)
					}
					i++
				}
				for _, col := range columns {
					addBPacVariable(&vars, &offset, col.kind, fmt.Sprintf("Records(%d).%s", i, col.name), item.Comment, item.HasComment)
				}
				i++
			}
		}
	}

	pf.Body = controller.NewFileBody(controller.BPac, mode, contentHash, vars)
	return pf, nil
}

// parseBPacColumnHeaders decodes the "...: K1 Name1 : K2 Name2 : ..."
// header line: everything up to and including the first ':' is a
// free-form label and is discarded, as is the line's final character
// (the grammar's trailing column-list terminator).
func parseBPacColumnHeaders(line string) ([]bpacColumn, error) {
	start := 0
	if i := strings.IndexByte(line, ':'); i >= 0 {
		start = i + 1
	}
	end := len(line)
	if end > start {
		end--
	}
	body := trimASCII(line[start:end])

	var columns []bpacColumn
	for i, field := range strings.Split(body, ":") {
		field = trimASCII(field)
		if field == "" {
			return nil, &InvalidVariableError{Msg: "invalid variable syntax"}
		}
		kind, ok := controller.ParseVariableKind(field[0])
		if !ok {
			return nil, &InvalidVariableError{Msg: "invalid variable kind"}
		}
		if kind == controller.String {
			return nil, &InvalidVariableError{Msg: "BPac's can not contain strings"}
		}
		name := trimASCII(field[1:])
		if name == "" {
			name = fmt.Sprintf("Record(%d)", i)
		}
		columns = append(columns, bpacColumn{kind: kind, name: name})
	}
	return columns, nil
}

// parseRecordNumberSuffix extracts the "#N" record-number tag from a
// data row, if present.
func parseRecordNumberSuffix(line string) (uint32, bool) {
	i := strings.IndexByte(line, '#')
	if i < 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(trimASCII(line[i+1:]), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func addBPacVariable(vars *[]controller.ParsedVariable, offset *uint32, kind controller.VariableKind, name string, comment string, hasComment bool) {
	*vars = append(*vars, controller.ParsedVariable{Name: name, Kind: kind, Offset: *offset, Comment: comment, HasComment: hasComment})
	*offset += kind.OffsetSizeBPac()
}
