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

// ParsedFile is the generic result of parsing one Task/DPac/Text file
// body: the file's own name and load number, if declared, and the
// assembled FileBody a Builder can register.
type ParsedFile struct {
	Name          string
	HasName       bool
	LoadNumber    byte
	HasLoadNumber bool
	Body          *controller.FileBody
}

// ParseTask decodes a Task file: a "[Task]" section carrying the
// file's name and load number ("Ln"/"Tln", where the token "Proc"
// means load number 255) and a "[Local]"/"[Locals]" section declaring
// the task's local variables.
func ParseTask(content string, mode controller.LoadMode, contentHash uint64) (ParsedFile, error) {
	var pf ParsedFile
	var vars []controller.ParsedVariable
	var offset uint32
	sawLocals := false

	for _, section := range TokenizeExo(content) {
		switch {
		case strings.EqualFold(section.Name, "task"):
			for _, item := range section.Items {
				key, value, hasValue := splitOnceTrim(item.Line, '=')
				switch strings.ToLower(key) {
				case "name":
					if hasValue {
						pf.Name, pf.HasName = value, true
					}
				case "ln", "tln":
					if ln, ok := parseLoadNumberOrProc(value, hasValue); ok {
						pf.LoadNumber, pf.HasLoadNumber = ln, true
					}
				}
			}
		case strings.EqualFold(section.Name, "local"), strings.EqualFold(section.Name, "locals"):
			if sawLocals {
				return pf, &InvalidSyntaxError{Msg: "Local section defined more than once"}
			}
			sawLocals = true
			for _, item := range section.Items {
				kind, name, arrayLen, hasArrayLen, err := ParseVariableLine(item.Line)
				if err != nil {
					return pf, err
				}
				addVPacStyleVariable(&vars, &offset, kind, name, arrayLen, hasArrayLen, item.Comment, item.HasComment)
			}
		}
	}

	pf.Body = controller.NewFileBody(controller.Task, mode, contentHash, vars)
	return pf, nil
}

// parseLoadNumberOrProc parses a load-number field that may instead
// spell "Proc", which stands for 255. Only the first whitespace-
// separated token is considered, matching the grammar's tolerance for
// a trailing comment-like remainder on the same field.
func parseLoadNumberOrProc(value string, hasValue bool) (byte, bool) {
	if !hasValue {
		return 0, false
	}
	token := strings.Fields(value)
	if len(token) == 0 {
		return 0, false
	}
	if strings.EqualFold(token[0], "proc") {
		return 0xFF, true
	}
	v, err := strconv.ParseUint(token[0], 10, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}

// addVPacStyleVariable appends one (or, for an array declaration,
// arrayLen+1) variables at the running offset, advancing offset by
// the VPac offset size of kind each time. Used by Task parsing, which
// does not align to segments.
func addVPacStyleVariable(vars *[]controller.ParsedVariable, offset *uint32, kind controller.VariableKind, name string, arrayLen uint32, hasArrayLen bool, comment string, hasComment bool) {
	size := kind.OffsetSizeVPac()
	if !hasArrayLen {
		*vars = append(*vars, controller.ParsedVariable{Name: name, Kind: kind, Offset: *offset, Comment: comment, HasComment: hasComment})
		*offset += size
		return
	}
	for i := uint32(0); i <= arrayLen; i++ {
		*vars = append(*vars, controller.ParsedVariable{
			Name: fmt.Sprintf("%s(%d)", name, i), Kind: kind, Offset: *offset, Comment: comment, HasComment: hasComment,
		})
		*offset += size
	}
}
