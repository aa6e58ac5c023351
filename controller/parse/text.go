// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strings"

	"github.com/exoline-go/exoline/controller"
)

// ParseText decodes a Text file: a "[Text]" section carrying the
// file's name, and a "[Strings]" section listing one entry per
// offset, the first at offset 1. Text load numbers are always forced
// to 127 by the caller, not discovered here.
func ParseText(content string, mode controller.LoadMode, contentHash uint64) (ParsedFile, error) {
	var pf ParsedFile
	var vars []controller.ParsedVariable
	offset := uint32(1)
	sawStrings := false

	for _, section := range TokenizeExo(content) {
		switch {
		case strings.EqualFold(section.Name, "text"):
			for _, item := range section.Items {
				key, value, hasValue := splitOnceTrim(item.Line, '=')
				if strings.EqualFold(key, "name") && hasValue {
					pf.Name, pf.HasName = value, true
				}
			}
		case strings.EqualFold(section.Name, "strings"):
			if sawStrings {
				return pf, &InvalidSyntaxError{Msg: "Strings section defined more than once"}
			}
			sawStrings = true
			for _, item := range section.Items {
				kind, name, arrayLen, hasArrayLen, err := ParseVariableLine(item.Line)
				if err != nil {
					return pf, err
				}
				if !hasArrayLen {
					vars = append(vars, controller.ParsedVariable{Name: name, Kind: kind, Offset: offset, Comment: item.Comment, HasComment: item.HasComment})
					offset++
					continue
				}
				for i := uint32(0); i <= arrayLen; i++ {
					vars = append(vars, controller.ParsedVariable{
						Name: fmt.Sprintf("%s(%d)", name, i), Kind: kind, Offset: offset, Comment: item.Comment, HasComment: item.HasComment,
					})
					offset++
				}
			}
		}
	}

	pf.Body = controller.NewFileBody(controller.Text, mode, contentHash, vars)
	return pf, nil
}
