// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"strings"

	"github.com/exoline-go/exoline/controller"
)

// ParseDPac decodes a DPac file body (VPac or BPac), dispatching on
// the kind named by the file's first section.
func ParseDPac(content string, mode controller.LoadMode, contentHash uint64) (ParsedFile, error) {
	sections := TokenizeExo(content)
	if len(sections) == 0 {
		return ParsedFile{}, &InvalidSyntaxError{Msg: "missing DPac header section"}
	}

	switch header := sections[0]; {
	case strings.EqualFold(header.Name, "vpac"), strings.EqualFold(header.Name, "qpac"):
		return ParseVPac(sections, mode, contentHash)
	case strings.EqualFold(header.Name, "bpac"):
		return ParseBPac(sections, mode, contentHash)
	default:
		return ParsedFile{}, &InvalidSyntaxError{Msg: "missing DPac header section"}
	}
}
