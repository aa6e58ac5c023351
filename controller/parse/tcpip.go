// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import "strings"

// TcpIpSettings is the decoded content of a controller's
// TcpIpSettings.Exo file.
type TcpIpSettings struct {
	RequirePassword bool
	SystemPassword  string
	HasPassword     bool
}

// ParseTcpIpSettings decodes the "[TCP/IP Settings]" section of
// TcpIpSettings.Exo. The file is optional: an absent file is not a
// parse error, it is simply never called with content.
func ParseTcpIpSettings(content string) TcpIpSettings {
	var s TcpIpSettings

	for _, section := range TokenizeIni(content) {
		if !section.HasName || !strings.EqualFold(section.Name, "tcp/ip settings") {
			continue
		}
		for _, item := range section.Items {
			switch strings.ToLower(item.Key) {
			case "requirepassword":
				s.RequirePassword = item.HasValue && strings.EqualFold(item.Value, "yes")
			case "systempassword":
				if item.HasValue {
					s.SystemPassword, s.HasPassword = item.Value, true
				}
			}
		}
	}

	return s
}
