// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package loader

import "fmt"

// LoadError reports a failure to read one of a controller's two
// required configuration files (Exists.Mod, Load.Mdl). Individual
// Task/DPac/Text files are not held to the same standard: a missing or
// unparsable one is logged and silently skipped, since a controller
// program is routinely missing files a given LoadMode doesn't care
// about.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("exoline: loading %s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }
