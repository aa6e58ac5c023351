// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package controller

import "strings"

// Address is an EXOline network address: PLA (the device's own
// address) and ELA (the address it sits behind, zero at the network
// root).
type Address struct {
	PLA byte
	ELA byte
}

// Controller holds a fully loaded controller configuration: its
// address, password policy, and the Task/DPac/Text files discovered
// from its configuration directory. A Controller is immutable once
// built and safe to share across goroutines.
type Controller struct {
	tasks   fileSetInternal
	dpacs   fileSetInternal
	texts   fileSetInternal
	globals fileSetInternal

	// Address is the controller's EXOline network address.
	Address Address
	// RequirePassword reports whether the device demands a password
	// before accepting writes.
	RequirePassword bool
	// SystemPassword is the configured password, when known.
	SystemPassword string
}

// Tasks is the collection of every Task file.
func (c *Controller) Tasks() FileSet { return FileSet{sets: []fileSetInternal{c.tasks}} }

// DPacs is the collection of every DPac (VPac or BPac) file.
func (c *Controller) DPacs() FileSet { return FileSet{sets: []fileSetInternal{c.dpacs}} }

// Texts is the collection of every Text file.
func (c *Controller) Texts() FileSet { return FileSet{sets: []fileSetInternal{c.texts}} }

// Files is the collection of every file of any kind.
func (c *Controller) Files() FileSet {
	return FileSet{sets: []fileSetInternal{c.dpacs, c.tasks, c.texts}}
}

// Globals is the collection of DPac files flagged global at load time;
// these are searched by LookupVariable when no file prefix is given.
func (c *Controller) Globals() FileSet { return FileSet{sets: []fileSetInternal{c.globals}} }

// LookupVariable resolves a possibly dotted "File.Name" reference.
// With a dot, the file half is looked up across every Task, DPac and
// Text file and asked for the remaining name. Without a dot, or when the file
// half did not resolve, every global DPac is searched for the bare
// name. Matching is case-insensitive throughout.
func (c *Controller) LookupVariable(name string) (Variable, bool) {
	if fileName, varName, ok := strings.Cut(name, "."); ok {
		if file, ok := c.Files().Get(fileName); ok {
			if v, ok := file.Get(varName); ok {
				return v, true
			}
		}
	}

	for _, file := range c.Globals().Files() {
		if v, ok := file.Get(name); ok {
			return v, true
		}
	}
	return Variable{}, false
}

// Equal reports whether two controllers describe the same address,
// password policy, and set of files (compared by content hash, not by
// pointer identity).
func (c *Controller) Equal(other *Controller) bool {
	if c.Address != other.Address || c.RequirePassword != other.RequirePassword || c.SystemPassword != other.SystemPassword {
		return false
	}
	if len(c.tasks) != len(other.tasks) || len(c.dpacs) != len(other.dpacs) ||
		len(c.texts) != len(other.texts) || len(c.globals) != len(other.globals) {
		return false
	}
	for name := range c.globals {
		if _, ok := other.globals[name]; !ok {
			return false
		}
	}
	pairs := [][2]fileSetInternal{{c.tasks, other.tasks}, {c.dpacs, other.dpacs}, {c.texts, other.texts}}
	for _, pair := range pairs {
		for name, entry := range pair[0] {
			otherEntry, ok := pair[1][name]
			if !ok || entry.loadNumber != otherEntry.loadNumber || entry.body.hash != otherEntry.body.hash {
				return false
			}
		}
	}
	return true
}
