// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package controller

import "github.com/cespare/xxhash/v2"

// ParsedVariable is a single variable as produced by a file parser,
// before it is packed into a FileBody's storage shape.
type ParsedVariable struct {
	Name       string
	Kind       VariableKind
	Offset     uint32
	Comment    string
	HasComment bool
}

// NewFileBody packs a parser's variable list into a FileBody under the
// given LoadMode and content hash. It is the only way outside this
// package to produce a FileBody, keeping the two storage shapes an
// implementation detail of the controller package.
func NewFileBody(kind FileKind, mode LoadMode, contentHash uint64, vars []ParsedVariable) *FileBody {
	vm := newVariableMap(mode)
	for _, v := range vars {
		vm.Insert(v.Name, v.Kind, v.Offset, v.Comment, v.HasComment)
	}
	return &FileBody{kind: kind, variables: vm, hash: contentHash}
}

// ContentHash hashes raw file content the same way the loader hashes
// parsed file bodies, so callers can precompute one before parsing.
func ContentHash(content []byte) uint64 { return xxhash.Sum64(content) }

// Builder assembles a Controller from files discovered by a loader.
// It is not safe for concurrent use; a loader should build each file
// set to completion before registering it.
type Builder struct {
	tasks   fileSetInternal
	dpacs   fileSetInternal
	texts   fileSetInternal
	globals fileSetInternal
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		tasks:   make(fileSetInternal),
		dpacs:   make(fileSetInternal),
		texts:   make(fileSetInternal),
		globals: make(fileSetInternal),
	}
}

// AddTask registers a Task file under the given name and load number.
func (b *Builder) AddTask(name string, loadNumber byte, body *FileBody) {
	b.tasks[foldKey(name)] = fileEntry{loadNumber: loadNumber, body: body}
}

// AddDPac registers a DPac file (VPac or BPac). When global is true
// the file is also registered for bare-name lookup.
func (b *Builder) AddDPac(name string, loadNumber byte, body *FileBody, global bool) {
	b.dpacs[foldKey(name)] = fileEntry{loadNumber: loadNumber, body: body}
	if global {
		b.globals[foldKey(name)] = fileEntry{loadNumber: loadNumber, body: body}
	}
}

// AddText registers a Text file. Per the format, text files always
// carry load number 127.
func (b *Builder) AddText(name string, body *FileBody) {
	b.texts[foldKey(name)] = fileEntry{loadNumber: 127, body: body}
}

// Build produces the finished, immutable Controller.
func (b *Builder) Build(address Address, requirePassword bool, systemPassword string) *Controller {
	return &Controller{
		tasks: b.tasks, dpacs: b.dpacs, texts: b.texts, globals: b.globals,
		Address: address, RequirePassword: requirePassword, SystemPassword: systemPassword,
	}
}
