// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package controller

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// LoadMode selects how much name information a loaded Controller
// retains, trading memory footprint for introspection.
type LoadMode int

const (
	// HashedNames keeps only a hash of each variable's name. Lowest
	// memory footprint; Name/FullName/Comment are never present and
	// iteration yields anonymous variables.
	HashedNames LoadMode = iota
	// WithNames keeps the original, case-preserved variable names.
	WithNames
	// WithNamesAndComments keeps names and any declared comment text.
	WithNamesAndComments
)

// foldKey is the case-insensitive comparison key used throughout the
// package; names are matched case-insensitively everywhere.
func foldKey(s string) string { return strings.ToLower(s) }

func hashName(name string) uint64 { return xxhash.Sum64String(foldKey(name)) }

// verboseEntry is stored when LoadMode preserves names.
type verboseEntry struct {
	name       string // original case
	kind       VariableKind
	offset     uint32
	comment    string
	hasComment bool
}

// standardEntry is stored under HashedNames: kind and offset as two
// separate fields (they are not packed into one word), no name
// retained.
type standardEntry struct {
	kind   VariableKind
	offset uint32
}

// variableMap is the tagged-union storage described for Files: either
// an insertion-order-friendly, name-preserving map, or a hash-keyed,
// name-discarding one. Exactly one of the two map fields is non-nil.
type variableMap struct {
	mode     LoadMode
	verbose  map[string]verboseEntry  // keyed by foldKey(name)
	standard map[uint64]standardEntry // keyed by hashName(name)
	order    []string                 // insertion order of fold keys, verbose mode only
}

func newVariableMap(mode LoadMode) *variableMap {
	vm := &variableMap{mode: mode}
	switch mode {
	case WithNames, WithNamesAndComments:
		vm.verbose = make(map[string]verboseEntry)
	default:
		vm.standard = make(map[uint64]standardEntry)
	}
	return vm
}

func (vm *variableMap) Len() int {
	if vm.verbose != nil {
		return len(vm.verbose)
	}
	return len(vm.standard)
}

func (vm *variableMap) IsEmpty() bool { return vm.Len() == 0 }

func (vm *variableMap) Insert(name string, kind VariableKind, offset uint32, comment string, hasComment bool) {
	if vm.verbose != nil {
		key := foldKey(name)
		if _, exists := vm.verbose[key]; !exists {
			vm.order = append(vm.order, key)
		}
		if vm.mode != WithNamesAndComments {
			comment, hasComment = "", false
		}
		vm.verbose[key] = verboseEntry{name: name, kind: kind, offset: offset, comment: comment, hasComment: hasComment}
		return
	}
	vm.standard[hashName(name)] = standardEntry{kind: kind, offset: offset}
}

// lookupResult is what the File layer needs to build a Variable.
type lookupResult struct {
	kind       VariableKind
	offset     uint32
	name       string
	hasName    bool
	comment    string
	hasComment bool
}

func (vm *variableMap) Get(name string) (lookupResult, bool) {
	if vm.verbose != nil {
		e, ok := vm.verbose[foldKey(name)]
		if !ok {
			return lookupResult{}, false
		}
		return lookupResult{kind: e.kind, offset: e.offset, name: e.name, hasName: true, comment: e.comment, hasComment: e.hasComment}, true
	}
	e, ok := vm.standard[hashName(name)]
	if !ok {
		return lookupResult{}, false
	}
	return lookupResult{kind: e.kind, offset: e.offset}, true
}

func (vm *variableMap) Iter() []lookupResult {
	out := make([]lookupResult, 0, vm.Len())
	if vm.verbose != nil {
		for _, key := range vm.order {
			e := vm.verbose[key]
			out = append(out, lookupResult{kind: e.kind, offset: e.offset, name: e.name, hasName: true, comment: e.comment, hasComment: e.hasComment})
		}
		return out
	}
	for _, e := range vm.standard {
		out = append(out, lookupResult{kind: e.kind, offset: e.offset})
	}
	return out
}

// FileBody is the shared, immutable payload behind every File and
// Variable produced from it. Files borrow a pointer to one; Variables
// carry the same pointer back, giving the two types a cyclic-looking
// relationship with a single real owner: the Controller that built it.
type FileBody struct {
	kind      FileKind
	variables *variableMap
	hash      uint64
}

// File is a named, load-numbered view over a FileBody.
type File struct {
	body       *FileBody
	fileKey    string
	loadNumber byte
}

// Get retrieves a variable by name. Matching is case-insensitive.
func (f File) Get(name string) (Variable, bool) {
	r, ok := f.body.variables.Get(name)
	if !ok {
		return Variable{}, false
	}
	return Variable{
		body: f.body, fileName: f.fileKey, kind: r.kind, offset: r.offset,
		comment: r.comment, hasComment: r.hasComment, name: r.name, hasName: r.hasName,
		loadNumber: f.loadNumber,
	}, true
}

// Len returns the number of variables in the file.
func (f File) Len() int { return f.body.variables.Len() }

// IsEmpty reports whether the file has no variables.
func (f File) IsEmpty() bool { return f.body.variables.IsEmpty() }

// Name is the file's name as registered in the controller.
func (f File) Name() string { return f.fileKey }

// Kind is the file's FileKind.
func (f File) Kind() FileKind { return f.body.kind }

// LoadNumber is the file's load number.
func (f File) LoadNumber() byte { return f.loadNumber }

// Variables returns every variable defined in the file. Order is
// insertion order under a name-preserving LoadMode, unspecified under
// HashedNames.
func (f File) Variables() []Variable {
	rs := f.body.variables.Iter()
	out := make([]Variable, 0, len(rs))
	for _, r := range rs {
		out = append(out, Variable{
			body: f.body, fileName: f.fileKey, kind: r.kind, offset: r.offset,
			comment: r.comment, hasComment: r.hasComment, name: r.name, hasName: r.hasName,
			loadNumber: f.loadNumber,
		})
	}
	return out
}

// fileEntry pairs a file body with the load number it was registered
// under, as stored inside a file set.
type fileEntry struct {
	loadNumber byte
	body       *FileBody
}

// fileSetInternal is a name-keyed collection of files, shared (read
// only) between a Controller and any FileSet views over it.
type fileSetInternal map[string]fileEntry

// FileSet is a read-only collection of files, possibly spanning
// several underlying maps (e.g. Controller.Files combines tasks,
// dpacs and texts).
type FileSet struct {
	sets []fileSetInternal
}

// Get retrieves a file by name across every map in the set.
func (fs FileSet) Get(name string) (File, bool) {
	key := foldKey(name)
	for _, set := range fs.sets {
		if e, ok := set[key]; ok {
			return File{body: e.body, fileKey: name, loadNumber: e.loadNumber}, true
		}
	}
	return File{}, false
}

// Len returns the total number of files across every map in the set.
func (fs FileSet) Len() int {
	n := 0
	for _, set := range fs.sets {
		n += len(set)
	}
	return n
}

// IsEmpty reports whether the set has no files.
func (fs FileSet) IsEmpty() bool { return fs.Len() == 0 }

// Files returns every file in the set.
func (fs FileSet) Files() []File {
	out := make([]File, 0, fs.Len())
	for _, set := range fs.sets {
		for key, e := range set {
			out = append(out, File{body: e.body, fileKey: key, loadNumber: e.loadNumber})
		}
	}
	return out
}
