// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package loader resolves a controller's configuration directory into
// a *controller.Controller: parsing Exists.Mod and Load.Mdl, following
// the module library's file references, and assembling every
// Task/DPac/Text file it finds into the in-memory model the client
// façade addresses variables against.
package loader

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/exoline-go/exoline/clog"
	"github.com/exoline-go/exoline/controller"
	"github.com/exoline-go/exoline/controller/parse"
)

// qSystemDPacs are the seven system DPac files every controller program
// implicitly carries, appended to Load.Mdl's own dpac list.
var qSystemDPacs = [...]string{
	"SLib:QSystem.Dpe",
	"SLib:QCom.Dpe",
	"SLib:QDisp.Dpe",
	"SLib:QServices.Dpe",
	"SLib:QDig.Dpe",
	"SLib:QAnaIn.Dpe",
	"SLib:QAnaOut.Dpe",
}

// Config configures a Loader.
type Config struct {
	// ProdDir is the product (system library) directory: AL:/ALib:,
	// SL:/SLib: and Prod: references resolve under it, and it is where
	// LoadSystem and the system DPacs in every other load look for
	// SLib. Loading still works without it as long as nothing
	// references those prefixes, but LoadSystem then loads nothing.
	ProdDir string
	// Mode controls how much name/comment detail loaded variables
	// retain. The zero value is controller.HashedNames.
	Mode controller.LoadMode
}

// Loader loads controller configurations from disk. DPac files that
// resolve under ProdDir/SLib are parsed at most once per Loader
// instance and shared across every Load* call, since they are the
// system-wide shared library files referenced by every controller.
// A Loader is safe for concurrent use.
type Loader struct {
	clog.Clog

	cfg Config

	cacheMu sync.Mutex
	cache   map[string]*cacheCell
}

// NewLoader returns a Loader with the given configuration.
func NewLoader(cfg Config) *Loader {
	return &Loader{cfg: cfg}
}

// LoadAll loads every Task, DPac and Text file the controller program
// references. This can use a lot of memory for a large program.
func (l *Loader) LoadAll(ctx context.Context, controllerDir string) (*controller.Controller, error) {
	return l.LoadSelective(ctx, controllerDir, func(string, bool) bool { return true })
}

// LoadGlobals loads only DPac files flagged global in Load.Mdl, plus
// the seven system DPacs — usually a small fraction of LoadAll's work.
func (l *Loader) LoadGlobals(ctx context.Context, controllerDir string) (*controller.Controller, error) {
	return l.LoadSelective(ctx, controllerDir, func(filename string, global bool) bool {
		if global {
			return true
		}
		return isQSystemDPac(filename)
	})
}

// LoadSelective loads the files selector accepts. selector is called
// once per Load.Mdl entry (including the seven appended system DPacs)
// with the entry's filename and its "MS" (global) flag.
func (l *Loader) LoadSelective(ctx context.Context, controllerDir string, selector func(filename string, global bool) bool) (*controller.Controller, error) {
	existsModPath := filepath.Join(controllerDir, "Exists.Mod")
	existsModContent, err := readFileCP850(existsModPath)
	if err != nil {
		return nil, &LoadError{Path: existsModPath, Err: err}
	}
	existsMod := parse.ParseExistsMod(existsModContent)

	moduleLibraryDir := controllerDir
	if existsMod.HasModuleLibrary {
		resolved := l.resolveFilename(existsMod.ModuleLibrary, controllerDir, "")
		moduleLibraryDir = joinControllerPath(controllerDir, resolved)
	}

	loadMdlPath := filepath.Join(moduleLibraryDir, "Load.Mdl")
	loadMdlContent, err := readFileCP850(loadMdlPath)
	if err != nil {
		return nil, &LoadError{Path: loadMdlPath, Err: err}
	}
	loadMdl := parse.ParseLoadMdl(loadMdlContent)
	for _, filename := range qSystemDPacs {
		loadMdl.DPacs = append(loadMdl.DPacs, parse.LoadMdlItem{Filename: filename})
	}

	results := l.loadAllFiles(ctx, controllerDir, moduleLibraryDir, loadMdl, selector)

	builder := controller.NewBuilder()
	for _, r := range results {
		if !r.ok {
			continue
		}
		name := fileStem(r.path)
		switch r.kind {
		case kindTask:
			if loadNumber, ok := resolveLoadNumber(r.item, r.file); ok {
				builder.AddTask(name, loadNumber, r.file.Body)
			}
		case kindDPac:
			if loadNumber, ok := resolveLoadNumber(r.item, r.file); ok {
				builder.AddDPac(name, loadNumber, r.file.Body, r.item.Global)
			}
		case kindText:
			builder.AddText(name, r.file.Body)
		}
	}

	tcpIPPath := filepath.Join(controllerDir, "TcpIpSettings.Exo")
	var tcpIP parse.TcpIpSettings
	if content, err := readFileCP850(tcpIPPath); err == nil {
		tcpIP = parse.ParseTcpIpSettings(content)
	} else {
		l.Debug("exoline: loader: %s not found, leaving password policy unset: %v", tcpIPPath, err)
	}

	address := controller.Address{PLA: existsMod.PLA, ELA: existsMod.ELA}
	return builder.Build(address, tcpIP.RequirePassword, tcpIP.SystemPassword), nil
}

// LoadSystem loads only the seven system DPacs, addressing no
// controller directory at all. It never fails: an unset ProdDir or a
// missing file simply leaves the corresponding DPac absent. The
// returned controller's address is the fixed (254, 254), distinguishing
// "never resolved" from a real device's (0, 0).
func (l *Loader) LoadSystem(ctx context.Context) *controller.Controller {
	loadMdl := parse.LoadMdl{}
	for _, filename := range qSystemDPacs {
		loadMdl.DPacs = append(loadMdl.DPacs, parse.LoadMdlItem{Filename: filename})
	}

	results := l.loadAllFiles(ctx, "", "", loadMdl, func(string, bool) bool { return true })

	builder := controller.NewBuilder()
	for _, r := range results {
		if !r.ok || !r.file.HasLoadNumber {
			continue
		}
		builder.AddDPac(fileStem(r.path), r.file.LoadNumber, r.file.Body, false)
	}

	return builder.Build(controller.Address{PLA: 254, ELA: 254}, false, "")
}

type loadFileKind int

const (
	kindTask loadFileKind = iota
	kindDPac
	kindText
)

type loadJob struct {
	kind loadFileKind
	item parse.LoadMdlItem
}

type loadResult struct {
	kind loadFileKind
	item parse.LoadMdlItem
	path string
	file parse.ParsedFile
	ok   bool
}

// loadAllFiles resolves and parses, in parallel, every Load.Mdl entry
// selector accepts. A per-file failure is logged and the file is
// dropped from the result set rather than failing the whole load.
func (l *Loader) loadAllFiles(ctx context.Context, controllerDir, moduleLibraryDir string, loadMdl parse.LoadMdl, selector func(filename string, global bool) bool) []loadResult {
	var jobs []loadJob
	for _, item := range loadMdl.Tasks {
		jobs = append(jobs, loadJob{kindTask, item})
	}
	for _, item := range loadMdl.DPacs {
		jobs = append(jobs, loadJob{kindDPac, item})
	}
	for _, item := range loadMdl.Texts {
		jobs = append(jobs, loadJob{kindText, item})
	}

	slibDir := l.slibDir()
	results := make([]loadResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		if !selector(job.item.Filename, job.item.Global) {
			continue
		}
		g.Go(func() error {
			resolved := l.resolveFilename(job.item.Filename, controllerDir, moduleLibraryDir)
			path := joinControllerPath(controllerDir, resolved)
			cacheable := slibDir != "" && isUnder(path, slibDir)
			file, ok := l.loadFile(gctx, job.kind, path, cacheable)
			results[i] = loadResult{kind: job.kind, item: job.item, path: path, file: file, ok: ok}
			return nil
		})
	}
	_ = g.Wait() // per-file errors are logged inside loadFileInner, never fatal to the whole load

	return results
}

// resolveLoadNumber picks a Task/DPac's effective load number: the
// Load.Mdl entry's explicit "LN=n" wins over the number discovered in
// the file body itself. A file with neither is silently dropped.
func resolveLoadNumber(item parse.LoadMdlItem, file parse.ParsedFile) (byte, bool) {
	if item.HasLoadNumber {
		return item.LoadNumber, true
	}
	if file.HasLoadNumber {
		return file.LoadNumber, true
	}
	return 0, false
}

func isQSystemDPac(filename string) bool {
	for _, name := range qSystemDPacs {
		if filename == name {
			return true
		}
	}
	return false
}

// fileStem is a resolved file path's base name with its extension
// stripped, the name a Task/DPac/Text is registered under.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// joinControllerPath joins path under controllerDir, unless path is
// already absolute (as every AL:/SL:/ML:/Proj:/Prod:-prefixed
// reference resolves to), in which case it is used as-is.
func joinControllerPath(controllerDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(controllerDir, path)
}

// resolveFilename expands a controller.dpac-style reference's prefix
// ("AL:"/"ALib:", "SL:"/"SLib:", "ML:"/"MLib:", "Proj:", "Prod:") to an
// absolute path. A reference without a recognised prefix (or without a
// colon at all) is returned unchanged, to be joined against
// controllerDir by the caller. A prefix whose base directory is
// unavailable (ProdDir unset for AL/SL/Prod) also falls back to the
// literal reference, which will simply fail to open as a file.
func (l *Loader) resolveFilename(filename, controllerDir, moduleLibraryDir string) string {
	prefix, rest, hasPrefix := strings.Cut(filename, ":")
	if !hasPrefix {
		return filename
	}

	switch strings.ToLower(prefix) {
	case "al", "alib":
		if l.cfg.ProdDir == "" {
			return filename
		}
		return absOrFallback(filepath.Join(l.cfg.ProdDir, "ALib", rest), filename)
	case "sl", "slib":
		if l.cfg.ProdDir == "" {
			return filename
		}
		return absOrFallback(filepath.Join(l.cfg.ProdDir, "SLib", rest), filename)
	case "ml", "mlib":
		base := moduleLibraryDir
		if base == "" {
			base = controllerDir
		}
		return absOrFallback(filepath.Join(base, rest), filename)
	case "proj":
		return absOrFallback(filepath.Join(controllerDir, "..", rest), filename)
	case "prod":
		if l.cfg.ProdDir == "" {
			return filename
		}
		return absOrFallback(filepath.Join(l.cfg.ProdDir, rest), filename)
	default:
		return filename
	}
}

func absOrFallback(path, fallback string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fallback
	}
	return abs
}

func (l *Loader) slibDir() string {
	if l.cfg.ProdDir == "" {
		return ""
	}
	dir, err := filepath.Abs(filepath.Join(l.cfg.ProdDir, "SLib"))
	if err != nil {
		return ""
	}
	return dir
}

func isUnder(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// cacheCell holds the at-most-once parse of one SLib-rooted file,
// shared across every Load* call a Loader instance serves.
type cacheCell struct {
	once sync.Once
	file parse.ParsedFile
	ok   bool
}

func (l *Loader) cellFor(path string) *cacheCell {
	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()
	if l.cache == nil {
		l.cache = make(map[string]*cacheCell)
	}
	cell, ok := l.cache[path]
	if !ok {
		cell = &cacheCell{}
		l.cache[path] = cell
	}
	return cell
}

// loadFile reads and parses the file at path. When cacheable is set,
// the result is computed at most once per Loader instance and shared
// with every other caller of the same path.
func (l *Loader) loadFile(ctx context.Context, kind loadFileKind, path string, cacheable bool) (parse.ParsedFile, bool) {
	if !cacheable {
		return l.loadFileInner(ctx, kind, path)
	}
	cell := l.cellFor(path)
	cell.once.Do(func() {
		cell.file, cell.ok = l.loadFileInner(ctx, kind, path)
	})
	return cell.file, cell.ok
}

func (l *Loader) loadFileInner(ctx context.Context, kind loadFileKind, path string) (parse.ParsedFile, bool) {
	if err := ctx.Err(); err != nil {
		return parse.ParsedFile{}, false
	}

	content, err := readFileCP850(path)
	if err != nil {
		l.Warn("exoline: loader: reading %s: %v", path, err)
		return parse.ParsedFile{}, false
	}

	hash := controller.ContentHash([]byte(content))
	var file parse.ParsedFile
	switch kind {
	case kindTask:
		file, err = parse.ParseTask(content, l.cfg.Mode, hash)
	case kindDPac:
		file, err = parse.ParseDPac(content, l.cfg.Mode, hash)
	case kindText:
		file, err = parse.ParseText(content, l.cfg.Mode, hash)
	}
	if err != nil {
		l.Warn("exoline: loader: parsing %s: %v", path, err)
		return parse.ParsedFile{}, false
	}
	return file, true
}
