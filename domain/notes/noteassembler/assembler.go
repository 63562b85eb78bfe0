package noteassembler

import (
	"strings"
	"sync"

	"github.com/kaspanet/notestub/domain/notes/model"
	"github.com/kaspanet/notestub/domain/notes/model/externalapi"
	"github.com/kaspanet/notestub/domain/notes/utils/hashes"
	"github.com/pkg/errors"
)

// CacheCapacity is the number of compiled scripts an Assembler keeps.
const CacheCapacity = 64

// Assembler compiles note scripts against a fixed set of libraries.
// Up to CacheCapacity compiled scripts are cached by source text, and a random
// entry is evicted once the cache is full. An Assembler is safe for concurrent use.
type Assembler struct {
	libraries map[string]*Library

	cacheLock     sync.RWMutex
	cache         map[string]*externalapi.NoteScript
	cacheCapacity int
}

var _ model.Assembler = (*Assembler)(nil)

// New returns an Assembler that resolves imports against libraries
func New(libraries ...*Library) (*Assembler, error) {
	assembler := &Assembler{
		libraries:     make(map[string]*Library, len(libraries)),
		cache:         make(map[string]*externalapi.NoteScript, CacheCapacity+1),
		cacheCapacity: CacheCapacity,
	}
	for _, library := range libraries {
		if _, exists := assembler.libraries[library.Path]; exists {
			return nil, errors.Errorf("library %s was registered twice", library.Path)
		}
		assembler.libraries[library.Path] = library
	}
	return assembler, nil
}

var defaultAssembler struct {
	once      sync.Once
	assembler *Assembler
}

// Default returns the process-wide assembler, which knows the basic note scripts library
func Default() *Assembler {
	defaultAssembler.once.Do(func() {
		assembler, err := New(NewBasicNoteScriptsLibrary())
		if err != nil {
			panic(err)
		}
		defaultAssembler.assembler = assembler
	})
	return defaultAssembler.assembler
}

// Compile parses and compiles source. On failure the error is a *Diagnostic.
func (a *Assembler) Compile(source string) (*externalapi.NoteScript, error) {
	a.cacheLock.RLock()
	script, ok := a.cache[source]
	a.cacheLock.RUnlock()
	if ok {
		log.Tracef("Compiled script cache hit for script %s", script.Hash)
		return cloneScript(script), nil
	}

	script, err := a.compile(source)
	if err != nil {
		return nil, err
	}

	a.cacheLock.Lock()
	a.cache[source] = script
	if len(a.cache) > a.cacheCapacity {
		a.evictRandom()
	}
	a.cacheLock.Unlock()
	log.Debugf("Compiled script %s executing %s", script.Hash, strings.Join(script.Procedures, ", "))
	return cloneScript(script), nil
}

// evictRandom must be called with cacheLock held for writing
func (a *Assembler) evictRandom() {
	for source := range a.cache {
		delete(a.cache, source)
		return
	}
}

type parseState int

const (
	stateImports parseState = iota
	stateBody
	stateDone
)

func (a *Assembler) compile(source string) (*externalapi.NoteScript, error) {
	imports := make(map[string]*Library)
	var calls []*Procedure
	var names []string
	state := stateImports

	for i, rawLine := range strings.Split(source, "\n") {
		lineNumber := i + 1
		line := stripComment(rawLine)
		if line == "" {
			continue
		}

		switch state {
		case stateImports:
			if line == "begin" {
				state = stateBody
				continue
			}
			if !strings.HasPrefix(line, "use.") {
				return nil, diagnosticf(lineNumber, "expected an import or 'begin', found %q", line)
			}
			alias, library, err := a.parseImport(lineNumber, strings.TrimPrefix(line, "use."))
			if err != nil {
				return nil, err
			}
			if _, exists := imports[alias]; exists {
				return nil, diagnosticf(lineNumber, "module alias %q is imported twice", alias)
			}
			imports[alias] = library

		case stateBody:
			if line == "end" {
				state = stateDone
				continue
			}
			if !strings.HasPrefix(line, "exec.") {
				return nil, diagnosticf(lineNumber, "unsupported instruction %q", line)
			}
			target := strings.TrimPrefix(line, "exec.")
			separator := strings.LastIndex(target, "::")
			if separator < 0 {
				return nil, diagnosticf(lineNumber, "procedure reference %q has no module alias", target)
			}
			alias, name := target[:separator], target[separator+2:]
			library, ok := imports[alias]
			if !ok {
				return nil, diagnosticf(lineNumber, "module alias %q was not imported", alias)
			}
			procedure, ok := library.Procedure(name)
			if !ok {
				return nil, diagnosticf(lineNumber, "procedure %s is not exported by %s", name, library.Path)
			}
			calls = append(calls, procedure)
			names = append(names, library.Path+"::"+procedure.Name)

		case stateDone:
			return nil, diagnosticf(lineNumber, "unexpected %q after the end of the program", line)
		}
	}

	switch state {
	case stateImports:
		return nil, diagnosticf(0, "program has no 'begin' block")
	case stateBody:
		return nil, diagnosticf(0, "program 'begin' block is not terminated by 'end'")
	}
	if len(calls) == 0 {
		return nil, diagnosticf(0, "program body is empty")
	}

	writer := hashes.NewNoteScriptHashWriter()
	for _, procedure := range calls {
		for _, element := range procedure.Digest {
			writer.WriteUint64(element.Uint64())
		}
	}
	return &externalapi.NoteScript{
		Hash:       externalapi.DigestFromHash(writer.Finalize()),
		Procedures: names,
	}, nil
}

func (a *Assembler) parseImport(lineNumber int, spec string) (string, *Library, error) {
	path := spec
	alias := ""
	if arrow := strings.Index(spec, "->"); arrow >= 0 {
		path, alias = spec[:arrow], spec[arrow+2:]
		if !isValidIdentifier(alias) {
			return "", nil, diagnosticf(lineNumber, "invalid module alias %q", alias)
		}
	}
	if !isValidPath(path) {
		return "", nil, diagnosticf(lineNumber, "invalid module path %q", path)
	}
	library, ok := a.libraries[path]
	if !ok {
		return "", nil, diagnosticf(lineNumber, "unknown module %s", path)
	}
	if alias == "" {
		alias = path
		if separator := strings.LastIndex(path, "::"); separator >= 0 {
			alias = path[separator+2:]
		}
	}
	return alias, library, nil
}

func cloneScript(script *externalapi.NoteScript) *externalapi.NoteScript {
	procedures := make([]string, len(script.Procedures))
	copy(procedures, script.Procedures)
	return &externalapi.NoteScript{Hash: script.Hash, Procedures: procedures}
}
