package terminology

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/segterm/terminology/dicts"
	"github.com/segterm/terminology/jsontree"
	"github.com/segterm/terminology/logger"
)

// ErrUnknownContext is returned when a named context is not loaded.
var ErrUnknownContext = errors.New("unknown context")

// Registry owns the loaded terminology and anatomic context dictionaries.
//
// Contexts are keyed by the name found in (or supplied for) their source
// file; loading under an existing name replaces the prior tree as a whole.
// The registry is designed for sequential access from one owner. It does no
// internal locking; callers needing multi-threaded access must serialize
// around the registry as a whole.
type Registry struct {
	terminologies    map[string]*Context
	terminologyNames []string

	anatomicContexts map[string]*AnatomicContext
	anatomicNames    []string

	userContextsPath    string
	searchCaseSensitive bool
	loadDefaults        bool
	log                 *logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithUserContextsPath sets a directory scanned for additional context files
// at construction time. Unreadable files in the directory are skipped.
func WithUserContextsPath(path string) Option {
	return func(r *Registry) {
		r.userContextsPath = path
	}
}

// WithCaseSensitiveSearch makes the Find... substring searches case
// sensitive. The default is case insensitive.
func WithCaseSensitiveSearch(enable bool) Option {
	return func(r *Registry) {
		r.searchCaseSensitive = enable
	}
}

// WithoutDefaultContexts disables loading of the bundled dictionaries.
func WithoutDefaultContexts() Option {
	return func(r *Registry) {
		r.loadDefaults = false
	}
}

// WithLogger sets the logger used by load paths.
func WithLogger(log *logger.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry creates a registry, loads the bundled default dictionaries
// (unless disabled), and then loads every recognizable context file found
// in the user contexts directory, if one is configured.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		terminologies:    make(map[string]*Context),
		anatomicContexts: make(map[string]*AnatomicContext),
		loadDefaults:     true,
		log:              logger.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.loadDefaults {
		if err := r.LoadDefaultTerminologies(); err != nil {
			return nil, err
		}
		if err := r.LoadDefaultAnatomicContexts(); err != nil {
			return nil, err
		}
	}
	if r.userContextsPath != "" {
		if err := r.LoadUserContexts(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// UserContextsPath returns the configured user contexts directory.
func (r *Registry) UserContextsPath() string {
	return r.userContextsPath
}

// SetUserContextsPath sets the user contexts directory. It does not trigger
// a load; call LoadUserContexts to scan the new directory.
func (r *Registry) SetUserContextsPath(path string) {
	r.userContextsPath = path
}

// AddTerminology inserts a terminology context built outside file loading,
// replacing any context already loaded under its name.
func (r *Registry) AddTerminology(ctx *Context) error {
	if ctx == nil || ctx.Name == "" {
		return errors.New("terminology context must have a name")
	}
	if _, exists := r.terminologies[ctx.Name]; !exists {
		r.terminologyNames = append(r.terminologyNames, ctx.Name)
	}
	r.terminologies[ctx.Name] = ctx
	r.log.Debug("loaded terminology %q (%d categories)", ctx.Name, len(ctx.Categories))
	return nil
}

// AddAnatomicContext inserts an anatomic context built outside file loading,
// replacing any context already loaded under its name.
func (r *Registry) AddAnatomicContext(ctx *AnatomicContext) error {
	if ctx == nil || ctx.Name == "" {
		return errors.New("anatomic context must have a name")
	}
	if _, exists := r.anatomicContexts[ctx.Name]; !exists {
		r.anatomicNames = append(r.anatomicNames, ctx.Name)
	}
	r.anatomicContexts[ctx.Name] = ctx
	r.log.Debug("loaded anatomic context %q (%d regions)", ctx.Name, len(ctx.Regions))
	return nil
}

// LoadContextFromFile loads a context file, auto-detecting whether it holds
// a terminology or an anatomic context so the file is only read once.
func (r *Registry) LoadContextFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading context file: %w", err)
	}
	return r.loadContextData(data, path)
}

func (r *Registry) loadContextData(data []byte, path string) error {
	switch {
	case jsontree.HasKey(data, keyTerminologyContextName):
		_, err := r.loadTerminologyData(data, path)
		return err
	case jsontree.HasKey(data, keyAnatomicContextName):
		_, err := r.loadAnatomicContextData(data, path)
		return err
	default:
		return fmt.Errorf("%s: not a terminology or anatomic context file", path)
	}
}

// LoadTerminologyFromFile loads a terminology context file and returns the
// context name found in the file.
func (r *Registry) LoadTerminologyFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading terminology file: %w", err)
	}
	return r.loadTerminologyData(data, path)
}

func (r *Registry) loadTerminologyData(data []byte, source string) (string, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", source, err)
	}
	ctx, err := buildTerminology(root, r.log)
	if err != nil {
		return "", fmt.Errorf("%s: %w", source, err)
	}
	if err := r.AddTerminology(ctx); err != nil {
		return "", err
	}
	return ctx.Name, nil
}

// LoadAnatomicContextFromFile loads an anatomic context file and returns the
// context name found in the file.
func (r *Registry) LoadAnatomicContextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading anatomic context file: %w", err)
	}
	return r.loadAnatomicContextData(data, path)
}

func (r *Registry) loadAnatomicContextData(data []byte, source string) (string, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", source, err)
	}
	ctx, err := buildAnatomicContext(root, r.log)
	if err != nil {
		return "", fmt.Errorf("%s: %w", source, err)
	}
	if err := r.AddAnatomicContext(ctx); err != nil {
		return "", err
	}
	return ctx.Name, nil
}

// LoadTerminologyFromSegmentDescriptorFile loads a terminology from a legacy
// segment descriptor file. Descriptor files carry no context name, so the
// caller supplies one.
func (r *Registry) LoadTerminologyFromSegmentDescriptorFile(contextName, path string) error {
	root, err := jsontree.ParseFile(path)
	if err != nil {
		return err
	}
	ctx, err := buildTerminologyFromDescriptor(contextName, root, r.log)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return r.AddTerminology(ctx)
}

// LoadAnatomicContextFromSegmentDescriptorFile loads an anatomic context from
// the anatomic region fields of a legacy segment descriptor file.
func (r *Registry) LoadAnatomicContextFromSegmentDescriptorFile(contextName, path string) error {
	root, err := jsontree.ParseFile(path)
	if err != nil {
		return err
	}
	ctx, err := buildAnatomicFromDescriptor(contextName, root, r.log)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return r.AddAnatomicContext(ctx)
}

// LoadDefaultTerminologies loads the bundled terminology dictionaries.
func (r *Registry) LoadDefaultTerminologies() error {
	for _, name := range dicts.DefaultTerminologyFiles {
		data, err := dicts.Read(name)
		if err != nil {
			return err
		}
		if _, err := r.loadTerminologyData(data, name); err != nil {
			return err
		}
	}
	return nil
}

// LoadDefaultAnatomicContexts loads the bundled anatomic context dictionaries.
func (r *Registry) LoadDefaultAnatomicContexts() error {
	for _, name := range dicts.DefaultAnatomicContextFiles {
		data, err := dicts.Read(name)
		if err != nil {
			return err
		}
		if _, err := r.loadAnatomicContextData(data, name); err != nil {
			return err
		}
	}
	return nil
}

// LoadUserContexts scans the user contexts directory and loads every
// recognizable context file found. Files that cannot be read or parsed are
// skipped so one bad file does not block the rest of the directory.
func (r *Registry) LoadUserContexts() error {
	if r.userContextsPath == "" {
		return nil
	}
	info, err := os.Stat(r.userContextsPath)
	if err != nil {
		return fmt.Errorf("accessing user contexts directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("user contexts path is not a directory: %s", r.userContextsPath)
	}
	entries, err := os.ReadDir(r.userContextsPath)
	if err != nil {
		return fmt.Errorf("reading user contexts directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(r.userContextsPath, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			r.log.Warn("skipping unreadable user context %s: %v", path, err)
			continue
		}
		if err := r.loadContextData(data, path); err != nil {
			r.log.Warn("skipping user context %s: %v", path, err)
			continue
		}
		r.log.Info("loaded user context from %s", path)
	}
	return nil
}

// LoadedTerminologyNames returns the loaded terminology context names in
// insertion order.
func (r *Registry) LoadedTerminologyNames() []string {
	names := make([]string, len(r.terminologyNames))
	copy(names, r.terminologyNames)
	return names
}

// LoadedAnatomicContextNames returns the loaded anatomic context names in
// insertion order.
func (r *Registry) LoadedAnatomicContextNames() []string {
	names := make([]string, len(r.anatomicNames))
	copy(names, r.anatomicNames)
	return names
}

// Terminology returns the loaded terminology context with the given name.
func (r *Registry) Terminology(name string) (*Context, bool) {
	ctx, ok := r.terminologies[name]
	return ctx, ok
}

// AnatomicContext returns the loaded anatomic context with the given name.
func (r *Registry) AnatomicContext(name string) (*AnatomicContext, bool) {
	ctx, ok := r.anatomicContexts[name]
	return ctx, ok
}
