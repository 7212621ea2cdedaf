package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/featurekit/vue-feature/internal/logging"
	"github.com/featurekit/vue-feature/internal/naming"
	"github.com/featurekit/vue-feature/internal/placeholder"
	"github.com/featurekit/vue-feature/internal/platform"
	"github.com/featurekit/vue-feature/internal/templates"
)

// DefaultOutputDir is the output directory used when none is configured.
const DefaultOutputDir = "src"

// Precondition failures. Nothing has been written when one of these is returned.
var (
	ErrInvalidName      = errors.New("invalid feature name")
	ErrOutputDirMissing = errors.New("output directory does not exist")
	ErrOutputDirNotDir  = errors.New("output path is not a directory")
	ErrFeatureExists    = errors.New("feature already exists")
)

// Options controls which files a run produces.
type Options struct {
	OutputDir    string
	IncludeTable bool
	IncludeForm  bool
	IncludeStore bool
	DryRun       bool
}

// DefaultOptions returns table and form on, store off, output under src.
func DefaultOptions() Options {
	return Options{
		OutputDir:    DefaultOutputDir,
		IncludeTable: true,
		IncludeForm:  true,
	}
}

// Result holds the outcome of a generation run.
type Result struct {
	Feature    naming.Variants
	FeatureDir string   // Absolute path of the feature directory
	Files      []string // Written files, relative to FeatureDir, in plan order
	DryRun     bool
}

// Generator renders features from a template store onto a filesystem.
type Generator struct {
	fs       platform.FS
	store    *templates.Store
	reporter Reporter
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a Generator writing to fsys with templates from store.
func New(fsys platform.FS, store *templates.Store, opts ...Option) *Generator {
	g := &Generator{
		fs:       fsys,
		store:    store,
		reporter: nopReporter{},
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate creates the files for feature name according to opts. The first
// failure stops the run; files already written are left in place.
func (g *Generator) Generate(name string, opts Options) (*Result, error) {
	g.reporter.Start("Validating output directory...")

	result, err := g.generate(name, opts)
	if err != nil {
		g.reporter.Fail("Failed to generate feature")
		return nil, fmt.Errorf("failed to generate feature %q: %w", name, err)
	}

	if opts.DryRun {
		g.reporter.Succeed(fmt.Sprintf("Dry run complete: %d files planned", len(result.Files)))
	} else {
		g.reporter.Succeed("Feature generated successfully!")
	}
	return result, nil
}

func (g *Generator) generate(name string, opts Options) (*Result, error) {
	fsys := g.fs
	var overlay *platform.DryRun
	if opts.DryRun {
		overlay = platform.NewDryRun(g.fs)
		fsys = overlay
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}

	variants := naming.Derive(name)
	if err := validateName(variants); err != nil {
		return nil, err
	}

	if err := checkOutputDir(fsys, opts.OutputDir); err != nil {
		return nil, err
	}

	featureDir := filepath.Join(opts.OutputDir, variants.Camel)
	g.reporter.Update("Checking for existing feature...")
	exists, err := fsys.Exists(featureDir)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", featureDir, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: directory %q already exists in %q; use a different feature name or remove it first",
			ErrFeatureExists, variants.Camel, opts.OutputDir)
	}

	plan := BuildPlan(opts)
	for _, id := range plan.TemplateIDs() {
		if !g.store.Has(id) {
			return nil, fmt.Errorf("%w %q in template set %s", templates.ErrUnknownTemplate, id, g.store.Source())
		}
	}

	values := placeholder.Values(variants)
	outputs := plan.Resolve(values)

	g.logger.Debug("generation plan ready",
		"feature", variants.Original,
		"dir", featureDir,
		"steps", len(plan),
		"templates", g.store.Source(),
		"dry_run", opts.DryRun)

	result := &Result{
		Feature:    variants,
		FeatureDir: absPath(fsys.WorkDir(), featureDir),
		DryRun:     opts.DryRun,
	}

	g.reporter.Update("Generating feature files...")
	for i, step := range plan {
		g.reporter.Update("Generating " + step.Label + "...")
		outPath := filepath.Join(featureDir, filepath.FromSlash(outputs[i]))
		if err := g.emit(fsys, step.TemplateID, outPath, values); err != nil {
			return nil, err
		}
		if overlay == nil {
			result.Files = append(result.Files, outputs[i])
		}
	}

	if overlay != nil {
		files, err := relativeTo(result.FeatureDir, overlay.Written())
		if err != nil {
			return nil, err
		}
		result.Files = files
	}

	return result, nil
}

// emit renders one template and writes it to outPath, creating parent
// directories as needed. An existing file at outPath is overwritten.
func (g *Generator) emit(fsys platform.FS, templateID, outPath string, values map[string]string) error {
	body, err := g.store.Read(templateID)
	if err != nil {
		return err
	}

	content := placeholder.Replace(body, values)

	if err := fsys.MkdirAll(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(outPath), err)
	}
	if err := fsys.WriteFile(outPath, []byte(content)); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	g.logger.Debug("wrote file", "template", templateID, "path", outPath, "bytes", len(content))
	return nil
}

// validateName rejects names that produce no usable identifier or that
// would place the feature directory outside the output directory.
func validateName(v naming.Variants) error {
	if strings.TrimSpace(v.Original) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	}
	if v.Camel == "" {
		return fmt.Errorf("%w %q: must contain at least one character besides '-', '_' and spaces", ErrInvalidName, v.Original)
	}
	if strings.ContainsAny(v.Original, `/\`) || v.Camel == "." || v.Camel == ".." {
		return fmt.Errorf("%w %q: must not contain path separators or be '.' or '..'", ErrInvalidName, v.Original)
	}
	return nil
}

func checkOutputDir(fsys platform.FS, dir string) error {
	exists, err := fsys.Exists(dir)
	if err != nil {
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !exists {
		return fmt.Errorf("%w: %q\nplease create it first or use an existing directory\ncurrent working directory: %s",
			ErrOutputDirMissing, dir, fsys.WorkDir())
	}
	isDir, err := fsys.IsDir(dir)
	if err != nil {
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %q", ErrOutputDirNotDir, dir)
	}
	return nil
}

// relativeTo maps absolute paths to slash-separated paths under dir.
func relativeTo(dir string, paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

func absPath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}
