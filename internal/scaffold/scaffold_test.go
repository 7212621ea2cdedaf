package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featurekit/vue-feature/internal/platform"
	"github.com/featurekit/vue-feature/internal/templates"
)

func TestGenerateDefaults(t *testing.T) {
	dir := setupProject(t, "src")

	result, err := newGenerator(t, dir).Generate("demo", DefaultOptions())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{
		"Index.vue",
		"components/DemoTable.vue",
		"components/DemoForm.vue",
		"composables/useDemo.ts",
		"services/demoApi.ts",
		"types.ts",
	})

	featureDir := filepath.Join(dir, "src", "demo")
	if result.FeatureDir != featureDir {
		t.Errorf("FeatureDir = %q, want %q", result.FeatureDir, featureDir)
	}
	if n := countFiles(t, featureDir); n != 6 {
		t.Errorf("found %d files on disk, want 6", n)
	}
	assertMissing(t, filepath.Join(featureDir, "stores"))

	api := readGenerated(t, featureDir, "services/demoApi.ts")
	assertContains(t, api, "const API_BASE = '/api/demos';")
	assertContains(t, api, "export async function getDemosApi(): Promise<Demo[]>")
	assertNotContains(t, api, "{{FEATURE_")

	composable := readGenerated(t, featureDir, "composables/useDemo.ts")
	assertContains(t, composable, "export function useDemo()")
	assertContains(t, composable, "from '../services/demoApi'")

	table := readGenerated(t, featureDir, "components/DemoTable.vue")
	assertContains(t, table, "<td>{{ item.name }}</td>")
}

func TestGenerateWithStore(t *testing.T) {
	dir := setupProject(t, "src")

	opts := DefaultOptions()
	opts.IncludeStore = true
	result, err := newGenerator(t, dir).Generate("user-profile", opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{
		"Index.vue",
		"components/UserProfileTable.vue",
		"components/UserProfileForm.vue",
		"stores/useUserProfileStore.ts",
		"services/userProfileApi.ts",
		"types.ts",
	})

	featureDir := filepath.Join(dir, "src", "userProfile")
	assertMissing(t, filepath.Join(featureDir, "composables"))

	store := readGenerated(t, featureDir, "stores/useUserProfileStore.ts")
	assertContains(t, store, "export const useUserProfileStore = defineStore('user-profile'")

	types := readGenerated(t, featureDir, "types.ts")
	assertContains(t, types, "export interface UserProfile {")
	assertContains(t, types, "export interface CreateUserProfileRequest {")

	index := readGenerated(t, featureDir, "Index.vue")
	assertContains(t, index, "user-profile feature page")
	assertContains(t, index, `class="user-profile-page"`)
}

func TestGenerateWithoutComponents(t *testing.T) {
	dir := setupProject(t, "app")

	result, err := newGenerator(t, dir).Generate("order item", Options{OutputDir: "app"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{
		"Index.vue",
		"composables/useOrderItem.ts",
		"services/orderItemApi.ts",
		"types.ts",
	})
	assertMissing(t, filepath.Join(dir, "app", "orderItem", "components"))
}

func TestGenerateMissingOutputDir(t *testing.T) {
	dir := t.TempDir()

	_, err := newGenerator(t, dir).Generate("demo", DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing output directory")
	}
	if !errors.Is(err, ErrOutputDirMissing) {
		t.Errorf("error = %v, want ErrOutputDirMissing", err)
	}
	assertContains(t, err.Error(), `"src"`)
	assertContains(t, err.Error(), "current working directory: "+dir)
	assertContains(t, err.Error(), "failed to generate feature")

	if n := countFiles(t, dir); n != 0 {
		t.Errorf("expected no files written, found %d", n)
	}
}

func TestGenerateOutputDirIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "src"), []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newGenerator(t, dir).Generate("demo", DefaultOptions())
	if !errors.Is(err, ErrOutputDirNotDir) {
		t.Fatalf("error = %v, want ErrOutputDirNotDir", err)
	}
}

func TestGenerateExistingFeature(t *testing.T) {
	dir := setupProject(t, "src")
	g := newGenerator(t, dir)

	if _, err := g.Generate("demo", DefaultOptions()); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}

	typesPath := filepath.Join(dir, "src", "demo", "types.ts")
	if err := os.WriteFile(typesPath, []byte("hand edited"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := g.Generate("demo", DefaultOptions())
	if !errors.Is(err, ErrFeatureExists) {
		t.Fatalf("error = %v, want ErrFeatureExists", err)
	}

	if got := readGenerated(t, filepath.Join(dir, "src", "demo"), "types.ts"); got != "hand edited" {
		t.Errorf("existing file was modified: %q", got)
	}
	if n := countFiles(t, filepath.Join(dir, "src", "demo")); n != 6 {
		t.Errorf("file count changed to %d", n)
	}
}

func TestGenerateExistingFeatureUsesCamelDirectory(t *testing.T) {
	dir := setupProject(t, "src")
	if err := os.MkdirAll(filepath.Join(dir, "src", "userProfile"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := newGenerator(t, dir).Generate("user_profile", DefaultOptions())
	if !errors.Is(err, ErrFeatureExists) {
		t.Fatalf("error = %v, want ErrFeatureExists", err)
	}
}

func TestGenerateInvalidNames(t *testing.T) {
	dir := setupProject(t, "src")
	g := newGenerator(t, dir)

	for _, name := range []string{"", "   ", "---", "../escape", `a\b`, ".."} {
		t.Run(name, func(t *testing.T) {
			_, err := g.Generate(name, DefaultOptions())
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("Generate(%q) error = %v, want ErrInvalidName", name, err)
			}
		})
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("expected no files written, found %d", n)
	}
}

func TestGenerateAbortsOnWriteFailure(t *testing.T) {
	dir := setupProject(t, "src")
	base, err := platform.NewOS(dir)
	if err != nil {
		t.Fatal(err)
	}
	failing := &failingFS{FS: base, failOn: "demoApi.ts"}

	rec := &recordingReporter{}
	g := New(failing, embeddedStore(t), WithReporter(rec))

	_, err = g.Generate("demo", DefaultOptions())
	if err == nil {
		t.Fatal("expected write failure")
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("error = %v, want wrapped errDiskFull", err)
	}
	assertContains(t, err.Error(), "demoApi.ts")

	featureDir := filepath.Join(dir, "src", "demo")
	if n := countFiles(t, featureDir); n != 4 {
		t.Errorf("found %d files, want the 4 written before the failure", n)
	}
	assertMissing(t, filepath.Join(featureDir, "types.ts"))

	if rec.final != "fail" {
		t.Errorf("reporter final state = %q, want fail", rec.final)
	}
}

func TestGenerateOverwritesFileAtStepLevel(t *testing.T) {
	dir := setupProject(t, "src")
	base, err := platform.NewOS(dir)
	if err != nil {
		t.Fatal(err)
	}
	// Simulate a pre-existing file inside a directory the pre-check cannot see.
	hidden := &hideFeatureDirFS{FS: base, hide: filepath.Join("src", "demo")}
	if err := os.MkdirAll(filepath.Join(dir, "src", "demo"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "demo", "types.ts"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(hidden, embeddedStore(t)).Generate("demo", DefaultOptions()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	assertContains(t, readGenerated(t, filepath.Join(dir, "src", "demo"), "types.ts"), "export interface Demo {")
}

func TestGenerateDryRun(t *testing.T) {
	dir := setupProject(t, "src")

	opts := DefaultOptions()
	opts.DryRun = true
	result, err := newGenerator(t, dir).Generate("demo", opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if !result.DryRun {
		t.Error("result should be marked as dry run")
	}
	assertFiles(t, result, []string{
		"Index.vue",
		"components/DemoTable.vue",
		"components/DemoForm.vue",
		"composables/useDemo.ts",
		"services/demoApi.ts",
		"types.ts",
	})
	assertMissing(t, filepath.Join(dir, "src", "demo"))
}

func TestGenerateDryRunListsStoreVariant(t *testing.T) {
	dir := setupProject(t, "src")

	opts := DefaultOptions()
	opts.DryRun = true
	opts.IncludeStore = true
	opts.IncludeForm = false
	result, err := newGenerator(t, dir).Generate("line_item", opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{
		"Index.vue",
		"components/LineItemTable.vue",
		"stores/useLineItemStore.ts",
		"services/lineItemApi.ts",
		"types.ts",
	})
	if want := filepath.Join(dir, "src", "lineItem"); result.FeatureDir != want {
		t.Errorf("FeatureDir = %q, want %q", result.FeatureDir, want)
	}
	assertMissing(t, filepath.Join(dir, "src", "lineItem"))
}

func TestGenerateDryRunStillChecksPreconditions(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.DryRun = true

	_, err := newGenerator(t, dir).Generate("demo", opts)
	if !errors.Is(err, ErrOutputDirMissing) {
		t.Fatalf("error = %v, want ErrOutputDirMissing", err)
	}
}

func TestGenerateUnknownTemplateFailsBeforeWriting(t *testing.T) {
	dir := setupProject(t, "src")
	store, err := templates.OpenDir(writeTemplateSet(t, map[string]string{"index": "{{FEATURE_PASCAL}}"}), "dev")
	if err != nil {
		t.Fatal(err)
	}
	base, err := platform.NewOS(dir)
	if err != nil {
		t.Fatal(err)
	}

	_, err = New(base, store).Generate("demo", DefaultOptions())
	if !errors.Is(err, templates.ErrUnknownTemplate) {
		t.Fatalf("error = %v, want ErrUnknownTemplate", err)
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("expected no files written, found %d", n)
	}
}

func TestGenerateWithCustomTemplates(t *testing.T) {
	dir := setupProject(t, "src")
	set := writeTemplateSet(t, map[string]string{
		"index":      "page {{FEATURE_NAME}}",
		"composable": "use{{FEATURE_PASCAL}} {{UNBOUND}}",
		"api":        "{{FEATURE_CAMEL}}Api",
		"types":      "type {{FEATURE_PASCAL}} = {}",
	})
	store, err := templates.OpenDir(set, "dev")
	if err != nil {
		t.Fatal(err)
	}
	base, err := platform.NewOS(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := New(base, store).Generate("line-item", Options{OutputDir: "src"}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	featureDir := filepath.Join(dir, "src", "lineItem")
	if got := readGenerated(t, featureDir, "composables/useLineItem.ts"); got != "useLineItem {{UNBOUND}}" {
		t.Errorf("composable = %q", got)
	}
	if got := readGenerated(t, featureDir, "Index.vue"); got != "page line-item" {
		t.Errorf("index = %q", got)
	}
}

func TestGenerateReportsProgress(t *testing.T) {
	dir := setupProject(t, "src")
	base, err := platform.NewOS(dir)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recordingReporter{}

	if _, err := New(base, embeddedStore(t), WithReporter(rec)).Generate("demo", DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	if rec.start != "Validating output directory..." {
		t.Errorf("start = %q", rec.start)
	}
	if rec.final != "succeed" {
		t.Errorf("final = %q, want succeed", rec.final)
	}
	assertContains(t, strings.Join(rec.updates, "\n"), "Generating Table component...")
	assertContains(t, strings.Join(rec.updates, "\n"), "Generating types...")
}

// ─── Test Helpers ──────────────────────────────────────────────────

var errDiskFull = errors.New("disk full")

type failingFS struct {
	platform.FS
	failOn string
}

func (f *failingFS) WriteFile(path string, data []byte) error {
	if strings.HasSuffix(path, f.failOn) {
		return &fs.PathError{Op: "write", Path: path, Err: errDiskFull}
	}
	return f.FS.WriteFile(path, data)
}

type hideFeatureDirFS struct {
	platform.FS
	hide string
}

func (h *hideFeatureDirFS) Exists(path string) (bool, error) {
	if filepath.Clean(path) == h.hide {
		return false, nil
	}
	return h.FS.Exists(path)
}

type recordingReporter struct {
	start   string
	updates []string
	final   string
}

func (r *recordingReporter) Start(msg string)  { r.start = msg }
func (r *recordingReporter) Update(msg string) { r.updates = append(r.updates, msg) }
func (r *recordingReporter) Succeed(string)    { r.final = "succeed" }
func (r *recordingReporter) Fail(string)       { r.final = "fail" }

func embeddedStore(t *testing.T) *templates.Store {
	t.Helper()
	s, err := templates.Embedded("dev")
	if err != nil {
		t.Fatalf("loading embedded templates: %v", err)
	}
	return s
}

func newGenerator(t *testing.T, dir string) *Generator {
	t.Helper()
	fsys, err := platform.NewOS(dir)
	if err != nil {
		t.Fatalf("NewOS: %v", err)
	}
	return New(fsys, embeddedStore(t))
}

// setupProject creates a temp project with the given output directory.
func setupProject(t *testing.T, outputDir string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, outputDir), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

// writeTemplateSet writes a template set with one file per id.
func writeTemplateSet(t *testing.T, bodies map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	var manifest strings.Builder
	manifest.WriteString("name: test-set\ntemplates:\n")
	for id, body := range bodies {
		file := id + ".tmpl"
		manifest.WriteString("  - id: " + id + "\n    file: " + file + "\n")
		if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, templates.ManifestFile), []byte(manifest.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(filename)))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("walking %s: %v", root, err)
	}
	return n
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d files %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("%s should not exist (stat err: %v)", path, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
