package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vimstrap/vimstrap/pkg/core"
	"github.com/vimstrap/vimstrap/pkg/fetch"
	"github.com/vimstrap/vimstrap/pkg/platform"
	"github.com/vimstrap/vimstrap/pkg/vimrc"
)

const plugBody = `" vim-plug bootstrap stand-in`

// fakeProvider fakes platform detection signals
type fakeProvider struct {
	goos     string
	files    map[string]string
	binaries map[string]bool
}

func (f *fakeProvider) GOOS() string   { return f.goos }
func (f *fakeProvider) GOARCH() string { return "amd64" }

func (f *fakeProvider) ReadFile(path string) ([]byte, error) {
	if content, ok := f.files[path]; ok {
		return []byte(content), nil
	}
	return nil, errors.New("file does not exist")
}

func (f *fakeProvider) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

// fakeRunner captures subprocess command lines; failures can target a single
// binary
type fakeRunner struct {
	calls   [][]string
	failFor map[string]error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err, ok := f.failFor[name]; ok {
		return []byte("fake failure output"), err
	}
	return nil, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func ubuntuProvider() *fakeProvider {
	return &fakeProvider{
		goos:     "linux",
		files:    map[string]string{"/etc/os-release": "ID=ubuntu\nID_LIKE=debian\n"},
		binaries: map[string]bool{"apt-get": true},
	}
}

func testConfig(t *testing.T, plugURL string) *core.Config {
	t.Helper()
	tmp := t.TempDir()

	cfg := core.DefaultConfig()
	cfg.VimrcPath = filepath.Join(tmp, ".vimrc")
	cfg.PlugDir = filepath.Join(tmp, ".vim")
	cfg.Packages = []string{"vim", "ctags"}
	cfg.AptUpdate = false
	cfg.PlugURL = plugURL
	cfg.Timeout = core.Duration(10 * time.Second)
	return cfg
}

func plugServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(plugBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, cfg *core.Config, provider platform.Provider, runner *fakeRunner) (*Report, error) {
	t.Helper()
	r := &Runner{
		Config:   cfg,
		Provider: provider,
		Subproc:  runner,
		Fetcher:  fetch.NewClient(),
	}
	return r.Run(context.Background())
}

func stepStatus(report *Report, name string) Status {
	for _, s := range report.Steps {
		if s.Name == name {
			return s.Status
		}
	}
	return ""
}

func TestRunReplacesExistingConfig(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	require.NoError(t, os.WriteFile(cfg.VimrcPath, []byte("OLDCONFIG"), 0o644))

	runner := &fakeRunner{}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.NoError(t, err)
	assert.False(t, report.Failed())

	// The config file holds exactly the rendered template
	want, err := vimrc.Render(cfg.Render)
	require.NoError(t, err)
	got, err := os.ReadFile(cfg.VimrcPath)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	// The old content survived in the backup
	bak, err := os.ReadFile(cfg.VimrcPath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "OLDCONFIG", string(bak))
	require.Len(t, report.Backups, 1)
	assert.Equal(t, cfg.VimrcPath, report.Backups[0].Original)
}

func TestRunFromEmptyFilesystem(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)
	// Point into a directory that does not exist yet
	cfg.VimrcPath = filepath.Join(t.TempDir(), "nested", ".vimrc")

	report, err := run(t, cfg, ubuntuProvider(), &fakeRunner{})
	require.NoError(t, err)
	assert.False(t, report.Failed())

	// Config file and its parent directory both exist
	assert.FileExists(t, cfg.VimrcPath)

	// No backup was created
	assert.NoFileExists(t, cfg.VimrcPath+".bak")
	assert.Empty(t, report.Backups)

	// The fetched bootstrap landed in the plugin directory
	assert.FileExists(t, filepath.Join(cfg.PlugDir, "autoload", "plug.vim"))
}

func TestRunCommandSequence(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	runner := &fakeRunner{}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.NoError(t, err)
	assert.False(t, report.Failed())

	require.Len(t, runner.calls, 3)
	// Canonical names resolved for the apt backend
	assert.Equal(t, "sudo apt-get install -y vim universal-ctags", strings.Join(runner.calls[0], " "))
	assert.Equal(t, "vim +PlugInstall --sync +qall!", strings.Join(runner.calls[1], " "))
	assert.Equal(t, "vim +PlugUpdate +qall!", strings.Join(runner.calls[2], " "))
}

func TestRunUnknownPlatformSkipsPackages(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	runner := &fakeRunner{}
	report, err := run(t, cfg, &fakeProvider{goos: "plan9"}, runner)
	require.NoError(t, err)

	assert.Equal(t, StatusSkipped, stepStatus(report, StepPackages))
	assert.False(t, report.Failed())

	// Zero package manager invocations; only the editor ran
	for _, call := range runner.calls {
		assert.Equal(t, cfg.Editor, call[0], "unexpected subprocess %v", call)
	}
}

func TestRunContinuesAfterInstallFailure(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	runner := &fakeRunner{failFor: map[string]error{"sudo": errors.New("exit status 100")}}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, stepStatus(report, StepPackages))
	assert.True(t, report.Failed())

	// Later steps still ran
	assert.Equal(t, StatusOK, stepStatus(report, StepFetchPlug))
	assert.Equal(t, StatusOK, stepStatus(report, StepPlugInstall))

	result := findStep(report, StepPackages)
	require.NotNil(t, result)
	assert.ErrorIs(t, result.Err, ErrPackageInstallFailed)
}

func TestRunStrictInstallFailureAborts(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)
	cfg.Strict = true

	runner := &fakeRunner{failFor: map[string]error{"sudo": errors.New("exit status 100")}}
	_, err := run(t, cfg, ubuntuProvider(), runner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackageInstallFailed)

	// The editor was never invoked
	for _, call := range runner.calls {
		assert.NotEqual(t, cfg.Editor, call[0])
	}
}

func TestRunEditorFailureIsNonFatalByDefault(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	runner := &fakeRunner{failFor: map[string]error{"vim": errors.New("exit status 1")}}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, stepStatus(report, StepPlugInstall))
	assert.Equal(t, StatusFailed, stepStatus(report, StepExtensions))
	assert.True(t, report.Failed())
}

func TestRunStrictEditorFailureAborts(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)
	cfg.Strict = true

	runner := &fakeRunner{failFor: map[string]error{"vim": errors.New("exit status 1")}}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExternalToolFailed)

	// Aborted on the first editor invocation
	assert.Equal(t, StatusFailed, stepStatus(report, StepPlugInstall))
	assert.Equal(t, Status(""), stepStatus(report, StepExtensions))
}

func TestRunFetchFailureSkipsEditorSteps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t, srv.URL)
	runner := &fakeRunner{}
	report, err := run(t, cfg, ubuntuProvider(), runner)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, stepStatus(report, StepFetchPlug))
	assert.Equal(t, StatusSkipped, stepStatus(report, StepPlugInstall))
	assert.Equal(t, StatusSkipped, stepStatus(report, StepExtensions))
	assert.True(t, report.Failed())

	result := findStep(report, StepFetchPlug)
	require.NotNil(t, result)
	assert.ErrorIs(t, result.Err, ErrNetworkFetchFailed)
}

func TestRunBacksUpPluginDirectory(t *testing.T) {
	srv := plugServer(t)
	cfg := testConfig(t, srv.URL)

	oldPlug := filepath.Join(cfg.PlugDir, "autoload", "plug.vim")
	require.NoError(t, os.MkdirAll(filepath.Dir(oldPlug), 0o755))
	require.NoError(t, os.WriteFile(oldPlug, []byte("old plug"), 0o644))

	report, err := run(t, cfg, ubuntuProvider(), &fakeRunner{})
	require.NoError(t, err)
	require.Len(t, report.Backups, 1)

	// Old plugin data moved aside, fresh bootstrap fetched
	b, err := os.ReadFile(filepath.Join(cfg.PlugDir+".bak", "autoload", "plug.vim"))
	require.NoError(t, err)
	assert.Equal(t, "old plug", string(b))

	b, err = os.ReadFile(oldPlug)
	require.NoError(t, err)
	assert.Equal(t, plugBody, string(b))
}

func findStep(report *Report, name string) *StepResult {
	for i := range report.Steps {
		if report.Steps[i].Name == name {
			return &report.Steps[i]
		}
	}
	return nil
}
