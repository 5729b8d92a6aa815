// Package service orchestrates one wrk invocation: it owns the loaded
// config, talks to the workspace catalog and the prompt collaborator, and
// launches the configured editor.
package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mattsolo1/wrk/pkg/config"
	"github.com/mattsolo1/wrk/pkg/history"
	"github.com/mattsolo1/wrk/pkg/pathutil"
	"github.com/mattsolo1/wrk/pkg/timefmt"
	"github.com/mattsolo1/wrk/pkg/workspace"
)

// Service holds the state of a single invocation. The config is loaded
// once, mutated in place, and written back at well-defined points.
type Service struct {
	Config     *config.Config
	ConfigPath string
	Prompter   Prompter
	History    *history.Recorder // nil when the recorder could not open
	Out        io.Writer
}

// OpenOptions carries the per-invocation flags that affect opening.
type OpenOptions struct {
	DryRun  bool
	IDE     string // overrides the configured editor
	Project string // exact project name, skips the selection menu
}

// Close releases the history recorder, if any.
func (s *Service) Close() {
	if s.History != nil {
		if err := s.History.Close(); err != nil {
			logrus.Warnf("close history: %v", err)
		}
	}
}

func (s *Service) ide(opts OpenOptions) string {
	if opts.IDE != "" {
		return opts.IDE
	}
	return s.Config.IDE
}

// OpenLast reopens the last opened project. An unset or stale path is
// guidance, not an error.
func (s *Service) OpenLast(opts OpenOptions) error {
	last := s.Config.LastProjectPath
	if last == "" {
		fmt.Fprintln(s.Out, "No project opened yet. Run 'wrk <workspace>' to pick one.")
		return nil
	}
	if info, err := os.Stat(last); err != nil || !info.IsDir() {
		fmt.Fprintf(s.Out, "Last project %s no longer exists. Run 'wrk <workspace>' to pick another.\n", pathutil.Contract(last))
		return nil
	}
	return s.OpenProject(last, opts)
}

// OpenWorkspace services the `wrk <name>` shortcut: ensure the workspace
// directory, pick a project (by flag, menu, or creation), and open it.
func (s *Service) OpenWorkspace(name string, opts OpenOptions) error {
	dir, ok, err := s.ensureWorkspace(name, opts.DryRun)
	if err != nil || !ok {
		return err
	}

	projects, err := workspace.Projects(dir)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		yes, err := s.Prompter.Confirm(fmt.Sprintf("Workspace %q has no projects. Create one?", name), true)
		if err != nil {
			return declineOnAbort(err)
		}
		if !yes {
			return nil
		}
		return s.createProject(dir, "", opts)
	}

	if opts.Project != "" {
		for _, p := range projects {
			if p.Name == opts.Project {
				return s.OpenProject(p.Path, opts)
			}
		}
		return &NotFoundError{Kind: "project", Name: opts.Project, Available: projectNames(projects)}
	}

	options := make([]Option, len(projects))
	now := time.Now()
	for i, p := range projects {
		options[i] = Option{
			Label: fmt.Sprintf("%s (%s)", p.Name, timefmt.Relative(p.LastAccessed, now)),
			Value: p.Path,
		}
	}
	title := cases.Title(language.English).String(name)
	choice, err := s.Prompter.Choose(fmt.Sprintf("Select a project in %s", title), options)
	if err != nil {
		return declineOnAbort(err)
	}
	return s.OpenProject(choice, opts)
}

// CreateProject services `wrk create <workspace> [project]`. With no
// project name the prompter asks for one.
func (s *Service) CreateProject(wsName, projName string, opts OpenOptions) error {
	dir, ok, err := s.ensureWorkspace(wsName, opts.DryRun)
	if err != nil || !ok {
		return err
	}
	return s.createProject(dir, projName, opts)
}

func (s *Service) createProject(wsDir, projName string, opts OpenOptions) error {
	if projName == "" {
		name, err := s.Prompter.Text("Project name", "", ValidateName)
		if err != nil {
			return declineOnAbort(err)
		}
		projName = strings.TrimSpace(name)
	}

	target := filepath.Join(wsDir, projName)
	if _, err := os.Stat(target); err == nil {
		return &ConflictError{Kind: "project", Path: target}
	}

	if opts.DryRun {
		fmt.Fprintf(s.Out, "Would create %s\n", target)
		return nil
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	fmt.Fprintf(s.Out, "Created %s\n", pathutil.Contract(target))
	return s.OpenProject(target, opts)
}

// ProjectDir services `wrk cd`: it resolves an existing project to its
// absolute path and has no side effects.
func (s *Service) ProjectDir(wsName, projName string) (string, error) {
	dir, err := workspace.Dir(s.Config.Workspace, wsName)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", &NotFoundError{Kind: "workspace", Name: wsName, Available: s.workspaceNames()}
	}

	target := filepath.Join(dir, projName)
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		projects, _ := workspace.Projects(dir)
		return "", &NotFoundError{Kind: "project", Name: projName, Available: projectNames(projects)}
	}
	return target, nil
}

// OpenProject verifies the directory, remembers it as the last project,
// and launches the editor on it. The config write happens before the
// launch so a crashed editor still leaves the intent recorded.
func (s *Service) OpenProject(path string, opts OpenOptions) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &NotFoundError{Kind: "project directory", Name: path}
	}

	ide := s.ide(opts)
	if opts.DryRun {
		fmt.Fprintf(s.Out, "Would open %s with %s\n", path, ide)
		return nil
	}

	s.Config.LastProjectPath = path
	if err := s.Config.Save(s.ConfigPath); err != nil {
		logrus.Warnf("save config: %v", err)
	}
	s.recordOpen(path)

	bin, err := ResolveIDE(ide)
	if err != nil {
		return err
	}
	return launch(bin, path)
}

// EditConfig opens the config file itself in the editor.
func (s *Service) EditConfig(opts OpenOptions) error {
	if _, err := os.Stat(s.ConfigPath); err != nil {
		fmt.Fprintf(s.Out, "No config file at %s yet. Run wrk once to create it.\n", pathutil.Contract(s.ConfigPath))
		return nil
	}
	bin, err := ResolveIDE(s.ide(opts))
	if err != nil {
		return err
	}
	return launch(bin, s.ConfigPath)
}

// ResolveIDE turns a configured editor into an executable path: PATH
// lookup first, then the value itself as a (possibly ~-prefixed) file
// path.
func ResolveIDE(ide string) (string, error) {
	if bin, err := exec.LookPath(ide); err == nil {
		return bin, nil
	}
	if expanded, err := pathutil.Expand(ide); err == nil {
		if info, err := os.Stat(expanded); err == nil && !info.IsDir() {
			return expanded, nil
		}
	}
	return "", &NotFoundError{
		Kind: "IDE command",
		Name: ide,
		Hint: "Set one with: wrk config --set ide=<command>",
	}
}

// ValidateName accepts non-empty trimmed names without path separators.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("name must not be empty")
	}
	if strings.ContainsRune(trimmed, os.PathSeparator) {
		return errors.New("name must not contain path separators")
	}
	return nil
}

// ensureWorkspace resolves the workspace directory and creates it after
// confirmation when missing. A declined prompt returns ok=false with no
// error. Under dry-run a missing workspace is only reported.
func (s *Service) ensureWorkspace(name string, dryRun bool) (dir string, ok bool, err error) {
	dir, err = workspace.Dir(s.Config.Workspace, name)
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true, nil
	}

	if dryRun {
		fmt.Fprintf(s.Out, "Would create workspace %s\n", dir)
		return dir, true, nil
	}

	yes, err := s.Prompter.Confirm(fmt.Sprintf("Workspace %q does not exist. Create %s?", name, pathutil.Contract(dir)), false)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	if !yes {
		return "", false, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", false, fmt.Errorf("create workspace: %w", err)
	}
	return dir, true, nil
}

func (s *Service) recordOpen(path string) {
	if s.History == nil {
		return
	}
	project := filepath.Base(path)
	ws := strings.TrimSuffix(filepath.Base(filepath.Dir(path)), workspace.Suffix)
	if err := s.History.Record(ws, project, path); err != nil {
		logrus.Warnf("record history: %v", err)
	}
}

func (s *Service) workspaceNames() []string {
	names, err := workspace.List(s.Config.Workspace)
	if err != nil {
		return nil
	}
	return names
}

func launch(bin, arg string) error {
	cmd := exec.Command(bin, arg)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode(), Err: fmt.Errorf("%s exited with status %d", filepath.Base(bin), exitErr.ExitCode())}
		}
		return fmt.Errorf("launch %s: %w", bin, err)
	}
	return nil
}

func projectNames(projects []workspace.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

func declineOnAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
