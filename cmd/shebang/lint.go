package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"shebang/internal/fix"
	"shebang/internal/lint"
	"shebang/internal/lintfmt"
	"shebang/internal/source"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint Markdown files without opening the editor",
	Long:  `Check Markdown files or directories for style issues and print them in pretty, short, or JSON form`,
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	lintCmd.Flags().Bool("no-warnings", false, "report errors only")
	lintCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	lintCmd.Flags().Bool("fix", false, "apply available fixes to the files")
	lintCmd.Flags().Bool("preview", false, "with --fix, stage fixes without writing")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	lintCmd.Flags().Bool("with-notes", false, "include notes in pretty output")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	lintCmd.Flags().Int("max-issues", lint.DefaultMaxIssues, "maximum number of issues to report")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, short, or json)", format)
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	applyFixes, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return fmt.Errorf("failed to get fix flag: %w", err)
	}
	previewFixes, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	if previewFixes && !applyFixes {
		return fmt.Errorf("--preview requires --fix")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxIssues, err := cmd.Flags().GetInt("max-issues")
	if err != nil {
		return fmt.Errorf("failed to get max-issues flag: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectMarkdownFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no markdown files found")
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, _, err := lint.FindConfig(cwd)
	if err != nil {
		return err
	}
	if maxIssues > 0 {
		cfg.MaxIssues = maxIssues
	}
	linter := lint.New(cfg)

	fileSet := source.NewFileSet()
	ids := make([]source.FileID, len(files))
	loadFailed := make([]string, 0)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadFailed = append(loadFailed, path)
			ids[i] = fileSet.AddVirtual(path, nil)
			continue
		}
		ids[i] = id
	}

	// lint files in parallel; each worker fills its own slot
	bags := make([]*lint.Bag, len(ids))
	var group errgroup.Group
	group.SetLimit(jobs)
	for i, id := range ids {
		file := fileSet.Get(id)
		slot := i
		group.Go(func() error {
			bags[slot] = linter.CheckFile(file)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	total := lint.NewBag(cfg.MaxIssues)
	for i, bag := range bags {
		if bag == nil {
			continue
		}
		if isLoadFailure(files[i], loadFailed) {
			reporter := lint.BagReporter{Bag: bag}
			sp := source.Span{File: ids[i]}
			reporter.Report(lint.IOLoadFileError, lint.SevError, sp,
				fmt.Sprintf("cannot read %s", files[i]), nil, nil)
		}
		total.Merge(bag)
	}
	total.Sort()

	total = filterIssues(total, noWarnings, warningsAsErrors)

	opts := lintfmt.Options{
		Color:     !noColorOutput(cmd),
		WithNotes: withNotes,
		FullPath:  fullPath,
		BaseDir:   cwd,
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := lintfmt.JSON(out, total, fileSet, opts); err != nil {
			return err
		}
	case "short":
		lintfmt.Short(out, total, fileSet, opts)
	default:
		lintfmt.Pretty(out, total, fileSet, opts)
		fmt.Fprintln(out, lintfmt.Summary(total))
	}

	if applyFixes {
		if err := runFixes(cmd, fileSet, total, previewFixes); err != nil {
			return err
		}
	}

	if total.HasErrors() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // issues already printed
	}
	return nil
}

func runFixes(cmd *cobra.Command, fileSet *source.FileSet, bag *lint.Bag, dryRun bool) error {
	result, err := fix.Apply(fileSet, bag.Items(), fix.Options{DryRun: dryRun})
	if errors.Is(err, fix.ErrNoFixes) {
		fmt.Fprintln(cmd.OutOrStdout(), "no applicable fixes")
		return nil
	}
	if err != nil {
		return err
	}
	verb := "fixed"
	if dryRun {
		verb = "would fix"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d issue(s) in %d file(s)\n",
		verb, len(result.Applied), len(result.FileChanges))
	for _, skipped := range result.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped %s: %s\n", skipped.Title, skipped.Reason)
	}
	return nil
}

// collectMarkdownFiles expands files and directories into a sorted, unique
// list of markdown paths. Dot-directories are skipped during walks.
func collectMarkdownFiles(paths []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	addFile := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}
		if !info.IsDir() {
			addFile(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if strings.HasPrefix(name, ".") && p != path {
					return filepath.SkipDir
				}
				return nil
			}
			if isMarkdownName(name) {
				addFile(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func isMarkdownName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func isLoadFailure(path string, failed []string) bool {
	for _, f := range failed {
		if f == path {
			return true
		}
	}
	return false
}

// filterIssues applies --no-warnings / --warnings-as-errors to a sorted bag.
func filterIssues(bag *lint.Bag, noWarnings, warningsAsErrors bool) *lint.Bag {
	if !noWarnings && !warningsAsErrors {
		return bag
	}
	out := lint.NewBag(int(bag.Cap()))
	for _, issue := range bag.Items() {
		if noWarnings && issue.Severity < lint.SevError {
			continue
		}
		if warningsAsErrors && issue.Severity == lint.SevWarning {
			issue.Severity = lint.SevError
		}
		out.Add(issue)
	}
	return out
}

func noColorOutput(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return false
	case "off":
		return true
	default:
		return !isTerminal(os.Stdout)
	}
}
