package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/fileanonymizer/anonymize"
	"github.com/lepinkainen/fileanonymizer/logging"
	"github.com/lepinkainen/fileanonymizer/types"
	"github.com/lepinkainen/fileanonymizer/ui"
	"github.com/lepinkainen/fileanonymizer/utils"
)

// AnonymizeCmd renames every regular file in a directory to a name derived from
// a digest of the original name.
type AnonymizeCmd struct {
	Directory string           `arg:"" name:"directory" help:"The directory containing the files to anonymize."`
	Algorithm string           `help:"The hashing algorithm to use." default:"sha256" enum:"md5,sha1,sha256,sha512"`
	Prefix    string           `help:"The prefix to add to the anonymized file names." default:"anonymized_"`
	DryRun    bool             `name:"dry-run" help:"Perform a dry run without actually renaming any files."`
	LogFile   string           `name:"log-file" help:"Also write log records to this file." type:"path"`
	Progress  bool             `help:"Show a progress bar while renaming, hiding per-file INFO records on the console. Ignored with --dry-run."`
	Version   kong.VersionFlag `help:"Print version and exit."`

	// console receives log records and the progress bar. Defaults to os.Stderr.
	console io.Writer `kong:"-"`
}

// Run executes the anonymization. The returned error is non-nil only when the
// run could not start; it has already been logged. Per-file failures are logged
// and leave the error nil.
func (cmd *AnonymizeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	var logger *logging.Logger
	if appCtx != nil {
		version = appCtx.Version
		logger = appCtx.Logger
	}

	console := cmd.console
	if console == nil {
		console = os.Stderr
	}

	if logger == nil {
		logger = logging.New(console)
		defer func() { _ = logger.Close() }()
	}

	if cmd.LogFile != "" {
		if err := logger.AttachFile(cmd.LogFile); err != nil {
			err = fmt.Errorf("failed to set up log file: %w", err)
			logger.Error("%v", err)
			return err
		}
	}

	algorithm, err := anonymize.ParseAlgorithm(cmd.Algorithm)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	if err := anonymize.ValidateDirectory(cmd.Directory); err != nil {
		logger.Error("%v", err)
		return err
	}

	job := anonymize.Job{
		Directory: cmd.Directory,
		Algorithm: algorithm,
		Prefix:    cmd.Prefix,
		DryRun:    cmd.DryRun,
	}

	fmt.Fprintln(console, ui.HeaderStyle.Render(fmt.Sprintf("File Anonymizer %s", version)))
	if cmd.DryRun {
		fmt.Fprintln(console, ui.ProcessingStyle.Render("🔍 DRY RUN MODE - No files will be modified"))
	}

	if utils.IsNetworkDrive(cmd.Directory) {
		logger.Warn("'%s' looks like a network mount; rename atomicity depends on the remote filesystem", cmd.Directory)
	}

	// The bar owns the console line; INFO records still reach the log file
	if cmd.Progress && !cmd.DryRun {
		job.Tracker = anonymize.NewProgressTracker(console)
		logger.SetConsoleLevel(logging.LevelWarning)
	}

	report, err := anonymize.Run(job, logger)
	logger.SetConsoleLevel(logging.LevelInfo)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	cmd.printSummary(console, report, logger.FilePath())
	logger.Info("%s", report.Counts())
	return nil
}

// printSummary displays final statistics
func (cmd *AnonymizeCmd) printSummary(w io.Writer, report *anonymize.Report, logPath string) {
	counts := report.Counts()

	fmt.Fprintf(w, "\n%s\n", ui.InfoStyle.Render("📊 Summary"))
	if report.DryRun {
		fmt.Fprintf(w, "   Would rename: %d files\n", counts.Previewed)
	} else {
		fmt.Fprintf(w, "   Renamed: %d files\n", counts.Renamed)
	}
	fmt.Fprintf(w, "   Skipped: %d entries\n", counts.Skipped)
	fmt.Fprintf(w, "   Errors: %d files\n", counts.Failed)
	if logPath != "" {
		fmt.Fprintf(w, "   Log file: %s\n", logPath)
	}

	if counts.Failed > 0 {
		for _, f := range report.Failures() {
			fmt.Fprintf(w, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", f.Name, f.Err)))
		}
		return
	}

	fmt.Fprintf(w, "%s\n", ui.SuccessStyle.Render("✅ Processing complete."))
}
