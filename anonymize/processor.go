package anonymize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Run anonymizes the names of the regular files directly inside job.Directory.
//
// The only error returned is *InvalidDirectoryError, before anything is touched.
// Per-file failures are logged, recorded in the report and never stop the run.
// Renames are independent: there is no rollback if a later file fails.
func Run(job Job, log Logger) (*Report, error) {
	if err := ValidateDirectory(job.Directory); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(job.Directory)
	if err != nil {
		return nil, &InvalidDirectoryError{Path: job.Directory, Err: err}
	}

	tracker := job.Tracker
	if tracker == nil {
		tracker = noopTracker{}
	}

	// names occupied in the directory as the run progresses, so a dry run
	// reports the same collisions a real run would hit
	present := make(map[string]bool, len(entries))
	regular := 0
	for _, entry := range entries {
		present[entry.Name()] = true
		if entry.Type().IsRegular() {
			regular++
		}
	}

	report := &Report{Directory: job.Directory, DryRun: job.DryRun}

	tracker.Start(regular)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			report.add(FileOutcome{Name: entry.Name(), Status: StatusSkipped, Reason: describeType(entry.Type())})
			continue
		}

		outcome := processFile(job, entry.Name(), present, log)
		report.add(outcome)
		tracker.Advance(entry.Name())
	}
	tracker.Finish()

	return report, nil
}

// processFile derives the new name for one regular file and previews or performs the rename
func processFile(job Job, name string, present map[string]bool, log Logger) FileOutcome {
	newName, err := ComputeName(RenameRequest{OriginalName: name, Algorithm: job.Algorithm, Prefix: job.Prefix})
	if err != nil {
		log.Error("%v", err)
		return FileOutcome{Name: name, Status: StatusFailed, Err: err}
	}

	if newName == name {
		log.Info("Skipping '%s': already anonymized", name)
		return FileOutcome{Name: name, NewName: newName, Status: StatusSkipped, Reason: "already anonymized"}
	}

	oldPath := filepath.Join(job.Directory, name)
	newPath := filepath.Join(job.Directory, newName)

	if err := checkTarget(newPath, newName, present, job.DryRun); err != nil {
		renameErr := &RenameError{From: name, To: newName, Err: err}
		log.Error("%v", renameErr)
		return FileOutcome{Name: name, NewName: newName, Status: StatusFailed, Err: renameErr}
	}

	if job.DryRun {
		log.Info("[Dry Run] Would rename '%s' to '%s'", name, newName)
		claim(present, name, newName)
		return FileOutcome{Name: name, NewName: newName, Status: StatusPreviewed}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		renameErr := &RenameError{From: name, To: newName, Err: unwrapLinkError(err)}
		log.Error("%v", renameErr)
		return FileOutcome{Name: name, NewName: newName, Status: StatusFailed, Err: renameErr}
	}

	log.Info("Renamed '%s' to '%s'", name, newName)
	claim(present, name, newName)
	return FileOutcome{Name: name, NewName: newName, Status: StatusRenamed}
}

// checkTarget refuses targets that are already taken, either by an entry seen at listing time,
// by an earlier rename in this run or, for real runs, by anything created since the listing.
func checkTarget(newPath, newName string, present map[string]bool, dryRun bool) error {
	if present[newName] {
		return ErrTargetExists
	}
	if dryRun {
		return nil
	}

	_, err := os.Lstat(newPath)
	switch {
	case err == nil:
		return ErrTargetExists
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to check target: %w", err)
	}
}

func claim(present map[string]bool, oldName, newName string) {
	delete(present, oldName)
	present[newName] = true
}

// unwrapLinkError drops the *os.LinkError wrapper, whose message repeats both full paths
func unwrapLinkError(err error) error {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}

func describeType(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return "directory"
	case mode&fs.ModeSymlink != 0:
		return "symlink"
	default:
		return "not a regular file"
	}
}
