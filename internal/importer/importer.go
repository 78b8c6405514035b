// Package importer reads program JSON documents and turns them into persisted
// program graphs. It owns the import error taxonomy: the engine itself only
// ever accepts an already-valid graph.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/liftplan/internal/storage"
	"github.com/google/uuid"
)

// Stats tracks import progress across files.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	ProgramsImported  int
	PhasesImported    int
	DaysImported      int
	ExercisesResolved int
}

// Importer reads program .json files and inserts the resulting graphs.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	state  *StateDB
	dryRun bool
	force  bool
	stats  Stats
}

// New creates an Importer. state may be nil to disable change tracking.
func New(db *storage.DB, log *slog.Logger, state *StateDB, dryRun, force bool) *Importer {
	return &Importer{db: db, log: log, state: state, dryRun: dryRun, force: force}
}

// Import processes a single .json file or every .json file in a directory.
func (imp *Importer) Import(ctx context.Context, path string) (*Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return &imp.stats, &ImportError{Kind: KindFile, Err: err}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.json"))
		if err != nil {
			return &imp.stats, &ImportError{Kind: KindFile, Err: err}
		}
	}

	for _, f := range files {
		if err := imp.importFile(ctx, f); err != nil {
			imp.log.Warn("import failed", "file", f, "error", err)
			imp.stats.FilesErrored++
			imp.logOutcome(ctx, f, "error", "", nil, err)
		}
	}

	return &imp.stats, nil
}

// importFile parses, builds and persists one program document.
func (imp *Importer) importFile(ctx context.Context, path string) error {
	start := time.Now()

	size, hash, err := imp.fingerprint(path)
	if err != nil {
		return err
	}
	if imp.state != nil && !imp.force {
		done, err := imp.state.IsImported(filepath.Base(path), size, hash)
		if err != nil {
			return fmt.Errorf("checking import state: %w", err)
		}
		if done {
			imp.log.Info("skipping unchanged file", "file", path)
			imp.stats.FilesSkipped++
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &ImportError{Kind: KindFile, Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return err
	}

	program, err := Build(ctx, doc, imp.resolveExercise)
	if err != nil {
		return err
	}
	program.CreatedAt = time.Now()
	program.UpdatedAt = program.CreatedAt

	days := 0
	for _, ph := range program.Phases {
		for _, w := range ph.Weeks {
			days += len(w.Days)
		}
	}

	imp.stats.FilesProcessed++
	if imp.dryRun {
		imp.stats.ProgramsImported++
		imp.stats.PhasesImported += len(program.Phases)
		imp.stats.DaysImported += days
		return nil
	}

	if err := imp.db.SaveProgram(ctx, program); err != nil {
		return fmt.Errorf("saving program %q: %w", program.Name, err)
	}

	imp.stats.ProgramsImported++
	imp.stats.PhasesImported += len(program.Phases)
	imp.stats.DaysImported += days

	if imp.state != nil {
		if err := imp.state.MarkImported(filepath.Base(path), size, hash); err != nil {
			imp.log.Warn("recording import state failed", "file", path, "error", err)
		}
	}

	durationMs := int(time.Since(start).Milliseconds())
	imp.logOutcome(ctx, path, "success", program.Name, &durationMs, nil)
	imp.log.Info("program imported", "file", filepath.Base(path), "program", program.Name,
		"phases", len(program.Phases), "days", days)
	return nil
}

func (imp *Importer) fingerprint(path string) (int64, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, "", &ImportError{Kind: KindFile, Err: err}
	}
	hash, err := HashFile(path)
	if err != nil {
		return 0, "", &ImportError{Kind: KindFile, Err: err}
	}
	return info.Size(), hash, nil
}

// resolveExercise looks up a catalog exercise by name, counting hits.
func (imp *Importer) resolveExercise(ctx context.Context, name string) (uuid.UUID, error) {
	ex, err := imp.db.GetExerciseByName(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	imp.stats.ExercisesResolved++
	return ex.ID, nil
}

// logOutcome writes an import_logs row; failures to do so are non-fatal.
func (imp *Importer) logOutcome(ctx context.Context, path, status, programName string, durationMs *int, cause error) {
	if imp.dryRun || imp.db == nil {
		return
	}
	entry := storage.ImportLog{
		Source:            filepath.Base(path),
		Status:            status,
		ProgramName:       programName,
		PhasesImported:    imp.stats.PhasesImported,
		DaysImported:      imp.stats.DaysImported,
		ExercisesResolved: imp.stats.ExercisesResolved,
		DurationMs:        durationMs,
	}
	if cause != nil {
		msg := cause.Error()
		entry.ErrorMessage = &msg
	}
	if _, err := imp.db.InsertImportLog(ctx, entry); err != nil {
		imp.log.Warn("writing import log failed", "file", path, "error", err)
	}
}
