package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"commentlint/internal/diag"
	"commentlint/internal/source"
)

// Filter selects files in directory mode.
type Filter interface {
	// Matches reports whether a file path should be checked.
	Matches(path string) bool
	// Excluded reports whether a file or directory base name is skipped.
	Excluded(name string) bool
}

// ListFiles возвращает отсортированный список файлов директории, подходящих под фильтр.
func ListFiles(dir string, filter Filter) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && filter.Excluded(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && filter.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every matching file under dir in parallel.
// Per-file failures become diagnostics in the file's result; only listing
// errors and cancellation abort the run. Results follow the sorted file order.
func CheckDir(ctx context.Context, dir string, filter Filter, opts Options) (*source.FileSet, []FileResult, error) {
	phase := opts.Timer.Start("discover")
	files, err := ListFiles(dir, filter)
	phase.Stop(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		log.Infof("no matching files in %s", dir)
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// Загружаем последовательно: FileSet не потокобезопасен.
	phase = opts.Timer.Start("load")
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			log.Warningf("failed to load %s: %v", path, err)
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}
	phase.Stop("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	phase = opts.Timer.Start("check")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[path]; failed {
				results[i] = FileResult{
					Path:        path,
					Err:         loadErr,
					Diagnostics: []diag.Diagnostic{loadDiagnostic(loadErr)},
				}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			results[i] = checkLoaded(path, fileSet.Get(fileIDs[path]), opts)
			return nil
		})
	}
	err = g.Wait()
	phase.Stop(fmt.Sprintf("jobs=%d", jobs))
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
