package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const backupStamp = "20060102T150405.000000000"

// RotatorOptions configures a LogRotator.
type RotatorOptions struct {
	Dir        string // Must exist
	Name       string // Active file name, defaults to splitter.log
	MaxSizeMB  int    // 0 disables rotation
	MaxBackups int    // 0 keeps every backup
	MaxAgeDays int    // 0 keeps backups regardless of age
	Compress   bool
}

// LogRotator is an io.Writer appending to one file and rotating it into a
// timestamped backup (gzipped when Compress is set) once a write would push
// it past MaxSizeMB. Backups are pruned by age and count after each rotation.
type LogRotator struct {
	opts RotatorOptions

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewLogRotator opens or creates the active file.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.Name == "" {
		opts.Name = "splitter.log"
	}
	r := &LogRotator{opts: opts}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.opts.Dir, r.opts.Name)
}

func (r *LogRotator) limit() int64 {
	return int64(r.opts.MaxSizeMB) << 20
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = f, info.Size()
	return nil
}

// Write implements io.Writer. A closed rotator reopens the active file.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if limit := r.limit(); limit > 0 && r.size > 0 && r.size+int64(len(p)) > limit {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close closes the active log file. Later writes reopen it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// rotate moves the active file aside and opens a fresh one. Compression and
// pruning problems are reported on stderr; only losing the active file fails.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "splitter: close log file: %v\n", err)
	}
	r.file = nil

	backup := r.Path() + "." + time.Now().Format(backupStamp)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "splitter: compress %s: %v\n", backup, err)
		}
	}
	for _, err := range r.prune(time.Now()) {
		fmt.Fprintf(os.Stderr, "splitter: prune log backups: %v\n", err)
	}

	return r.open()
}

// prune removes backups older than MaxAgeDays, then the oldest ones beyond
// MaxBackups.
func (r *LogRotator) prune(now time.Time) []error {
	backups, err := listFiles(r.opts.Dir, func(name string) bool {
		return strings.HasPrefix(name, r.opts.Name+".")
	})
	if err != nil {
		return []error{err}
	}

	var errs []error
	remove := func(f fileAge) {
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}

	maxAge := time.Duration(r.opts.MaxAgeDays) * 24 * time.Hour
	kept := backups[:0]
	for _, f := range backups {
		if maxAge > 0 && now.Sub(f.modTime) > maxAge {
			remove(f)
			continue
		}
		kept = append(kept, f)
	}

	if max := r.opts.MaxBackups; max > 0 && len(kept) > max {
		for _, f := range kept[:len(kept)-max] {
			remove(f)
		}
	}
	return errs
}

type fileAge struct {
	path    string
	modTime time.Time
}

// listFiles returns the regular files in dir accepted by match, oldest first.
func listFiles(dir string, match func(name string) bool) ([]fileAge, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []fileAge
	for _, e := range entries {
		if e.IsDir() || !match(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, fileAge{path: filepath.Join(dir, e.Name()), modTime: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})
	return files, nil
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (retErr error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
