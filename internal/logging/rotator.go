package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// RotatorOptions controls when log files roll over and how long old ones
// are kept.
type RotatorOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.WriteCloser that rolls the file over once it grows
// past MaxSizeMB.
type LogRotator struct {
	mu       sync.Mutex
	dir      string
	name     string
	opts     RotatorOptions
	file     *os.File
	size     int64
	now      func() time.Time
	warnings io.Writer
}

// NewLogRotator opens (or creates) dir/name for appending.
func NewLogRotator(dir, name string, opts RotatorOptions) (*LogRotator, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &LogRotator{
		dir:      dir,
		name:     name,
		opts:     opts,
		now:      time.Now,
		warnings: os.Stderr,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the location of the active log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *LogRotator) maxBytes() int64 {
	return int64(r.opts.MaxSizeMB) * 1024 * 1024
}

func (r *LogRotator) open() error {
	path := r.Path()
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if limit := r.maxBytes(); limit > 0 && r.size+int64(len(p)) > limit {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.warnings, "warning: "+format+"\n", args...)
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		r.warnf("close log file: %v", err)
	}
	r.file = nil

	backup := filepath.Join(r.dir, r.name+"."+r.now().Format("2006-01-02-15-04-05"))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			r.warnf("compress %s: %v", backup, err)
		} else if err := os.Remove(backup); err != nil {
			r.warnf("remove %s: %v", backup, err)
		}
	}

	r.prune()
	r.size = 0
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune drops backups older than MaxAgeDays, then the oldest ones beyond
// MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	maxAge := time.Duration(r.opts.MaxAgeDays) * 24 * time.Hour
	now := r.now()
	var backups []os.FileInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), r.name+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			if err := os.Remove(filepath.Join(r.dir, info.Name())); err != nil {
				r.warnf("remove expired log: %v", err)
			}
			continue
		}
		backups = append(backups, info)
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}

	slices.SortFunc(backups, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	for _, info := range backups[:len(backups)-r.opts.MaxBackups] {
		if err := os.Remove(filepath.Join(r.dir, info.Name())); err != nil {
			r.warnf("remove old log: %v", err)
		}
	}
}

// Close closes the active file.
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
