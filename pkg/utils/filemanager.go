// =============================================================================
// EventAlytics - File Manager
// =============================================================================
//
// Utilities for the directories the pipeline works with: discovering order
// exports in the input directory, bootstrapping the directory layout, and
// archiving processed exports so the same file is never analyzed twice.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileManager handles the input, output and archive directories.
type FileManager struct {
	InputDir   string
	OutputDir  string
	ArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(inputDir, outputDir, archiveDir string) *FileManager {
	return &FileManager{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates any of the managed directories that do not
// exist yet.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DiscoverInputFiles scans the input directory recursively for order
// exports (.csv and .xlsx).
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	var files []string

	err := filepath.Walk(fm.InputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".xlsx":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}
	return files, nil
}

// ArchiveInputFile moves a processed export into the archive directory and
// returns its new path. An existing archive entry with the same name is
// never overwritten; a timestamp suffix disambiguates.
func (fm *FileManager) ArchiveInputFile(path string) (string, error) {
	if err := os.MkdirAll(fm.ArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	target := filepath.Join(fm.ArchiveDir, filepath.Base(path))
	if FileExists(target) {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(filepath.Base(path), ext)
		target = filepath.Join(fm.ArchiveDir,
			fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if err := os.Rename(path, target); err != nil {
		if err := copyFile(path, target); err != nil {
			return "", fmt.Errorf("failed to archive %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to remove archived original: %w", err)
		}
	}
	return target, nil
}

// copyFile copies src to dst, preserving the file mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
