package file

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	uperrors "arup/internal/errors"
	"arup/pkg/types"
)

// Collection is the ordered result of walking an input path
type Collection struct {
	Root    string               // Absolute input path
	IsDir   bool                 // Whether the input was a directory
	Targets []types.UploadTarget // Files in discovery order
}

// Collector discovers the files below an input path
type Collector struct{}

// NewCollector creates a new file collector
func NewCollector() *Collector {
	return &Collector{}
}

// Collect returns every regular file at or below root.
// Directories are walked depth first; each subdirectory is expanded in place
// before the next sibling entry. Entries within a directory keep os.ReadDir order.
func (c *Collector) Collect(root string) (*Collection, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve %s: %v", uperrors.ErrIO, root, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", uperrors.ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("%w: failed to stat %s: %v", uperrors.ErrIO, root, err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s is not a regular file", uperrors.ErrIO, root)
		}
		name := filepath.Base(root)
		return &Collection{
			Root:  root,
			IsDir: false,
			Targets: []types.UploadTarget{{
				AbsolutePath: root,
				RelativePath: name,
				FileName:     name,
				Size:         info.Size(),
			}},
		}, nil
	}

	collection := &Collection{Root: root, IsDir: true}
	if err := c.walk(root, root, &collection.Targets); err != nil {
		return nil, err
	}
	return collection, nil
}

func (c *Collector) walk(root, dirPath string, targets *[]types.UploadTarget) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("%w: failed to read directory %s: %v", uperrors.ErrIO, dirPath, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(dirPath, entry.Name())

		if entry.IsDir() {
			if err := c.walk(root, childPath, targets); err != nil {
				return err
			}
			continue
		}

		// Stat follows symlinks so the size is that of the target
		info, err := os.Stat(childPath)
		if err != nil {
			return fmt.Errorf("%w: failed to stat %s: %v", uperrors.ErrIO, childPath, err)
		}
		if info.IsDir() {
			log.Printf("Skipping symlinked directory: %s", childPath)
			continue
		}
		if !info.Mode().IsRegular() {
			log.Printf("Skipping special file: %s (%s)", childPath, info.Mode().Type())
			continue
		}

		rel, err := filepath.Rel(root, childPath)
		if err != nil {
			return fmt.Errorf("%w: %v", uperrors.ErrIO, err)
		}

		*targets = append(*targets, types.UploadTarget{
			AbsolutePath: childPath,
			RelativePath: filepath.ToSlash(rel),
			FileName:     entry.Name(),
			Size:         info.Size(),
		})
	}

	return nil
}
