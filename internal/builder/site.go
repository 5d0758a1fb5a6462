// internal/builder/site.go
package builder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"landingkit/internal/document"
	"landingkit/internal/validate"
)

type BuildOptions struct {
	CleanDestination bool
}

// BuildSite writes the asset-folder layout, unpacked, into outputDir and
// returns the number of files written.
func (b *Builder) BuildSite(ctx context.Context, doc document.Document, fs afero.Fs, outputDir string, opts BuildOptions) (int, error) {
	if err := validate.Document(doc); err != nil {
		return 0, err
	}
	if b.Fetcher == nil {
		return 0, fmt.Errorf("%w: no asset fetcher configured", ErrAssembly)
	}
	if err := fs.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}

	if opts.CleanDestination {
		b.log().Debug("cleaning destination directory", zap.String("dir", outputDir))
		entries, err := afero.ReadDir(fs, outputDir)
		if err != nil {
			return 0, err
		}
		for _, entry := range entries {
			if err := fs.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
				return 0, err
			}
		}
	}

	files, err := b.folderFiles(ctx, doc.Clone())
	if err != nil {
		return 0, err
	}

	written := 0
	for _, f := range files {
		dest := filepath.Join(outputDir, filepath.FromSlash(f.Path))
		if err := fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, err
		}
		if err := afero.WriteFile(fs, dest, f.Data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		written++
	}
	return written, nil
}
