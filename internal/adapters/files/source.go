package files

import (
	"context"
	"log/slog"
	"os"

	"contactrouter/internal/domain"
	"contactrouter/internal/logging"
)

// Options locates the reference files on disk.
type Options struct {
	DataDir  string
	ModelDir string
	// SEBIFile pins the SEBI workbook. When empty the default names are
	// searched in DataDir, the working directory and their parents.
	SEBIFile string
}

// Source reads the reference datasets from local spreadsheets. It
// implements ports.BankSource and ports.SEBISource.
type Source struct {
	opts Options
	log  *slog.Logger
}

func New(opts Options) *Source {
	if opts.DataDir == "" {
		opts.DataDir = "data"
	}
	if opts.ModelDir == "" {
		opts.ModelDir = "models"
	}
	return &Source{opts: opts, log: logging.New("files")}
}

// Found is the outcome of looking for one reference file.
type Found struct {
	Key  string
	Path string
	OK   bool
}

// Check reports which reference files are present without parsing them.
func (s *Source) Check() []Found {
	var out []Found
	for _, a := range BankArtifacts {
		p, ok := s.locateArtifact(a)
		out = append(out, Found{Key: a.Key, Path: p, OK: ok})
	}
	p, ok := s.locateSEBI()
	out = append(out, Found{Key: "sebi_data", Path: p, OK: ok})
	return out
}

func (s *Source) locateArtifact(a Artifact) (string, bool) {
	dir := s.opts.DataDir
	if a.InModelDir {
		dir = s.opts.ModelDir
	}
	return locate(searchDirs(dir), a.Names...)
}

func (s *Source) locateSEBI() (string, bool) {
	if s.opts.SEBIFile != "" {
		if fi, err := os.Stat(s.opts.SEBIFile); err == nil && fi.Mode().IsRegular() {
			return s.opts.SEBIFile, true
		}
		return s.opts.SEBIFile, false
	}
	return locate(searchDirs(s.opts.DataDir, "."), SEBIFileNames...)
}

func checkCtx(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domain.LoadErrorf("load cancelled: %v", err)
	}
	return nil
}
