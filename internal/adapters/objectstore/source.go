package objectstore

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"contactrouter/internal/adapters/files"
	"contactrouter/internal/domain"
	"contactrouter/internal/logging"
)

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// Prefix holds data/ and models/ in the same layout as the local bundle.
	Prefix   string
	UseSSL   bool
	CacheDir string
}

// Source mirrors the reference bundle from a bucket into CacheDir and
// parses the local copy with the files adapter.
type Source struct {
	client *minio.Client
	opts   Options
	local  *files.Source
	log    *slog.Logger
}

func New(opts Options) (*Source, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	if opts.CacheDir == "" {
		opts.CacheDir = filepath.Join(os.TempDir(), "contactrouter")
	}
	// the files loader also searches the parent of relative dirs
	if opts.CacheDir, err = filepath.Abs(opts.CacheDir); err != nil {
		return nil, err
	}
	return &Source{
		client: client,
		opts:   opts,
		local: files.New(files.Options{
			DataDir:  filepath.Join(opts.CacheDir, "data"),
			ModelDir: filepath.Join(opts.CacheDir, "models"),
		}),
		log: logging.New("objectstore"),
	}, nil
}

// object is one remote key and the cache path it is mirrored to.
type object struct {
	Key  string
	Path string
}

// bankCandidates lists, per artifact, the objects to try in order.
func bankCandidates(prefix, cacheDir string) [][]object {
	out := make([][]object, 0, len(files.BankArtifacts))
	for _, a := range files.BankArtifacts {
		dir := "data"
		if a.InModelDir {
			dir = "models"
		}
		out = append(out, objectsFor(prefix, cacheDir, dir, a.Names))
	}
	return out
}

func sebiCandidates(prefix, cacheDir string) []object {
	return objectsFor(prefix, cacheDir, "data", files.SEBIFileNames)
}

func objectsFor(prefix, cacheDir, dir string, names []string) []object {
	objs := make([]object, 0, len(names))
	for _, n := range names {
		objs = append(objs, object{
			Key:  path.Join(prefix, dir, n),
			Path: filepath.Join(cacheDir, dir, n),
		})
	}
	return objs
}

func (s *Source) LoadBank(ctx context.Context) (*domain.BankDataset, error) {
	for _, objs := range bankCandidates(s.opts.Prefix, s.opts.CacheDir) {
		if _, _, err := s.mirrorFirst(ctx, objs); err != nil {
			return nil, err
		}
	}
	return s.local.LoadBank(ctx)
}

// LoadSEBI parses only the sheet mirrored from the bucket, never a
// workbook found elsewhere on disk.
func (s *Source) LoadSEBI(ctx context.Context) (*domain.SEBIDataset, error) {
	p, ok, err := s.mirrorFirst(ctx, sebiCandidates(s.opts.Prefix, s.opts.CacheDir))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.LoadErrorf("SEBI data file not found in s3://%s/%s", s.opts.Bucket, path.Join(s.opts.Prefix, "data"))
	}
	return files.New(files.Options{SEBIFile: p}).LoadSEBI(ctx)
}

// mirrorFirst downloads the first candidate that exists in the bucket and
// removes cached copies of the others, so the local loader sees exactly
// what the bucket holds. It returns the cache path of the mirrored object;
// ok is false when no candidate exists.
func (s *Source) mirrorFirst(ctx context.Context, objs []object) (p string, ok bool, err error) {
	for _, o := range objs {
		if ok {
			s.removeStale(o.Path)
			continue
		}
		_, err := s.client.StatObject(ctx, s.opts.Bucket, o.Key, minio.StatObjectOptions{})
		if isNotFound(err) {
			s.removeStale(o.Path)
			continue
		}
		if err != nil {
			return "", false, domain.LoadErrorf("stat s3://%s/%s: %v", s.opts.Bucket, o.Key, err)
		}
		if err := s.client.FGetObject(ctx, s.opts.Bucket, o.Key, o.Path, minio.GetObjectOptions{}); err != nil {
			return "", false, domain.LoadErrorf("download s3://%s/%s: %v", s.opts.Bucket, o.Key, err)
		}
		s.log.Debug("reference object mirrored", "key", o.Key, "path", o.Path)
		p, ok = o.Path, true
	}
	return p, ok, nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

func (s *Source) removeStale(p string) {
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("could not remove stale cached object", "path", p, "err", err)
	}
}
