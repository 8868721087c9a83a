package objectstore

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"contactrouter/internal/adapters/files"
	"contactrouter/internal/domain"
)

func TestBankCandidatesMirrorBundleLayout(t *testing.T) {
	cands := bankCandidates("reference/v2", "/var/cache/cr")
	require.Len(t, cands, len(files.BankArtifacts))

	assert.Equal(t, []object{
		{Key: "reference/v2/data/escalation_matrix.xlsx", Path: filepath.Join("/var/cache/cr", "data", "escalation_matrix.xlsx")},
		{Key: "reference/v2/data/escalation_matrix.csv", Path: filepath.Join("/var/cache/cr", "data", "escalation_matrix.csv")},
	}, cands[0])
	assert.Equal(t, "reference/v2/models/routing_model.json", cands[2][0].Key)
}

func TestSEBICandidatesWithoutPrefix(t *testing.T) {
	cands := sebiCandidates("", "cache")
	require.Len(t, cands, 2)
	assert.Equal(t, "data/SEBI_DATA.xlsx", cands[0].Key)
	assert.Equal(t, "data/SEBI DATA.xlsx", cands[1].Key)
	assert.Equal(t, filepath.Join("cache", "data", "SEBI DATA.xlsx"), cands[1].Path)
}

func TestNewDefaultsCacheDir(t *testing.T) {
	s, err := New(Options{Endpoint: "localhost:9000", Bucket: "reference"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.opts.CacheDir)
	assert.False(t, isNotFound(nil))
}

// fakeBucket answers the subset of the S3 API the source uses: bucket
// location, HEAD and GET of single objects.
type fakeBucket struct {
	name    string
	objects map[string][]byte
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("location") {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/"+b.name+"/")
	body, ok := b.objects[key]
	if !ok {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		if r.Method != http.MethodHead {
			fmt.Fprintf(w, `<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>%s</Key><BucketName>%s</BucketName></Error>`, key, b.name)
		}
		return
	}
	sum := md5.Sum(body)
	w.Header().Set("ETag", `"`+hex.EncodeToString(sum[:])+`"`)
	w.Header().Set("Last-Modified", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format(http.TimeFormat))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func newBucketSource(t *testing.T, objects map[string][]byte) *Source {
	t.Helper()
	srv := httptest.NewServer(&fakeBucket{name: "reference", objects: objects})
	t.Cleanup(srv.Close)

	s, err := New(Options{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "reference",
		Prefix:    "ref",
		CacheDir:  t.TempDir(),
	})
	require.NoError(t, err)
	return s
}

func sebiWorkbook(t *testing.T, name string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]string{
		{"List of Registered Portfolio Managers"},
		domain.SEBIColumns,
		{name, "INP000000001", "R. Iyer", "1 Marine Drive", "ops@alpha.example"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func bankObjects() map[string][]byte {
	return map[string][]byte{
		"ref/data/escalation_matrix.csv": []byte("Sl No,Bank Name,Official Name (1st Level),Mobile Number,Mail Id\n" +
			"7,Sample Bank,Asha,9999999999,a@x.com\n"),
		"ref/data/routing_features.csv":   []byte("Bank_ID,Bank_Name\n7,Sample Bank\n"),
		"ref/models/routing_model.json":   []byte("{}"),
		"ref/models/feature_scaler.json":  []byte("{}"),
		"ref/models/feature_columns.json": []byte("{}"),
	}
}

func TestLoadSEBIFromBucket(t *testing.T) {
	s := newBucketSource(t, map[string][]byte{
		"ref/data/SEBI DATA.xlsx": sebiWorkbook(t, "Alpha Advisors"),
	})

	d, err := s.LoadSEBI(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)
	assert.Equal(t, "Alpha Advisors", d.Entities[0].Name)
	assert.Equal(t, domain.SchemaStrict, d.Schema)
}

func TestLoadSEBIIgnoresWorkbooksOutsideTheBucket(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "SEBI_DATA.xlsx"), sebiWorkbook(t, "Local Stale PMS"), 0o644))
	prev, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	s := newBucketSource(t, map[string][]byte{})
	_, err := s.LoadSEBI(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Contains(t, err.Error(), "SEBI data file not found in s3://reference/ref/data")
}

func TestLoadBankFromBucket(t *testing.T) {
	objects := bankObjects()
	s := newBucketSource(t, objects)

	d, err := s.LoadBank(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Entities, 1)
	assert.Equal(t, "Sample Bank", d.Entities[0].Name)
	assert.True(t, d.ModelArtifacts)

	// A removed object must not be served from the cache.
	delete(objects, "ref/models/routing_model.json")
	_, err = s.LoadBank(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Contains(t, err.Error(), "routing_model")
}
