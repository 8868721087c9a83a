package files

import (
	"os"
	"path/filepath"
)

// Artifact is one file the bank bundle needs.
type Artifact struct {
	Key string
	// InModelDir places the artifact beside the model rather than the tables.
	InModelDir bool
	// Names are tried in order; the first that exists wins.
	Names []string
}

// BankArtifacts is the bank bundle. All of them must be present for the
// bank dataset to load; only the two tables are parsed.
var BankArtifacts = []Artifact{
	{Key: "escalation_matrix", Names: []string{"escalation_matrix.xlsx", "escalation_matrix.csv"}},
	{Key: "routing_features", Names: []string{"routing_features.xlsx", "routing_features.csv"}},
	{Key: "routing_model", InModelDir: true, Names: []string{"routing_model.json"}},
	{Key: "feature_scaler", InModelDir: true, Names: []string{"feature_scaler.json"}},
	{Key: "feature_columns", InModelDir: true, Names: []string{"feature_columns.json"}},
}

// SEBIFileNames are the workbook names searched when no SEBI file is configured.
var SEBIFileNames = []string{"SEBI_DATA.xlsx", "SEBI DATA.xlsx"}

// searchDirs returns dir, and for relative dirs also its location one level
// up, so the service finds its data whether started from the repo root or
// from a subdirectory.
func searchDirs(dirs ...string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(d string) {
		d = filepath.Clean(d)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, d := range dirs {
		add(d)
		if !filepath.IsAbs(d) {
			add(filepath.Join("..", d))
		}
	}
	return out
}

// locate returns the first regular file found for any of names across dirs.
func locate(dirs []string, names ...string) (string, bool) {
	for _, name := range names {
		for _, d := range dirs {
			p := filepath.Join(d, name)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				return p, true
			}
		}
	}
	return "", false
}
