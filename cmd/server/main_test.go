package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixCSV = `Sl No,Bank Name,Official Name (1st Level),Mobile Number,Mail Id,Official Name from Technology (1st Level ),Mobile Number4,Mail Id4
7,Sample Bank,Asha,+91 99999-99999,a@x.com,Ravi,,ravi@x.com
`

func writeBundle(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"data/escalation_matrix.csv":  matrixCSV,
		"data/routing_features.csv":   "Bank_ID,Bank_Name\n7,Sample Bank\n",
		"models/routing_model.json":   "{}",
		"models/feature_scaler.json":  "{}",
		"models/feature_columns.json": "{}",
	}
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func useBundle(t *testing.T, root string) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("REFERENCE_SOURCE", "files")
	t.Setenv("DATA_DIR", filepath.Join(root, "data"))
	t.Setenv("MODEL_DIR", filepath.Join(root, "models"))
	t.Setenv("SEBI_DATA_FILE", filepath.Join(root, "data", "absent.xlsx"))
	t.Setenv("LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckReportsLoadedBankData(t *testing.T) {
	useBundle(t, writeBundle(t))

	out, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Bank data:     true")
	assert.Contains(t, out, "Routing model: true")
	assert.Contains(t, out, "SEBI data:     false")
	assert.Contains(t, out, "Warning:")
}

func TestCheckFailsWithoutAnyData(t *testing.T) {
	useBundle(t, t.TempDir())

	out, err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reference data could be loaded")
	assert.Contains(t, out, "escalation_matrix")
	assert.Contains(t, out, "missing")
}

func TestRouteBank(t *testing.T) {
	useBundle(t, writeBundle(t))

	out, err := execute(t, "route", "bank", "--id", "7", "--category", "Technical_Error", "--severity", "Low")
	require.NoError(t, err)
	assert.Contains(t, out, "Bank:       Sample Bank")
	assert.Contains(t, out, "Level:      Tech_Level_1")
	assert.Contains(t, out, "Contact:    Ravi")
	assert.Contains(t, out, "Phone:      Not Available")
	assert.Contains(t, out, "Confidence: 65.0")
}

func TestRouteBankRejectsUnknownSeverity(t *testing.T) {
	useBundle(t, writeBundle(t))

	_, err := execute(t, "route", "bank", "--id", "7", "--category", "Fraud_Alert", "--severity", "Urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown severity "Urgent"`)
}
