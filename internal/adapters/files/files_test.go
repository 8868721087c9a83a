package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"contactrouter/internal/domain"
)

func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

var matrixHeader = []string{
	"Sl No", "Bank Name",
	"Official Name (1st Level)", "Mobile Number", "Mail Id",
	"Official Name (2nd Level)", "Mobile Number2", "Mail Id2",
	"Official Name from Technology (1st Level )", "Mobile Number4", "Mail Id4",
	"Official Name (Head or GM)", "Mobile Number6", "Mail Id6",
}

// writeBankBundle lays out a complete bundle under root/data and root/models.
func writeBankBundle(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	writeWorkbook(t, filepath.Join(root, "data", "escalation_matrix.xlsx"), [][]string{
		matrixHeader,
		{"7", "Sample Bank",
			"Asha", "+91 99999-99999", "A@X.com, backup@x.com",
			"", "", "",
			"Ravi", "0", "not an email",
			"Meera", "022 2222 3333", "gm@x.com"},
		{"total", "Summary row"},
		{"8", "Other Bank", "Kiran", "9888877777.0", "kiran@gmail.com"},
	})
	writeFile(t, filepath.Join(root, "data", "routing_features.csv"),
		"Bank_ID,Bank_Name,Region_Code\n7,Sample Bank,11\n8,Other Bank,12\n")
	for _, name := range []string{"routing_model.json", "feature_scaler.json", "feature_columns.json"} {
		writeFile(t, filepath.Join(root, "models", name), "{}")
	}
}

func TestLoadBank(t *testing.T) {
	root := t.TempDir()
	writeBankBundle(t, root)
	src := New(Options{DataDir: filepath.Join(root, "data"), ModelDir: filepath.Join(root, "models")})

	d, err := src.LoadBank(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Entities, 2)
	assert.True(t, d.ModelArtifacts)

	bank, err := d.ByID(7)
	require.NoError(t, err)
	assert.Equal(t, "Sample Bank", bank.Name)
	assert.Equal(t, domain.Contact{Name: "Asha", Phone: "9999999999", Email: "a@x.com"}, bank.Contact(domain.Level1))
	assert.Equal(t, domain.Contact{Name: "Ravi"}, bank.Contact(domain.TechLevel1))
	assert.Equal(t, domain.Contact{}, bank.Contact(domain.Level2))
	assert.Equal(t, "2222223333", bank.Contact(domain.HeadGM).Phone)

	other, err := d.ByID(8)
	require.NoError(t, err)
	assert.Equal(t, "9888877777", other.Contact(domain.Level1).Phone)

	assert.Equal(t, []domain.Organization{{ID: 7, Name: "Sample Bank"}, {ID: 8, Name: "Other Bank"}}, d.Organizations)
}

func TestLoadBankMissingArtifacts(t *testing.T) {
	root := t.TempDir()
	writeBankBundle(t, root)
	require.NoError(t, os.Remove(filepath.Join(root, "models", "routing_model.json")))
	require.NoError(t, os.Remove(filepath.Join(root, "models", "feature_scaler.json")))
	src := New(Options{DataDir: filepath.Join(root, "data"), ModelDir: filepath.Join(root, "models")})

	_, err := src.LoadBank(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Equal(t, "missing bank data files: [routing_model feature_scaler]", err.Error())

	found := map[string]bool{}
	for _, f := range src.Check() {
		found[f.Key] = f.OK
	}
	assert.True(t, found["escalation_matrix"])
	assert.False(t, found["routing_model"])
	assert.False(t, found["sebi_data"])
}

func TestLoadBankRejectsMatrixWithoutIDs(t *testing.T) {
	root := t.TempDir()
	writeBankBundle(t, root)
	writeWorkbook(t, filepath.Join(root, "data", "escalation_matrix.xlsx"), [][]string{{"Bank Name"}, {"Sample Bank"}})
	src := New(Options{DataDir: filepath.Join(root, "data"), ModelDir: filepath.Join(root, "models")})

	_, err := src.LoadBank(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoad)
	assert.Contains(t, err.Error(), "Sl No")
}

func sebiRow(name, state1, addr2, state2 string) []string {
	row := make([]string, len(domain.SEBIColumns))
	row[0] = name
	row[1] = "INP" + strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	row[2] = "R. Iyer"
	row[3] = "1 Marine Drive"
	row[4] = "ops@example.in"
	row[8] = state1
	row[10] = addr2
	row[15] = state2
	row[19] = "India"
	return row
}

func TestLoadSEBIStrict(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "SEBI_DATA.xlsx"), [][]string{
		{"List of Registered Portfolio Managers"},
		domain.SEBIColumns,
		sebiRow("Alpha Advisors", "KA", "", ""),
		sebiRow("Registered Portfolio Managers (contd.)", "", "", ""),
		sebiRow("", "MH", "", ""),
		sebiRow("Beta Capital", "MH", "22 MG Road", "KA"),
	})
	src := New(Options{DataDir: dir})

	d, err := src.LoadSEBI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaStrict, d.Schema)
	require.Len(t, d.Entities, 2)

	assert.Equal(t, domain.EntityID(1), d.Entities[0].ID)
	assert.Equal(t, "Alpha Advisors", d.Entities[0].Name)
	assert.Nil(t, d.Entities[0].Secondary)

	beta, err := d.ByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Beta Capital", beta.Name)
	require.NotNil(t, beta.Secondary)
	assert.Equal(t, "KA", beta.Secondary.State)
	assert.Equal(t, "India", beta.Country)
}

func TestLoadSEBILegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.xlsx")
	writeWorkbook(t, path, [][]string{
		{"Registered Portfolio Managers"},
		{"Name", "Reg", "Person", "Address", "Email", "Phone"},
		{"Alpha Advisors", "INP1", "R. Iyer", "1 Marine Drive", "ops@alpha.in", "022111"},
	})
	src := New(Options{SEBIFile: path})

	d, err := src.LoadSEBI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaLegacy, d.Schema)
	require.Len(t, d.Entities, 1)
	assert.Equal(t, "022111", d.Entities[0].Primary.Telephone)
	assert.Nil(t, d.Entities[0].Secondary)
}

func TestLoadSEBIMissingFile(t *testing.T) {
	src := New(Options{SEBIFile: filepath.Join(t.TempDir(), "nope.xlsx")})
	_, err := src.LoadSEBI(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestNormalize(t *testing.T) {
	phones := map[string]string{
		"":                "",
		"0":               "",
		"+91-98765 43210": "9876543210",
		"1800 425 3800":   "8004253800",
		"12345":           "12345",
	}
	for in, want := range phones {
		assert.Equal(t, want, normalizePhone(in), in)
	}

	assert.Equal(t, "a@x.com", normalizeEmail(" A@X.com , b@x.com"))
	assert.Equal(t, "", normalizeEmail("N/A"))

	id, ok := parseID("12.0")
	assert.True(t, ok)
	assert.Equal(t, 12, id)
	_, ok = parseID("Total")
	assert.False(t, ok)
}

func TestSearchDirs(t *testing.T) {
	assert.Equal(t, []string{"data", filepath.Join("..", "data")}, searchDirs("data"))
	assert.Equal(t, []string{"/srv/data"}, searchDirs("/srv/data"))
	assert.Equal(t, []string{"data", filepath.Join("..", "data"), ".", ".."}, searchDirs("data", "."))
}
