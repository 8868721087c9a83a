package files

import (
	"context"
	"path/filepath"

	"contactrouter/internal/domain"
)

// sebiHeaderRow is the zero-based row holding column titles; the row above
// it is a sheet banner.
const sebiHeaderRow = 1

// LoadSEBI reads the SEBI register. Sheets at least as wide as
// domain.SEBIColumns use the strict schema; narrower ones fall back to the
// legacy schema. Blank and banner rows are dropped before ids 1..n are
// assigned.
func (s *Source) LoadSEBI(ctx context.Context) (*domain.SEBIDataset, error) {
	path, ok := s.locateSEBI()
	if !ok {
		return nil, domain.LoadErrorf("SEBI data file not found; expected one of %v", SEBIFileNames)
	}
	rows, err := readTable(path)
	if err != nil {
		return nil, domain.LoadErrorf("SEBI data %s: %v", filepath.Base(path), err)
	}
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	if len(rows) <= sebiHeaderRow {
		return nil, domain.LoadErrorf("SEBI data %s has no header row", filepath.Base(path))
	}

	width := 0
	for _, row := range rows[sebiHeaderRow:] {
		width = max(width, len(row))
	}
	schema := domain.SchemaStrict
	if width < len(domain.SEBIColumns) {
		schema = domain.SchemaLegacy
		s.log.Warn("unexpected number of SEBI columns, using legacy schema",
			"columns", width, "expected", len(domain.SEBIColumns), "file", filepath.Base(path))
	}

	data := rows[sebiHeaderRow+1:]
	entities := make([]domain.SEBIEntity, 0, len(data))
	for _, row := range data {
		if len(row) == 0 || !domain.IsSEBIDataRow(row[0]) {
			continue
		}
		id := domain.EntityID(len(entities) + 1)
		entities = append(entities, domain.SEBIRecordFromRow(schema, id, row))
	}
	s.log.Info("SEBI register read", "file", filepath.Base(path), "entities", len(entities), "schema", schema.String())
	return domain.NewSEBIDataset(schema, entities), nil
}
