package models

// ConstituencyColumn is the column every input table must carry
const ConstituencyColumn = "constituency"

// RegionColumn is the column added by enrichment
const RegionColumn = "region"

// Record represents one raw input row
type Record struct {
	// Line is the 1-based line the row started on in the source file
	Line   int
	Values []string
}

// Table is a header plus rows in source order
type Table struct {
	Columns []string
	Records []Record
}

// ColumnIndex returns the index of the first column named name, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// EnrichedRecord is a Record with its derived region
type EnrichedRecord struct {
	Record
	Constituency string
	Region       Region
}

// EnrichedTable holds enriched rows alongside the source header.
// Header and Values lay out the output columns.
type EnrichedTable struct {
	Columns []string
	Records []EnrichedRecord
}

// regionIndex returns the position of an existing region column, or -1 when
// the region is appended as a trailing column.
func (t *EnrichedTable) regionIndex() int {
	for i, c := range t.Columns {
		if c == RegionColumn {
			return i
		}
	}
	return -1
}

// Header returns the output header: the source columns plus a trailing
// region column. An existing region column is reused in place.
func (t *EnrichedTable) Header() []string {
	if t.regionIndex() >= 0 {
		return append([]string(nil), t.Columns...)
	}
	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, t.Columns...)
	return append(header, RegionColumn)
}

// Values returns the output fields of row i in Header order
func (t *EnrichedTable) Values(i int) []string {
	rec := t.Records[i]
	if idx := t.regionIndex(); idx >= 0 {
		out := append([]string(nil), rec.Values...)
		out[idx] = string(rec.Region)
		return out
	}
	out := make([]string, 0, len(rec.Values)+1)
	out = append(out, rec.Values...)
	return append(out, string(rec.Region))
}

// Field returns the output value of column name for row i and whether the
// column exists
func (t *EnrichedTable) Field(i int, name string) (string, bool) {
	for j, c := range t.Header() {
		if c == name {
			return t.Values(i)[j], true
		}
	}
	return "", false
}

// Len returns the number of rows
func (t *EnrichedTable) Len() int {
	return len(t.Records)
}
