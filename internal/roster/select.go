package roster

// Select returns every row whose name column equals name exactly
// (case-sensitive), in table order. No match yields an empty RowSet.
func Select(t *Table, name string) RowSet {
	rs := RowSet{Columns: t.Columns, Rows: []Row{}}
	for _, row := range t.Rows {
		if row.Value(t.NameColumn) == name {
			rs.Rows = append(rs.Rows, row)
		}
	}
	return rs
}

// SelectMany returns the union of the rows matching any of names, in table
// order regardless of the order names were given. Repeated names are
// ignored. missing lists, in the order given, the names that matched no row.
func SelectMany(t *Table, names []string) (rs RowSet, missing []string) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = false
	}

	rs = RowSet{Columns: t.Columns, Rows: []Row{}}
	for _, row := range t.Rows {
		name := row.Value(t.NameColumn)
		if _, ok := wanted[name]; ok {
			wanted[name] = true
			rs.Rows = append(rs.Rows, row)
		}
	}

	missing = []string{}
	reported := make(map[string]bool, len(names))
	for _, n := range names {
		if !wanted[n] && !reported[n] {
			reported[n] = true
			missing = append(missing, n)
		}
	}
	return rs, missing
}
