// Package csvparse tokenizes centrales CSV exports. It is deliberately more
// forgiving than encoding/csv: the delimiter is auto-detected from the header
// (comma vs semicolon), records may have ragged field counts, and stray
// quotes never abort the parse. Splitting is a pure function of the input.
package csvparse

import "strings"

// Tokenize splits raw CSV content into records of trimmed fields. The first
// record decides the delimiter for the whole document. Empty and
// whitespace-only records are discarded; quoted fields may contain the
// delimiter, doubled quotes, and embedded newlines.
func Tokenize(content string) [][]string {
	records := splitRecords(content)
	if len(records) == 0 {
		return nil
	}

	delim := DetectDelimiter(records[0])
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = splitFields(rec, delim)
	}
	return rows
}

// DetectDelimiter counts commas and semicolons in the header record and
// picks the semicolon only when it occurs more often.
func DetectDelimiter(header string) byte {
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

// splitRecords normalizes line endings, strips a BOM, and splits on newlines
// that sit outside quoted fields. Doubled quotes inside a quoted field are
// kept verbatim for splitFields to collapse.
func splitRecords(content string) []string {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var records []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(content); i++ {
		c := content[i]

		if c == '"' {
			if inQuotes && i+1 < len(content) && content[i+1] == '"' {
				current.WriteString(`""`)
				i++
				continue
			}
			inQuotes = !inQuotes
			current.WriteByte(c)
			continue
		}

		if c == '\n' && !inQuotes {
			records = append(records, current.String())
			current.Reset()
			continue
		}

		current.WriteByte(c)
	}
	if current.Len() > 0 {
		records = append(records, current.String())
	}

	kept := records[:0]
	for _, r := range records {
		if strings.TrimSpace(r) != "" {
			kept = append(kept, r)
		}
	}
	return kept
}

// splitFields splits one record into trimmed fields. A doubled quote inside
// a quoted field collapses to one literal quote; an unquoted delimiter ends
// the field.
func splitFields(record string, delim byte) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(record); i++ {
		c := record[i]

		if c == '"' {
			if inQuotes && i+1 < len(record) && record[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
			continue
		}

		if c == delim && !inQuotes {
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}

		current.WriteByte(c)
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
