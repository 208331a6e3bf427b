// Package csvparse is a minimal header-driven decoder for the comma
// separated text the FIRMS feed returns. It deliberately does no quote or
// escape handling and no numeric coercion: callers get raw strings keyed by
// header name and apply their own schema.
package csvparse

import "strings"

// Record maps a header name to the raw field text of one row.
type Record map[string]string

// Decode splits text into lines, takes line 0 as the header row, and maps
// every following line positionally onto the header names. Ragged rows get
// "" for the missing trailing fields. A trailing blank line still produces a
// record (with every field empty except the first); filtering it is the
// caller's job.
func Decode(text string) []Record {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(strings.TrimRight(lines[0], "\r"), ",")

	var records []Record
	for _, line := range lines[1:] {
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		rec := make(Record, len(headers))
		for i, name := range headers {
			if i < len(fields) {
				rec[name] = fields[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// Encode is the inverse of Decode for a fixed column order: a header row
// followed by one line per record, fields joined with commas. Values
// containing commas or newlines will not survive a round trip, same as the
// decoder.
func Encode(headers []string, records []Record) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, rec := range records {
		b.WriteString("\n")
		fields := make([]string, len(headers))
		for i, name := range headers {
			fields[i] = rec[name]
		}
		b.WriteString(strings.Join(fields, ","))
	}
	return b.String()
}
