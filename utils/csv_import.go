package utils

import (
	"strings"
	"unicode"

	"warehouse-app/models"
)

const DefaultUnit = "BH"

// ParseMaterialCSV reads a semicolon separated batch upload. Each line is
// number;name;unit;stock. Lines with fewer than two fields or an empty
// number or name are skipped. There is no header row.
func ParseMaterialCSV(text string) []models.MaterialInput {
	text = strings.TrimPrefix(text, "\ufeff")

	items := []models.MaterialInput{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if item, ok := materialFromRow(splitCSVLine(line)); ok {
			items = append(items, item)
		}
	}
	return items
}

func materialFromRow(row []string) (models.MaterialInput, bool) {
	if len(row) < 2 || row[0] == "" || row[1] == "" {
		return models.MaterialInput{}, false
	}

	item := models.MaterialInput{
		MaterialNumber: row[0],
		MaterialName:   row[1],
		Unit:           DefaultUnit,
	}
	if len(row) > 2 && row[2] != "" {
		item.Unit = row[2]
	}
	if len(row) > 3 {
		item.CurrentStock = leadingInt(row[3])
	}
	return item, true
}

// splitCSVLine splits on ';'. A field wrapped in single or double quotes is
// taken verbatim and may contain ';'; unquoted fields are trimmed.
func splitCSVLine(line string) []string {
	fields := []string{}
	pos := 0
	for pos < len(line) && strings.TrimSpace(line[pos:]) != "" {
		start := skipSpace(line, pos)

		if value, next, ok := quotedField(line, start); ok {
			fields = append(fields, value)
			pos = next
			continue
		}

		end := strings.IndexByte(line[start:], ';')
		if end < 0 {
			fields = append(fields, strings.TrimSpace(line[start:]))
			break
		}
		fields = append(fields, strings.TrimSpace(line[start:start+end]))
		pos = skipSpace(line, start+end+1)
	}
	return fields
}

// quotedField only matches when the closing quote is followed by the end
// of line or by optional space and ';'.
func quotedField(line string, start int) (string, int, bool) {
	if start >= len(line) || (line[start] != '\'' && line[start] != '"') {
		return "", 0, false
	}
	quote := line[start]

	closing := strings.IndexByte(line[start+1:], quote)
	if closing < 0 {
		return "", 0, false
	}
	closing += start + 1
	value := line[start+1 : closing]

	after := closing + 1
	if after == len(line) {
		return value, after, true
	}
	sep := skipSpace(line, after)
	if sep < len(line) && line[sep] == ';' {
		return value, skipSpace(line, sep+1), true
	}
	return "", 0, false
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r := rune(s[i])
		if r >= 0x80 || !unicode.IsSpace(r) {
			break
		}
		i++
	}
	return i
}

// leadingInt reads an optional sign and the digits that follow, like
// parseInt in a browser. Anything unreadable is 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
