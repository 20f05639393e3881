package export

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultDelimiter = ","

// Row is one record of the delimited artifact. Fields lists the names
// of the fields present on the row, in the row's own order; Value
// returns the stringified value for a field and whether it is present.
type Row interface {
	Fields() []string
	Value(name string) (string, bool)
}

// Columns returns the output column ordering for a record set: the key
// field first, then every other field name in first-occurrence order
// across the rows. The ordering is stable for identical input order.
func Columns(rows []Row, keyField string) []string {
	cols := []string{keyField}
	seen := map[string]struct{}{keyField: {}}

	for _, row := range rows {
		for _, name := range row.Fields() {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			cols = append(cols, name)
		}
	}

	return cols
}

// Writer serializes a record set into a flat delimited file. Rows with
// a duplicate key keep the first occurrence in input order; output rows
// are sorted ascending by key. Values containing the delimiter are not
// escaped.
type Writer struct {
	keyField  string
	delimiter string
	logger    logrus.FieldLogger
}

func NewWriter(keyField, delimiter string, logger logrus.FieldLogger) *Writer {
	if delimiter == "" {
		delimiter = defaultDelimiter
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Writer{
		keyField:  keyField,
		delimiter: delimiter,
		logger:    logger,
	}
}

func (w *Writer) Write(out io.Writer, rows []Row) error {
	cols := Columns(rows, w.keyField)

	lines := make(map[string][]string, len(rows))
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		key, _ := row.Value(w.keyField)
		if _, ok := lines[key]; ok {
			w.logger.Warnf("ignoring duplicate row for '%s'", key)
			continue
		}

		line := make([]string, 0, len(cols))
		for _, col := range cols {
			val, ok := row.Value(col)
			if !ok {
				val = ""
			}
			line = append(line, val)
		}

		lines[key] = line
		keys = append(keys, key)
	}

	sort.Strings(keys)

	buf := bufio.NewWriter(out)
	if _, err := buf.WriteString(strings.Join(cols, w.delimiter) + "\n"); err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := buf.WriteString(strings.Join(lines[key], w.delimiter) + "\n"); err != nil {
			return err
		}
	}

	return buf.Flush()
}
