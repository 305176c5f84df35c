// csv.go
package nursepy

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const csvSeparator = ','

// typeSniffLimit caps how many rows the dtype inference looks at.
const typeSniffLimit = 50000

// ReadCSV loads a CSV file into a Frame. Archived inputs (.zip, .gz, .lz4)
// are unpacked on the fly. The first row is analyzed: when it looks like a
// header its cleaned names become the column names, otherwise names are
// generated and the row is kept as data. Column dtypes are inferred from the
// values: all-boolean columns become Bool, all-numeric columns Float64 (empty
// cells turning into NaN), everything else String.
func ReadCSV(filePath string) (*Frame, error) {
	rc, err := openData(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filePath)
	}
	defer rc.Close()
	return readCSV(rc)
}

func readCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = csvSeparator
	reader.LazyQuotes = true

	firstRow, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}
	analysis := AnalyzeHeaders(firstRow)

	records := [][]string{}
	if analysis.FirstRowIsData {
		records = append(records, analysis.FirstDataRow)
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv row")
		}
		records = append(records, row)
	}

	columns := make([]*Series, len(analysis.Headers))
	for i, name := range analysis.Headers {
		cells := make([]string, len(records))
		for j, row := range records {
			if i < len(row) {
				cells[j] = row[i]
			}
		}
		columns[i] = buildSeries(name, cells)
	}
	return NewFrame(columns...)
}

// buildSeries infers the dtype of a raw text column and converts it. The
// priority mirrors the usual type ladder: Bool < Float64 < String, and any
// unparseable non-empty cell demotes the column to String.
func buildSeries(name string, cells []string) *Series {
	allBool := true
	allFloat := true
	nonEmpty := 0
	for i, cell := range cells {
		if i >= typeSniffLimit {
			break
		}
		if cell == "" {
			continue
		}
		nonEmpty++
		if cell != "true" && cell != "false" {
			allBool = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allFloat = false
		}
		if !allBool && !allFloat {
			break
		}
	}

	switch {
	case nonEmpty > 0 && allBool:
		values := make([]bool, len(cells))
		for i, cell := range cells {
			values[i] = cell == "true"
		}
		return NewBoolSeries(name, values)
	case nonEmpty > 0 && allFloat:
		values := make([]float64, len(cells))
		for i, cell := range cells {
			if cell == "" {
				values[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				v = math.NaN()
			}
			values[i] = v
		}
		return NewFloatSeries(name, values)
	default:
		return NewStringSeries(name, append([]string(nil), cells...))
	}
}

// WriteCSV renders the frame to a CSV file. Missing values are written as
// empty cells.
func WriteCSV(f *Frame, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "create %s", filePath)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = csvSeparator
	if err := writer.Write(f.Columns()); err != nil {
		return err
	}
	names := f.Columns()
	for i := 0; i < f.Rows(); i++ {
		row := make([]string, len(names))
		for j, name := range names {
			row[j] = f.Column(name).CellString(i)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
