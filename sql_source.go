// sql_source.go
package nursepy

import (
	"fmt"
	"math"
	"strings"

	"github.com/pivolan/go_utils"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// sqlInsertBatch is how many rows go into a single INSERT statement.
const sqlInsertBatch = 5000

// ColumnInfo is one row of a DESCRIBE TABLE result.
type ColumnInfo struct {
	Name string
	Type string // Int64 Float64 String Nullable(...)
}

func isNumericSQLType(_type string) bool {
	return go_utils.InArray(_type, []string{"Int64", "Float64", "Nullable(Int64)", "Nullable(Float64)"})
}

func getColumnAndTypeList(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	query := fmt.Sprintf("DESCRIBE TABLE %s", tableName)
	tx := db.Raw(query)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var columns []ColumnInfo
	tx.Scan(&columns)
	return columns, nil
}

// LoadSQLTable reads a whole table into a Frame, mapping numeric SQL types to
// Float64 columns and everything else to String.
func LoadSQLTable(db *gorm.DB, tableName string) (*Frame, error) {
	columnsInfo, err := getColumnAndTypeList(db, tableName)
	if err != nil {
		return nil, errors.Wrapf(err, "describe %s", tableName)
	}
	if len(columnsInfo) == 0 {
		return nil, errors.Errorf("table %s has no columns", tableName)
	}

	rows := []map[string]interface{}{}
	tx := db.Raw("SELECT * FROM " + tableName)
	if tx.Error != nil {
		return nil, tx.Error
	}
	tx.Scan(&rows)

	columns := make([]*Series, 0, len(columnsInfo))
	for _, info := range columnsInfo {
		if isNumericSQLType(info.Type) {
			values := make([]float64, len(rows))
			for i, row := range rows {
				values[i] = sqlCellFloat(row[info.Name])
			}
			columns = append(columns, NewFloatSeries(info.Name, values))
			continue
		}
		values := make([]string, len(rows))
		for i, row := range rows {
			if v := row[info.Name]; v != nil {
				values[i] = fmt.Sprint(v)
			}
		}
		columns = append(columns, NewStringSeries(info.Name, values))
	}
	return NewFrame(columns...)
}

func sqlCellFloat(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int64:
		return float64(value)
	case int:
		return float64(value)
	case uint64:
		return float64(value)
	case nil:
		return math.NaN()
	default:
		return math.NaN()
	}
}

// SaveSQLTable writes the frame into a fresh table named after baseName with
// a uuid suffix, so repeated runs never collide. Returns the table name.
func SaveSQLTable(db *gorm.DB, f *Frame, baseName string) (string, error) {
	tableName := sqlTableName(baseName)
	tx := db.Exec(createTableSQL(f, tableName))
	if tx.Error != nil {
		return "", errors.Wrapf(tx.Error, "create table %s", tableName)
	}
	for _, sql := range insertBatchSQL(f, tableName) {
		tx = db.Exec(sql)
		if tx.Error != nil {
			return "", errors.Wrapf(tx.Error, "insert into %s", tableName)
		}
	}
	return tableName, nil
}

func sqlTableName(baseName string) string {
	uid := uuid.NewV4()
	return fmt.Sprintf("%s_%s", replaceSpecialSymbols(baseName), strings.ReplaceAll(uid.String(), "-", "")[:8])
}

// createTableSQL builds a ClickHouse CREATE TABLE statement for the frame.
func createTableSQL(f *Frame, tableName string) string {
	fields := []string{}
	for _, name := range f.Columns() {
		sqlType := "String"
		if f.Column(name).IsNumeric() {
			sqlType = "Float64"
		}
		fields = append(fields, fmt.Sprintf("%s %s", replaceSpecialSymbols(name), sqlType))
	}
	return "CREATE TABLE " + tableName + " (" + strings.Join(fields, ",\n") + ") ENGINE = MergeTree ORDER BY tuple()"
}

// insertBatchSQL renders the frame as batched INSERT ... VALUES statements.
func insertBatchSQL(f *Frame, tableName string) []string {
	names := f.Columns()
	sqls := []string{}
	rows := []string{}
	for i := 0; i < f.Rows(); i++ {
		cells := make([]string, len(names))
		for j, name := range names {
			col := f.Column(name)
			if col.IsNumeric() {
				if col.IsMissing(i) {
					cells[j] = "NULL"
				} else {
					cells[j] = col.CellString(i)
				}
				continue
			}
			cells[j] = "'" + strings.ReplaceAll(col.CellString(i), "'", "''") + "'"
		}
		rows = append(rows, "("+strings.Join(cells, ",")+")")
		if len(rows) == sqlInsertBatch {
			sqls = append(sqls, insertStatement(tableName, names, rows))
			rows = rows[:0]
		}
	}
	if len(rows) > 0 {
		sqls = append(sqls, insertStatement(tableName, names, rows))
	}
	return sqls
}

func insertStatement(tableName string, names []string, rows []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = replaceSpecialSymbols(name)
	}
	return "INSERT INTO " + tableName + " (" + strings.Join(quoted, ",") + ") VALUES " + strings.Join(rows, ",")
}
