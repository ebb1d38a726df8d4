package sqlite

import (
	"database/sql/driver"
	"fmt"

	sqlitedriver "modernc.org/sqlite"

	"github.com/smartchef/smartchef/internal/calculator"
)

// foldFunc is the SQL name of the Unicode-aware title fold.
const foldFunc = "smartchef_fold"

func init() {
	// SQLite's lower() only folds ASCII; titles must match the way the
	// aggregator normalizes names.
	if err := sqlitedriver.RegisterDeterministicScalarFunction(foldFunc, 1, fold); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", foldFunc, err))
	}
}

func fold(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return calculator.NormalizeName(v), nil
	case []byte:
		return calculator.NormalizeName(string(v)), nil
	default:
		return nil, fmt.Errorf("%s expects text, got %T", foldFunc, v)
	}
}
