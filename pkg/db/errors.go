package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers we branch on.
const (
	mysqlErrNoSuchTable = 1146
	mysqlErrDupEntry    = 1062
)

// IsMissingTable reports whether err means the target table does not
// exist. Classification is by server error number only.
func IsMissingTable(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrNoSuchTable
	}
	return false
}

// IsUniqueViolation reports whether err is a duplicate-key failure.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlErrDupEntry
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
