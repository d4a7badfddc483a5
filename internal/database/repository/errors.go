package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

const pqForeignKeyViolation = pq.ErrorCode("23503")

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
