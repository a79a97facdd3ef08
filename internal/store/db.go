package store

import (
	"context"
	"database/sql"
	"strconv"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Getter interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

type Selecter interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type DB interface {
	Execer
	Getter
	Selecter
}

type Tx interface {
	Execer
	Getter
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func derefStringPtr(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
