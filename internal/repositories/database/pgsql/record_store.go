package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dialect builds prepared ($n) PostgreSQL statements.
var dialect = goqu.Dialect("postgres")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE substring pattern,
// escaping the LIKE wildcards the term may contain.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}

// matchAny is a case-insensitive substring match of term against any of cols.
func matchAny(term string, cols ...exp.IdentifierExpression) exp.ExpressionList {
	pattern := containsPattern(term)
	exprs := make([]exp.Expression, len(cols))
	for i, col := range cols {
		exprs[i] = col.ILike(pattern)
	}
	return goqu.Or(exprs...)
}

// countWhere runs SELECT COUNT(*) FROM table WHERE where.
func countWhere(ctx context.Context, q querier, table string, where ...exp.Expression) (int, error) {
	query, args, err := dialect.From(table).
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewStorageError(fmt.Sprintf("failed to build count query on %s", table), err)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewStorageError(fmt.Sprintf("failed to count rows of %s", table), err)
	}
	return int(count), nil
}

// mapWriteError converts constraint violations into their application kinds
// and everything else into a storage error.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.Wrap(apperrors.ErrDuplicate, msg+": already exists")
		case pgForeignKeyViolation:
			return apperrors.Wrap(apperrors.ErrReferentialConflict, msg+": still referenced by loans")
		}
	}
	return apperrors.NewStorageError(msg, err)
}
