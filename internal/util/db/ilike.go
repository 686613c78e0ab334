package db

import (
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// ILike builds a case-insensitive LIKE filter on the fully qualified column.
func ILike(value string, tableAndColumn ...string) qm.QueryMod {
	return qm.Where(fmt.Sprintf("%s ILIKE ?", qualify(tableAndColumn...)), value)
}

// ILikeSearch splits the search term on whitespace and matches every escaped
// fragment as substring, AND combined.
func ILikeSearch(search string, tableAndColumn ...string) qm.QueryMod {
	fragments := strings.Fields(strings.TrimSpace(search))
	mods := make([]qm.QueryMod, 0, len(fragments))

	for _, fragment := range fragments {
		mods = append(mods, ILike("%"+EscapeLike(fragment)+"%", tableAndColumn...))
	}

	return qm.Expr(mods...)
}

// EscapeLike escapes the LIKE metacharacters % and _.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")

	return s
}

// InnerJoin joins two tables on the given columns.
func InnerJoin(table string, column string, joinTable string, joinColumn string) qm.QueryMod {
	return qm.InnerJoin(fmt.Sprintf("%s ON %s.%s = %s.%s", joinTable, joinTable, joinColumn, table, column))
}

func qualify(tableAndColumn ...string) string {
	return strings.Join(tableAndColumn, ".")
}
