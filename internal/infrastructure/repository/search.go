package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscape is portable across MySQL and SQLite; backslash is not.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a lower-cased LIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeReplacer.Replace(asciiLower(s)) + "%"
}

// asciiLower folds A-Z only, the same folding SQLite's LOWER applies. On SQLite
// the search is therefore case-insensitive for ASCII letters only; MySQL's
// _ci collations fold the rest.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// whereContainsAny keeps rows where any of columns contains query, ignoring
// case. An empty query leaves tx unchanged.
func whereContainsAny(tx *gorm.DB, query string, columns ...string) *gorm.DB {
	if query == "" || len(columns) == 0 {
		return tx
	}

	pattern := containsPattern(query)
	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, "LOWER("+col+") LIKE ? ESCAPE '"+likeEscape+"'")
		args = append(args, pattern)
	}
	return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
