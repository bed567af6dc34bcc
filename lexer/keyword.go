package lexer

import "strings"

/*
keywords is the closed set of reserved words recognized case-insensitively.
A backtick-quoted identifier always lexes as TokenIdentifier even if its
text matches an entry here.
*/
var keywords = buildKeywordSet(
	"MATCH OPTIONAL CREATE MERGE DELETE DETACH REMOVE SET",
	"WITH UNWIND FOREACH LOAD CSV HEADERS FROM AS USING PERIODIC COMMIT FIELDTERMINATOR SCAN",
	"RETURN ORDER BY SKIP LIMIT ASC ASCENDING DESC DESCENDING DISTINCT",
	"UNION ALL CALL YIELD START WHERE",
	"AND OR XOR NOT IN STARTS ENDS CONTAINS IS NULL TRUE FALSE",
	"COUNT CASE WHEN THEN ELSE END EXISTS",
	"ON ASSERT UNIQUE INDEX CONSTRAINT DROP",
	"REDUCE FILTER EXTRACT ANY NONE SINGLE",
)

func buildKeywordSet(groups ...string) map[string]bool {
	set := map[string]bool{}
	for _, g := range groups {
		for _, w := range strings.Fields(g) {
			set[w] = true
		}
	}
	return set
}

/*
isKeyword reports whether upper is a reserved word. Callers pass the
already-upper-cased candidate text.
*/
func isKeyword(upper string) bool {
	return keywords[upper]
}
