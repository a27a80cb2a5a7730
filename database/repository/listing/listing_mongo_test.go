package listingRepo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func clausePattern(t *testing.T, clause bson.M, field string) string {
	t.Helper()
	cond, ok := clause[field].(bson.M)
	require.True(t, ok, "missing %s clause", field)
	assert.Equal(t, "i", cond["$options"])
	pattern, ok := cond["$regex"].(string)
	require.True(t, ok)
	return pattern
}

func TestQueryClausesMatchMetacharactersLiterally(t *testing.T) {
	clauses := queryClauses("a+b")
	require.Len(t, clauses, 3)

	pattern := clausePattern(t, clauses[0], "title")
	re := regexp.MustCompile("(?i)" + pattern)
	assert.True(t, re.MatchString("A+B Estate"))
	assert.False(t, re.MatchString("ab estate"))
	assert.False(t, re.MatchString("aab estate"))
}

func TestQueryClausesProduceValidPatterns(t *testing.T) {
	for _, query := range []string{"victorian (", "what?", "[tools]", "50% off", `c:\attic`} {
		clauses := queryClauses(query)
		require.Len(t, clauses, 3)
		for _, field := range []string{"title", "address", "categories"} {
			var clause bson.M
			for _, c := range clauses {
				if _, ok := c[field]; ok {
					clause = c
				}
			}
			pattern := clausePattern(t, clause, field)
			re, err := regexp.Compile("(?i)" + pattern)
			require.NoError(t, err, "query %q produced an invalid pattern", query)
			assert.True(t, re.MatchString("prefix "+query+" suffix"))
		}
	}
}
