// This file implements the two-strategy preset search: an FTS5 MATCH with
// the query quoted as a literal string, downgraded to a LIKE substring scan
// when the index errors or finds nothing.
package sqlite

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Search strategies recorded by searchResult.
const (
	strategyFTS      = "fts"
	strategyFallback = "like"
)

// searchResult captures which strategy produced the ids.
type searchResult struct {
	ids      []string
	strategy string
}

// SearchPresets returns ids of entries matching the query across the
// indexed text columns. The query is always literal text: quotes,
// wildcards, and SQL metacharacters never fault and never modify data.
func (s *Store) SearchPresets(query string) ([]string, error) {
	if err := s.reading(); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}, nil
	}

	result, err := s.searchLocked(query)
	if err != nil {
		return nil, err
	}
	return result.ids, nil
}

// searchLocked runs the FTS strategy and downgrades to the LIKE scan when
// it errors or matches nothing. The downgrade is a recoverable condition
// logged at Debug, never surfaced to the caller.
func (s *Store) searchLocked(query string) (searchResult, error) {
	ids, err := s.searchFTS(query)
	if err == nil && len(ids) > 0 {
		return searchResult{ids: ids, strategy: strategyFTS}, nil
	}
	if err != nil {
		s.log.Debug("full-text search unavailable, falling back to substring scan",
			zap.String("query", query),
			zap.Error(err),
		)
	}

	ids, err = s.searchLike(query)
	if err != nil {
		return searchResult{}, err
	}
	result := searchResult{ids: ids, strategy: strategyFallback}
	s.log.Debug("search complete", zap.String("query", query), zap.Stringer("result", result))
	return result, nil
}

// searchFTS matches the query against the FTS5 index, ordered by rank.
// Quoting the query as a single FTS string literal keeps characters with
// special meaning to the MATCH syntax inert.
func (s *Store) searchFTS(query string) ([]string, error) {
	return s.queryIDs(`SELECT m.id FROM minerals m
        JOIN minerals_fts fts ON m.id = fts.id
        WHERE minerals_fts MATCH ?
        ORDER BY rank`,
		ftsLiteral(query))
}

// searchLike scans the same columns with a case-insensitive substring
// match. LIKE wildcards in the query are escaped so it stays literal text.
func (s *Store) searchLike(query string) ([]string, error) {
	pattern := "%" + escapeLike(query) + "%"
	return s.queryIDs(`SELECT id FROM minerals
        WHERE lower(id) LIKE ? ESCAPE '\'
           OR lower(name) LIKE ? ESCAPE '\'
           OR lower(chemistry) LIKE ? ESCAPE '\'
           OR lower(description) LIKE ? ESCAPE '\'
           OR lower(localities_json) LIKE ? ESCAPE '\'
        ORDER BY id`,
		pattern, pattern, pattern, pattern, pattern)
}

// ftsLiteral quotes a query as one FTS5 string token. Embedded double
// quotes double per the FTS5 grammar.
func ftsLiteral(query string) string {
	return `"` + strings.ReplaceAll(query, `"`, `""`) + `"`
}

// escapeLike escapes the LIKE metacharacters so the query matches
// literally.
func escapeLike(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(query)
}

// String describes the result for diagnostics.
func (r searchResult) String() string {
	return fmt.Sprintf("%d ids via %s", len(r.ids), r.strategy)
}
