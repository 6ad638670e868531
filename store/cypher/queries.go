package cypher

import "github.com/flixgraph/flixgraph"

// All queries are fixed constants with $-parameters; caller-supplied values
// only ever travel through the parameter map.

const queryTitleExists = `
MATCH (t:Title {title: $title})
RETURN count(t) > 0 AS exists`

// Candidate generation is genre-gated: only titles sharing at least one
// genre with the source are scored. Actor and director overlaps are optional
// matches so candidates without them still surface with zero counts.
const queryGenreOverlaps = `
MATCH (s:Title {title: $title})-[:HAS_GENRE]->(g:Genre)<-[:HAS_GENRE]-(c:Title)
WHERE c <> s
WITH s, c, count(DISTINCT g) AS genreMatches
OPTIONAL MATCH (a:Actor)-[:ACTED_IN]->(s), (a)-[:ACTED_IN]->(c)
WITH s, c, genreMatches, count(DISTINCT a) AS actorMatches
OPTIONAL MATCH (s)-[:DIRECTED_BY]->(d:Director)<-[:DIRECTED_BY]-(c)
WITH c, genreMatches, actorMatches, count(DISTINCT d) AS directorMatches
RETURN c.title AS title,
       genreMatches,
       actorMatches,
       directorMatches`

const queryTitleDetails = `
MATCH (t:Title {title: $title})
OPTIONAL MATCH (t)-[:HAS_GENRE]->(g:Genre)
OPTIONAL MATCH (a:Actor)-[:ACTED_IN]->(t)
OPTIONAL MATCH (t)-[:DIRECTED_BY]->(d:Director)
OPTIONAL MATCH (t)-[:PRODUCED_IN]->(c:Country)
RETURN t.title AS title,
       t.release_year AS release_year,
       t.rating AS rating,
       t.duration AS duration,
       t.content_type AS content_type,
       t.description AS description,
       collect(DISTINCT g.name) AS genres,
       collect(DISTINCT a.name) AS actors,
       collect(DISTINCT d.name) AS directors,
       collect(DISTINCT c.name) AS countries`

// neighborQueries maps each relation to its traversal. The relation type is
// a closed enum selecting a constant, so no query text is ever assembled
// from input.
var neighborQueries = map[flixgraph.Relation]string{
	flixgraph.RelActedIn: `
MATCH (a:Actor)-[:ACTED_IN]->(:Title {title: $title})
RETURN a.name AS name
ORDER BY name`,
	flixgraph.RelDirectedBy: `
MATCH (:Title {title: $title})-[:DIRECTED_BY]->(d:Director)
RETURN d.name AS name
ORDER BY name`,
	flixgraph.RelHasGenre: `
MATCH (:Title {title: $title})-[:HAS_GENRE]->(g:Genre)
RETURN g.name AS name
ORDER BY name`,
	flixgraph.RelProducedIn: `
MATCH (:Title {title: $title})-[:PRODUCED_IN]->(c:Country)
RETURN c.name AS name
ORDER BY name`,
}

const queryNodeCounts = `
MATCH (n)
RETURN labels(n)[0] AS label, count(n) AS count
ORDER BY count DESC, label ASC`

const queryRelationshipCounts = `
MATCH ()-[r]->()
RETURN type(r) AS type, count(r) AS count
ORDER BY count DESC, type ASC`

const queryTopActors = `
MATCH (a:Actor)-[:ACTED_IN]->(t:Title)
RETURN a.name AS name, count(DISTINCT t) AS titles
ORDER BY titles DESC, name ASC
LIMIT $limit`

const queryTopDirectors = `
MATCH (t:Title)-[:DIRECTED_BY]->(d:Director)
RETURN d.name AS name, count(DISTINCT t) AS titles
ORDER BY titles DESC, name ASC
LIMIT $limit`

const queryGenreDistribution = `
MATCH (t:Title)-[:HAS_GENRE]->(g:Genre)
RETURN g.name AS name, count(DISTINCT t) AS titles
ORDER BY titles DESC, name ASC`

const queryYearDistribution = `
MATCH (t:Title)
RETURN t.release_year AS year, count(t) AS titles
ORDER BY year ASC`

const queryContentTypeSplit = `
MATCH (t:Title)
RETURN t.content_type AS type, count(t) AS titles
ORDER BY titles DESC`

const querySearchTitles = `
MATCH (t:Title)
WHERE toLower(t.title) CONTAINS toLower($q)
RETURN t.title AS title
ORDER BY title ASC`
