// Package neodb links NEOs and close approaches into a single in-memory
// relational model and answers filtered queries over it.
//
// A Database is built once from the loaded entities and is read-only for the
// rest of the process. Construction itself mutates the entities while wiring
// the cross-references and is not safe to run concurrently; once New returns,
// the database may be shared across goroutines without synchronization.
package neodb

import (
	"iter"
	"time"

	"github.com/orbitwatch/neoquery/internal/domain"
)

// Database owns the authoritative NEO and close-approach collections and the
// lookup indexes over them.
type Database struct {
	neos       []*domain.NearEarthObject
	approaches []*domain.CloseApproach

	byDesignation map[string]*domain.NearEarthObject
	byName        map[string]*domain.NearEarthObject

	placeholders int
	builtAt      time.Time
}

// New indexes the given NEOs and links every approach to its NEO.
//
// Designations are assumed unique in the source data; should a duplicate slip
// through, the later record wins, consistent with the name index. Names are
// genuinely not unique in the source data, so the name index is documented
// last-write-wins.
//
// An approach whose designation matches no loaded NEO is never dropped:
// a placeholder NEO carrying only the designation (unnamed, unknown diameter,
// not hazardous) is synthesized and indexed so queries never dereference a
// missing link.
func New(neos []*domain.NearEarthObject, approaches []*domain.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*domain.NearEarthObject, len(neos)),
		byName:        make(map[string]*domain.NearEarthObject),
		builtAt:       clock.Now(),
	}

	for _, neo := range neos {
		db.byDesignation[neo.Designation] = neo
		if neo.Name != "" {
			db.byName[neo.Name] = neo
		}
	}

	for _, ca := range approaches {
		neo, ok := db.byDesignation[ca.Designation]
		if !ok {
			neo = db.addPlaceholder(ca.Designation)
		}
		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
	}

	return db
}

func (db *Database) addPlaceholder(designation string) *domain.NearEarthObject {
	neo, err := domain.NewNearEarthObject(domain.NEORecord{Designation: designation})
	if err != nil {
		// Designation was already validated on the approach; unreachable.
		panic(err)
	}
	db.neos = append(db.neos, neo)
	db.byDesignation[designation] = neo
	db.placeholders++
	return neo
}

// NEOByDesignation returns the NEO with the given primary designation.
// The match is exact against the normalized designations built at load time;
// callers with raw user input should normalize with domain.NormalizeDesignation.
func (db *Database) NEOByDesignation(designation string) (*domain.NearEarthObject, bool) {
	neo, ok := db.byDesignation[designation]
	return neo, ok
}

// NEOByName returns the NEO with the given IAU name. The empty name never
// matches, so unnamed objects are unreachable through this index.
func (db *Database) NEOByName(name string) (*domain.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	neo, ok := db.byName[name]
	return neo, ok
}

// Query returns the close approaches satisfying every given filter, lazily,
// in dataset order. The sequence makes a single pass over the collection, so
// a consumer that stops early (a result limit, say) never scans the
// remainder. The database itself imposes no limit.
func (db *Database) Query(filters ...Filter) iter.Seq[*domain.CloseApproach] {
	return func(yield func(*domain.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !matchesAll(ca, filters) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}

func matchesAll(ca *domain.CloseApproach, filters []Filter) bool {
	for _, f := range filters {
		if !f(ca) {
			return false
		}
	}
	return true
}

// NEOs returns the canonical NEO collection, placeholders included. The
// slice and its elements must not be mutated.
func (db *Database) NEOs() []*domain.NearEarthObject { return db.neos }

// NEOCount reports the number of indexed NEOs, placeholders included.
func (db *Database) NEOCount() int { return len(db.neos) }

// ApproachCount reports the number of linked close approaches.
func (db *Database) ApproachCount() int { return len(db.approaches) }

// PlaceholderCount reports how many placeholder NEOs were synthesized for
// approaches whose designation matched no loaded NEO.
func (db *Database) PlaceholderCount() int { return db.placeholders }

// BuiltAt reports when the database finished linking.
func (db *Database) BuiltAt() time.Time { return db.builtAt }
