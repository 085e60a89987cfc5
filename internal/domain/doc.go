// Package domain models near-Earth objects (NEOs) and their close approaches
// to Earth.
//
// # Data Sources
//
// NEO records come from the NASA/JPL Small-Body Database, exported as a CSV
// with one row per object. Close-approach records come from the JPL Close
// Approach Data (CAD) service, exported as a JSON array with one entry per
// approach event. The two datasets are produced independently and are joined
// on the NEO's primary designation when the database is built.
//
// # Dataset Conventions
//
// Designation:
//
//	The primary designation is the unique catalog identifier assigned by the
//	IAU Minor Planet Center, e.g. "433" for numbered objects or "2002 PB" for
//	provisional ones. It is the join key between the two datasets and is
//	normalized (trimmed, upper-cased) on load.
//
// Name:
//
//	Most NEOs have no IAU name. An empty name means unnamed; unnamed objects
//	are never matched by name lookups.
//
// Diameter:
//
//	Kilometers. Unknown for the majority of objects. An unknown diameter is
//	represented as NaN, which is distinct from zero and never satisfies a
//	diameter bound in a query.
//
// Hazardous flag:
//
//	The source CSV marks potentially hazardous asteroids with "Y". Any other
//	value, including an empty field, means not (known to be) hazardous.
//
// Approach time:
//
//	The CAD service uses a compact calendar format with an abbreviated month
//	name and no seconds, e.g. "1900-Dec-27 01:30", always UTC. Parsed with
//	[ParseApproachTime]. An approach without a parseable time is rejected at
//	construction because every date query dimension depends on it.
//
// Distance and velocity:
//
//	Approach distance is in astronomical units (au), relative velocity in
//	km/s. Both are required fields.
package domain
