// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Disorder is the predicate function for disorder builders.
type Disorder func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Remedy is the predicate function for remedy builders.
type Remedy func(*sql.Selector)
