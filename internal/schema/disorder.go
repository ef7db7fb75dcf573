package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Disorder is a catalog entry for a mental-health condition.
// Names are unique across the catalog.
type Disorder struct {
	ent.Schema
}

func (Disorder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Disorder) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Unique(),

		field.Text("description").
			Optional(),

		field.Text("symptoms").
			Optional().
			Comment("Free-text symptom list"),
	}
}

func (Disorder) Edges() []ent.Edge {
	return []ent.Edge{
		// Remedies live and die with their disorder.
		edge.To("remedies", Remedy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		// Assessments survive a disorder delete; the reference is nulled.
		edge.To("assessments", Assessment.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}
