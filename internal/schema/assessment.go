package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Assessment records one anonymous session's answers and computed outcome,
// optionally linked to a suggested Disorder.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			MaxLen(255).
			NotEmpty().
			Comment("Anonymous session tracking"),

		field.Text("answers").
			Optional().
			Comment("Serialized raw responses"),

		field.String("result").
			Optional().
			MaxLen(100).
			Comment("Outcome label, e.g. 'low', 'medium', 'high'"),

		field.Float("severity_score").
			Default(0).
			Comment("0-5 scale"),

		field.Int("disorder_id").
			Optional().
			Nillable().
			Comment("FK → disorders.id, NULL when no disorder is suggested"),
	}
}

func (Assessment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("disorder", Disorder.Type).
			Ref("assessments").
			Unique().
			Field("disorder_id"),
	}
}
