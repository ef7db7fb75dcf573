package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Remedy is a treatment entry attached to a Disorder.
type Remedy struct {
	ent.Schema
}

func (Remedy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Remedy) Fields() []ent.Field {
	return []ent.Field{
		field.Int("disorder_id").
			Comment("FK → disorders.id"),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional(),

		field.String("category").
			Optional().
			MaxLen(100).
			Comment("e.g. 'therapy', 'medication', 'lifestyle'"),
	}
}

func (Remedy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("disorder", Disorder.Type).
			Ref("remedies").
			Unique().
			Required().
			Field("disorder_id"),
	}
}
