package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Question is an assessment questionnaire item.
type Question struct {
	ent.Schema
}

func (Question) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreatedAtMixin{},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty(),

		field.String("category").
			Optional().
			MaxLen(100).
			Comment("e.g. 'mood', 'sleep', 'energy', 'appetite', 'interest'"),

		field.Int("weight").
			Default(1).
			Comment("Importance weight for scoring"),

		field.Int("order_index").
			Default(0).
			Comment("Display order"),

		field.Bool("is_active").
			Default(true),
	}
}
