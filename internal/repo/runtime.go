// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/mindcare/mindcare_backend/internal/repo/assessment"
	"github.com/mindcare/mindcare_backend/internal/repo/disorder"
	"github.com/mindcare/mindcare_backend/internal/repo/question"
	"github.com/mindcare/mindcare_backend/internal/repo/remedy"
	"github.com/mindcare/mindcare_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentMixin := schema.Assessment{}.Mixin()
	assessmentMixinFields0 := assessmentMixin[0].Fields()
	_ = assessmentMixinFields0
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescCreatedAt is the schema descriptor for created_at field.
	assessmentDescCreatedAt := assessmentMixinFields0[0].Descriptor()
	// assessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessment.DefaultCreatedAt = assessmentDescCreatedAt.Default.(func() time.Time)
	// assessmentDescSessionID is the schema descriptor for session_id field.
	assessmentDescSessionID := assessmentFields[0].Descriptor()
	// assessment.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessment.SessionIDValidator = func() func(string) error {
		validators := assessmentDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmentDescResult is the schema descriptor for result field.
	assessmentDescResult := assessmentFields[2].Descriptor()
	// assessment.ResultValidator is a validator for the "result" field. It is called by the builders before save.
	assessment.ResultValidator = assessmentDescResult.Validators[0].(func(string) error)
	// assessmentDescSeverityScore is the schema descriptor for severity_score field.
	assessmentDescSeverityScore := assessmentFields[3].Descriptor()
	// assessment.DefaultSeverityScore holds the default value on creation for the severity_score field.
	assessment.DefaultSeverityScore = assessmentDescSeverityScore.Default.(float64)
	disorderMixin := schema.Disorder{}.Mixin()
	disorderMixinFields0 := disorderMixin[0].Fields()
	_ = disorderMixinFields0
	disorderFields := schema.Disorder{}.Fields()
	_ = disorderFields
	// disorderDescCreatedAt is the schema descriptor for created_at field.
	disorderDescCreatedAt := disorderMixinFields0[0].Descriptor()
	// disorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	disorder.DefaultCreatedAt = disorderDescCreatedAt.Default.(func() time.Time)
	// disorderDescName is the schema descriptor for name field.
	disorderDescName := disorderFields[0].Descriptor()
	// disorder.NameValidator is a validator for the "name" field. It is called by the builders before save.
	disorder.NameValidator = func() func(string) error {
		validators := disorderDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[0].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescCategory is the schema descriptor for category field.
	questionDescCategory := questionFields[1].Descriptor()
	// question.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	question.CategoryValidator = questionDescCategory.Validators[0].(func(string) error)
	// questionDescWeight is the schema descriptor for weight field.
	questionDescWeight := questionFields[2].Descriptor()
	// question.DefaultWeight holds the default value on creation for the weight field.
	question.DefaultWeight = questionDescWeight.Default.(int)
	// questionDescOrderIndex is the schema descriptor for order_index field.
	questionDescOrderIndex := questionFields[3].Descriptor()
	// question.DefaultOrderIndex holds the default value on creation for the order_index field.
	question.DefaultOrderIndex = questionDescOrderIndex.Default.(int)
	// questionDescIsActive is the schema descriptor for is_active field.
	questionDescIsActive := questionFields[4].Descriptor()
	// question.DefaultIsActive holds the default value on creation for the is_active field.
	question.DefaultIsActive = questionDescIsActive.Default.(bool)
	remedyMixin := schema.Remedy{}.Mixin()
	remedyMixinFields0 := remedyMixin[0].Fields()
	_ = remedyMixinFields0
	remedyFields := schema.Remedy{}.Fields()
	_ = remedyFields
	// remedyDescCreatedAt is the schema descriptor for created_at field.
	remedyDescCreatedAt := remedyMixinFields0[0].Descriptor()
	// remedy.DefaultCreatedAt holds the default value on creation for the created_at field.
	remedy.DefaultCreatedAt = remedyDescCreatedAt.Default.(func() time.Time)
	// remedyDescTitle is the schema descriptor for title field.
	remedyDescTitle := remedyFields[1].Descriptor()
	// remedy.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	remedy.TitleValidator = func() func(string) error {
		validators := remedyDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// remedyDescCategory is the schema descriptor for category field.
	remedyDescCategory := remedyFields[3].Descriptor()
	// remedy.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	remedy.CategoryValidator = remedyDescCategory.Validators[0].(func(string) error)
}
