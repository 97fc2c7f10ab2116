// Package validation normalises and checks request input before it reaches
// the store. Every value is trimmed and markup-escaped first, then checked
// with go-playground/validator rules. Failures are *common.ValidationError
// values carrying the first message.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgIDEmpty            = "User _id field cannot be empty!"
	MsgIDInvalid          = "No valid user id!"
	MsgUsernameEmpty      = "Username cannot be empty!"
	MsgExerciseEmpty      = "Description or duration cannot be empty!"
	MsgDurationNotInteger = "Duration must be a positive integer!"
	MsgDateInvalid        = "Date must be a valid date!"
	MsgFromInvalid        = "From must be a valid date!"
	MsgToInvalid          = "To must be a valid date!"
)

var (
	validate   *validator.Validate
	positiveRe = regexp.MustCompile(`^[0-9]+$`)
)

func init() {
	validate = validator.New()
	mustRegister("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	mustRegister("posint", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !positiveRe.MatchString(s) {
			return false
		}
		n, err := strconv.Atoi(s)
		return err == nil && n > 0
	})
	mustRegister("date", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Normalize trims surrounding whitespace and escapes markup-significant characters.
func Normalize(s string) string {
	return escaper.Replace(strings.TrimSpace(s))
}

// messages maps "Field.tag" to the user-facing message.
var messages = map[string]string{
	"ID.required":          MsgIDEmpty,
	"ID.objectid":          MsgIDInvalid,
	"Username.required":    MsgUsernameEmpty,
	"Description.required": MsgExerciseEmpty,
	"Duration.required":    MsgExerciseEmpty,
	"Duration.posint":      MsgDurationNotInteger,
	"Date.date":            MsgDateInvalid,
	"From.date":            MsgFromInvalid,
	"To.date":              MsgToInvalid,
}

// check runs the struct rules and converts the first failure.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	msg, ok := messages[first.Field()+"."+first.Tag()]
	if !ok {
		msg = "Invalid " + strings.ToLower(first.Field()) + "!"
	}
	return common.NewValidationError(strings.ToLower(first.Field()), msg)
}
