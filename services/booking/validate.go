package booking

import (
	"regexp"
	"time"

	"shalfa/i18n"
	"shalfa/models"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// Letters (including accented Latin) and whitespace only.
	guestNameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	// Digits, spaces, plus, minus and parentheses only.
	phoneRe = regexp.MustCompile(`^[\d\s+\-()]*$`)
)

// guestFields mirrors the validated subset of the draft. The room
// requirement is enforced separately: a missing room blocks submission
// without a field message.
type guestFields struct {
	Name     string `validate:"required,guest_name"`
	Document string `validate:"required"`
	Phone    string `validate:"required,phone_chars"`
	CheckIn  string `validate:"required"`
	CheckOut string `validate:"required"`
}

// fieldNames maps struct fields to the wire-level field names errors are
// keyed by.
var fieldNames = map[string]string{
	"Name":     "name",
	"Document": "document",
	"Phone":    "phone",
	"CheckIn":  "checkIn",
	"CheckOut": "checkOut",
}

// Validator runs the wholesale per-field validation pass over a draft.
type Validator struct {
	validate *validator.Validate
	bundle   *i18n.Bundle
}

func NewValidator(bundle *i18n.Bundle, log *zap.Logger) *Validator {
	v := validator.New()

	if err := v.RegisterValidation("guest_name", func(fl validator.FieldLevel) bool {
		return guestNameRe.MatchString(fl.Field().String())
	}); err != nil {
		log.Fatal("Failed to register 'guest_name' validator", zap.Error(err))
	}
	if err := v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}); err != nil {
		log.Fatal("Failed to register 'phone_chars' validator", zap.Error(err))
	}

	return &Validator{validate: v, bundle: bundle}
}

// ValidateDraft rebuilds the full error map for the draft. All rules are
// evaluated; nothing short-circuits. now anchors the "not in the past"
// check (time of day is zeroed for the comparison).
func (v *Validator) ValidateDraft(draft models.BookingDraft, now time.Time, lang i18n.Language) models.ValidationErrors {
	errs := models.ValidationErrors{}

	fields := guestFields{
		Name:     draft.Name,
		Document: draft.Document,
		Phone:    draft.Phone,
		CheckIn:  draft.CheckIn,
		CheckOut: draft.CheckOut,
	}
	if err := v.validate.Struct(fields); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				field := fieldNames[fe.StructField()]
				switch fe.Tag() {
				case "required":
					errs[field] = v.bundle.Resolve(lang, "booking.err_required")
				case "guest_name":
					errs[field] = v.bundle.Resolve(lang, "booking.err_name_invalid")
				case "phone_chars":
					errs[field] = v.bundle.Resolve(lang, "booking.err_phone_invalid")
				}
			}
		}
	}

	if draft.CheckIn != "" && draft.CheckOut != "" {
		start, errIn := time.Parse(dateLayout, draft.CheckIn)
		end, errOut := time.Parse(dateLayout, draft.CheckOut)
		switch {
		case errIn != nil:
			errs["checkIn"] = v.bundle.Resolve(lang, "booking.err_date_invalid")
		case errOut != nil:
			errs["checkOut"] = v.bundle.Resolve(lang, "booking.err_date_invalid")
		default:
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			if start.Before(today) {
				errs["checkIn"] = v.bundle.Resolve(lang, "booking.err_date_invalid")
			}
			if !end.After(start) {
				errs["checkOut"] = v.bundle.Resolve(lang, "booking.err_date_invalid")
			}
		}
	}

	return errs
}
