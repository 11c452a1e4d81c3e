package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Domain rules shared by the booking flow and the gateway:
	// hhmm       24-hour wall-clock time
	// futuredate YYYY-MM-DD resolving to today or later (end-of-day comparison)
	// workday    YYYY-MM-DD not falling on a weekend
	// pastdate   YYYY-MM-DD strictly before now
	_ = v.RegisterValidation("hhmm", validateHHMM)
	_ = v.RegisterValidation("futuredate", validateFutureDate)
	_ = v.RegisterValidation("workday", validateWorkday)
	_ = v.RegisterValidation("pastdate", validatePastDate)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must have at least " + e.Param() + " entries"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errors[field] = field + " must be a valid date in YYYY-MM-DD format"
			case "hhmm":
				errors[field] = "Invalid time format. Expected HH:MM in 24-hour format."
			case "futuredate":
				errors[field] = "Date must be in the future"
			case "workday":
				errors[field] = "Only working days are available for reservation"
			case "pastdate":
				errors[field] = field + " must be in the past"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func validateHHMM(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

// validateFutureDate accepts a date whose end of day lies after the start of
// today, so today itself still passes at 23:59 local time.
func validateFutureDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	endOfDay := date.AddDate(0, 0, 1).Add(-time.Nanosecond)
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return endOfDay.After(startOfToday)
}

func validateWorkday(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return date.Weekday() != time.Saturday && date.Weekday() != time.Sunday
}

func validatePastDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	return date.Before(time.Now())
}
