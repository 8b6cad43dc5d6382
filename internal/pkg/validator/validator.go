package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// User role validation
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		validRoles := []string{"admin", "manager", "cashier"}
		for _, r := range validRoles {
			if role == r {
				return true
			}
		}
		return false
	})

	// Customer kind validation
	validate.RegisterValidation("customer_kind", func(fl validator.FieldLevel) bool {
		kind := fl.Field().String()
		validKinds := []string{"walk_in", "online", "royal"}
		for _, k := range validKinds {
			if kind == k {
				return true
			}
		}
		return false
	})

	// Ledger transaction kind validation
	validate.RegisterValidation("tx_kind", func(fl validator.FieldLevel) bool {
		kind := fl.Field().String()
		validKinds := []string{"debit", "credit", "adjustment"}
		for _, k := range validKinds {
			if kind == k {
				return true
			}
		}
		return false
	})

	// Price tier validation
	validate.RegisterValidation("price_type", func(fl validator.FieldLevel) bool {
		pt := fl.Field().String()
		validTypes := []string{"retail", "wholesale", ""}
		for _, t := range validTypes {
			if pt == t {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "uuid":
			errors[field] = "Invalid id format"
		case "role":
			errors[field] = "Invalid role. Must be: admin, manager, or cashier"
		case "customer_kind":
			errors[field] = "Invalid customer kind. Must be: walk_in, online, or royal"
		case "tx_kind":
			errors[field] = "Invalid transaction kind. Must be: debit, credit, or adjustment"
		case "price_type":
			errors[field] = "Invalid price type. Must be: retail or wholesale"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
