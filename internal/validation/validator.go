package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError lists the failed fields as "field: message" details.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Details, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_type", validateTransactionType)
	_ = v.RegisterValidation("goal_priority", validateGoalPriority)
	_ = v.RegisterValidation("goal_status", validateGoalStatus)
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)

	v.RegisterStructValidation(validateInvestmentPosition, dto.CreateInvestmentRequest{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks a request struct and converts failures into a *ValidationError
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}
	return &ValidationError{Details: details}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "transaction_amount":
		return "must not be negative and have at most 2 decimal places"
	case "positive_amount":
		return "must be positive"
	case "non_negative_amount":
		return "must not be negative"
	case "transaction_type", "category_type":
		return "must be INCOME or EXPENSE"
	case "goal_priority":
		return "must be LOW, MEDIUM or HIGH"
	case "goal_status":
		return "must be ACTIVE, COMPLETED, PAUSED or CANCELLED"
	case "investment_type":
		return "must be STOCK, FUND, FIXED_INCOME, CRYPTO or OTHER"
	case "calendar_date":
		return "must be a YYYY-MM-DD date"
	case "amount_matches_position":
		return "must equal quantity times unit price"
	}
	return "is invalid"
}

// Custom validation functions

func fieldAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(fl.Field().String())
	return amount, err == nil
}

// validateTransactionAmount validates that a transaction amount is not negative and has at most 2 decimal places
func validateTransactionAmount(fl validator.FieldLevel) bool {
	amount, ok := fieldAmount(fl)
	if !ok || amount.IsNegative() {
		return false
	}
	return amount.Equal(amount.Truncate(2))
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fieldAmount(fl)
	return ok && amount.IsPositive()
}

func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := fieldAmount(fl)
	return ok && !amount.IsNegative()
}

// validateTransactionType accepts INCOME or EXPENSE in any case
func validateTransactionType(fl validator.FieldLevel) bool {
	_, ok := models.ParseTransactionType(fl.Field().String())
	return ok
}

func validateGoalPriority(fl validator.FieldLevel) bool {
	return models.IsValidGoalPriority(strings.ToUpper(fl.Field().String()))
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	return models.IsValidGoalStatus(strings.ToUpper(fl.Field().String()))
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return models.IsValidInvestmentType(strings.ToUpper(fl.Field().String()))
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := models.ParseCalendarDate(fl.Field().String())
	return err == nil
}

// validateInvestmentPosition enforces amount == quantity * unitPrice within tolerance
func validateInvestmentPosition(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.CreateInvestmentRequest)
	if req.Quantity == nil || req.UnitPrice == nil {
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		return
	}
	quantity, err := dto.ParseAmount(*req.Quantity)
	if err != nil {
		return
	}
	unitPrice, err := dto.ParseAmount(*req.UnitPrice)
	if err != nil {
		return
	}
	if !models.AmountMatchesPosition(amount, &quantity, &unitPrice) {
		sl.ReportError(req.Amount, "amount", "Amount", "amount_matches_position", "")
	}
}
