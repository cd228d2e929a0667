package invoicing

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"invoicing-dashboard-backend/internal/apperror"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/money"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InvoiceForm is the raw create/edit submission. It binds from either a
// urlencoded form or a JSON body.
type InvoiceForm struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required,uuid"`
	Amount     Amount `form:"amount" json:"amount" validate:"required,numeric"`
	Status     string `form:"status" json:"status" validate:"required,oneof=pending paid"`
}

// Amount is the submitted dollar amount as text. JSON bodies may carry it
// as a string or a number.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			// Keep the raw token so validation reports it against the field.
			*a = Amount(data)
			return nil
		}
		*a = Amount(n.String())
	}
	return nil
}

// InvoiceInput is a validated form with the amount already in cents.
type InvoiceInput struct {
	CustomerID  uuid.UUID
	AmountCents int64
	Status      models.InvoiceStatus
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"customerId": "Please select a customer.",
	"amount":     "Please enter an amount of $0 or more.",
	"status":     "Please select an invoice status.",
}

// Validate checks every field and converts the amount to cents. All field
// problems are reported together as a *apperror.ValidationError.
func (f InvoiceForm) Validate() (InvoiceInput, error) {
	f.CustomerID = strings.ToLower(strings.TrimSpace(f.CustomerID))
	f.Amount = Amount(strings.TrimSpace(string(f.Amount)))
	f.Status = strings.TrimSpace(f.Status)

	fields := make(map[string]string)
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return InvoiceInput{}, err
		}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessages[fe.Field()]
		}
	}

	var input InvoiceInput
	if _, bad := fields["amount"]; !bad {
		cents, err := parseCents(string(f.Amount))
		if err != nil {
			fields["amount"] = fieldMessages["amount"]
		}
		input.AmountCents = cents
	}
	if len(fields) > 0 {
		return InvoiceInput{}, &apperror.ValidationError{Fields: fields}
	}

	input.CustomerID = uuid.MustParse(f.CustomerID)
	input.Status = models.InvoiceStatus(f.Status)
	return input, nil
}

func parseCents(amount string) (int64, error) {
	d, err := money.ParseDollars(amount)
	if err != nil {
		return 0, err
	}
	return money.ToCents(d)
}
