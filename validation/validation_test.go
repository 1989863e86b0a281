package validation

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/svcerrors/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "John")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("name", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	validUUID := uuid.New().String()

	v := New()
	v.RequiredUUID("id", validUUID)
	if v.HasErrors() {
		t.Errorf("expected no errors for valid UUID, got %v", v.Issues())
	}

	v2 := New()
	v2.RequiredUUID("id", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty UUID")
	}

	v3 := New()
	v3.RequiredUUID("id", "not-a-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid UUID")
	}

	v4 := New()
	v4.RequiredUUID("id", uuid.Nil.String())
	if !v4.HasErrors() {
		t.Error("expected error for nil UUID")
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	v := New()
	v.OptionalUUID("id", "")
	if v.HasErrors() {
		t.Error("expected no error for empty optional UUID")
	}

	v2 := New()
	v2.OptionalUUID("id", uuid.New().String())
	if v2.HasErrors() {
		t.Error("expected no error for valid optional UUID")
	}

	v3 := New()
	v3.OptionalUUID("id", "bad-uuid")
	if !v3.HasErrors() {
		t.Error("expected error for invalid optional UUID")
	}
}

func TestValidatorMaxLength(t *testing.T) {
	v := New()
	v.MaxLength("desc", "short", 10)
	if v.HasErrors() {
		t.Error("expected no error for string within max length")
	}

	v2 := New()
	v2.MaxLength("desc", "this is too long", 5)
	if !v2.HasErrors() {
		t.Error("expected error for string exceeding max length")
	}
}

func TestValidatorMinLength(t *testing.T) {
	v := New()
	v.MinLength("pass", "abcdef", 6)
	if v.HasErrors() {
		t.Error("expected no error for string meeting min length")
	}

	v2 := New()
	v2.MinLength("pass", "ab", 6)
	if !v2.HasErrors() {
		t.Error("expected error for string below min length")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("age", 25, 18, 100)
	if v.HasErrors() {
		t.Error("expected no error for value in range")
	}

	v2 := New()
	v2.Range("age", 5, 18, 100)
	if !v2.HasErrors() {
		t.Error("expected error for value below range")
	}

	v3 := New()
	v3.Range("age", 101, 18, 100)
	if !v3.HasErrors() {
		t.Error("expected error for value above range")
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New()
	v.Min("count", 5, 1)
	v.Max("count", 5, 10)
	if v.HasErrors() {
		t.Error("expected no errors")
	}

	v2 := New()
	v2.Min("count", 0, 1)
	if !v2.HasErrors() {
		t.Error("expected error for value below min")
	}

	v3 := New()
	v3.Max("count", 11, 10)
	if !v3.HasErrors() {
		t.Error("expected error for value above max")
	}
}

func TestValidatorPattern(t *testing.T) {
	v := New()
	v.Pattern("code", "ABC123", `^[A-Z0-9]+$`)
	if v.HasErrors() {
		t.Error("expected no error for matching pattern")
	}

	v2 := New()
	v2.Pattern("code", "abc", `^[A-Z]+$`)
	if !v2.HasErrors() {
		t.Error("expected error for non-matching pattern")
	}

	// Empty value should be skipped
	v3 := New()
	v3.Pattern("code", "", `^[A-Z]+$`)
	if v3.HasErrors() {
		t.Error("expected no error for empty value with pattern")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("status", "active", []string{"active", "inactive"})
	if v.HasErrors() {
		t.Error("expected no error for valid oneOf value")
	}

	v2 := New()
	v2.OneOf("status", "unknown", []string{"active", "inactive"})
	if !v2.HasErrors() {
		t.Error("expected error for invalid oneOf value")
	}

	// Empty should be skipped
	v3 := New()
	v3.OneOf("status", "", []string{"active"})
	if v3.HasErrors() {
		t.Error("expected no error for empty oneOf value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should pass")
	if v.HasErrors() {
		t.Error("expected no error for true condition")
	}

	v2 := New()
	v2.Custom(false, "field", "custom error")
	if !v2.HasErrors() {
		t.Error("expected error for false condition")
	}
	if v2.Issues()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Issues()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("name", "John")
	if rdv := v.Validate(errors.ContextBody); rdv != nil {
		t.Error("expected nil for valid input")
	}
	if err := v.Err(errors.ContextBody); err != nil {
		t.Errorf("expected untyped nil error, got %v", err)
	}

	v2 := New()
	v2.Required("name", "")
	v2.Required("email", "")
	rdv := v2.Validate(errors.ContextQuery)
	if rdv == nil {
		t.Fatal("expected error")
	}
	if rdv.Code() != 400 {
		t.Errorf("expected code 400, got %d", rdv.Code())
	}

	records := rdv.SerializeErrors()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	want := []struct {
		msg  string
		path []any
	}{
		{"name is required", []any{"query", "name"}},
		{"email is required", []any{"query", "email"}},
	}
	for i, w := range want {
		if records[i].Message != w.msg {
			t.Errorf("record %d: expected message %q, got %q", i, w.msg, records[i].Message)
		}
		if !reflect.DeepEqual(records[i].Path, w.path) {
			t.Errorf("record %d: expected path %v, got %v", i, w.path, records[i].Path)
		}
	}
}

func TestValidatorNestedField(t *testing.T) {
	rdv := New().Required("items[1].sku", "").Validate(errors.ContextBody)
	if rdv == nil {
		t.Fatal("expected error")
	}
	got := rdv.SerializeErrors()[0].Path
	want := []any{"body", "items", 1, "sku"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected path %v, got %v", want, got)
	}
}

func TestValidatorEmail(t *testing.T) {
	if New().Email("email", "john@example.com").HasErrors() {
		t.Error("expected no error for valid email")
	}
	if New().Email("email", "").HasErrors() {
		t.Error("expected empty email to be skipped")
	}
	v := New().Email("email", "not-an-email")
	if !v.HasErrors() {
		t.Fatal("expected error for invalid email")
	}
	if got := v.Issues()[0].Message; got != "email must be a valid email address" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidatorCheck(t *testing.T) {
	if New().Check("qty", 5, "gte=1,lte=10").HasErrors() {
		t.Error("expected no error for value in range")
	}
	v := New().Check("qty", 0, "gte=1")
	if !v.HasErrors() {
		t.Fatal("expected error for value below minimum")
	}
	if got := v.Issues()[0].Message; got != "qty must be at least 1" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("name", "John").MaxLength("name", "John", 100).Min("age", 25, 18)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

type address struct {
	Zip string `json:"zip" validate:"required,len=5"`
}

type lineItem struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"gte=1"`
}

type createOrder struct {
	Email     string     `json:"email" validate:"required,email"`
	Status    string     `json:"status" validate:"omitempty,oneof=draft placed"`
	Items     []lineItem `json:"items" validate:"required,min=1,dive"`
	Address   address    `json:"address"`
	UserAgent string     `validate:"max=8"`
	Ignored   string     `json:"-" validate:"required"`
}

func validOrder() createOrder {
	return createOrder{
		Email:   "john@example.com",
		Items:   []lineItem{{SKU: "A-1", Qty: 1}},
		Address: address{Zip: "12345"},
		Ignored: "x",
	}
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(validOrder(), errors.ContextBody); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	order := validOrder()
	order.Email = "not-an-email"
	order.Status = "shipped"
	order.Items = append(order.Items, lineItem{SKU: "", Qty: 0})
	order.Address.Zip = "1"
	order.UserAgent = "much-too-long"

	err := Validate(order, errors.ContextBody)
	if err == nil {
		t.Fatal("expected validation error")
	}
	rdv, ok := err.(*errors.RequestDataValidationError)
	if !ok {
		t.Fatalf("expected *RequestDataValidationError, got %T", err)
	}
	if rdv.Context() != errors.ContextBody {
		t.Errorf("expected body context, got %q", rdv.Context())
	}

	want := map[string][]any{
		"email must be a valid email address":      {"email"},
		"status must be one of: draft, placed":     {"status"},
		"sku is required":                          {"items", 1, "sku"},
		"qty must be at least 1":                   {"items", 1, "qty"},
		"zip must be exactly 5 characters":         {"address", "zip"},
		"user_agent must be at most 8 characters":  {"user_agent"},
	}
	issues := rdv.Issues()
	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %d: %+v", len(want), len(issues), issues)
	}
	for _, issue := range issues {
		path, ok := want[issue.Message]
		if !ok {
			t.Errorf("unexpected issue %q", issue.Message)
			continue
		}
		if !reflect.DeepEqual(issue.Path, path) {
			t.Errorf("%q: expected path %v, got %v", issue.Message, path, issue.Path)
		}
	}
}

func TestStructValidateEnvelope(t *testing.T) {
	order := validOrder()
	order.Email = ""

	resp := errors.Dispatch(Validate(order, errors.ContextBody))
	if resp.Status != 400 {
		t.Fatalf("expected 400, got %d", resp.Status)
	}
	body, err := json.Marshal(resp.Body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	const want = `{"errors":[{"code":400,"type":"RequestDataValidationError","message":"email is required","path":["body","email"],"details":[{"message":"email is required","path":["email"]}]}]}`
	if string(body) != want {
		t.Errorf("unexpected body:\n got %s\nwant %s", body, want)
	}
}

func TestValidatorIssueWithoutField(t *testing.T) {
	v := New()
	v.AddIssue("", "request is empty")

	body, err := json.Marshal(errors.Dispatch(v.Err(errors.ContextBody)).Body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	const want = `{"errors":[{"code":400,"type":"RequestDataValidationError","message":"request is empty","path":["body"],"details":[{"message":"request is empty","path":[]}]}]}`
	if string(body) != want {
		t.Errorf("unexpected body:\n got %s\nwant %s", body, want)
	}
}

func TestStructValidateNonStruct(t *testing.T) {
	err := Validate("not a struct", errors.ContextBody)
	if err == nil {
		t.Fatal("expected error for non-struct input")
	}
	if errors.IsServiceError(err) {
		t.Errorf("expected a plain error, got %T", err)
	}
}

func TestFromValidator(t *testing.T) {
	if err := FromValidator(nil, errors.ContextBody); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	plain := json.Unmarshal([]byte("{"), &struct{}{})
	if err := FromValidator(plain, errors.ContextBody); err != plain {
		t.Errorf("expected non-validator error unchanged, got %v", err)
	}
}

func TestNamespacePath(t *testing.T) {
	tests := map[string][]any{
		"createOrder.items[2].sku": {"items", 2, "sku"},
		"createOrder.email":        {"email"},
		"[1].sku":                  {1, "sku"},
		"[0]":                      {0},
	}
	for ns, want := range tests {
		if got := namespacePath(ns); !reflect.DeepEqual(got, want) {
			t.Errorf("namespacePath(%q) = %v, want %v", ns, got, want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []any
	}{
		{"", nil},
		{"name", []any{"name"}},
		{"address.zip", []any{"address", "zip"}},
		{"items[2].sku", []any{"items", 2, "sku"}},
		{"matrix[1][3]", []any{"matrix", 1, 3}},
		{"labels[env]", []any{"labels", "env"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePath(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUUIDFunc(t *testing.T) {
	validUUID := uuid.New().String()
	id, err := ParseUUID("user_id", validUUID, errors.ContextPath)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != validUUID {
		t.Errorf("expected %s, got %s", validUUID, id.String())
	}
}

func TestParseUUIDFuncInvalid(t *testing.T) {
	for _, in := range []string{"", "bad", uuid.Nil.String()} {
		_, err := ParseUUID("user_id", in, errors.ContextPath)
		if err == nil {
			t.Errorf("expected error for %q", in)
			continue
		}
		if resp := errors.Dispatch(err); resp.Status != 400 {
			t.Errorf("%q: expected 400, got %d", in, resp.Status)
		}
	}
}

func TestRequiredFunc(t *testing.T) {
	if err := Required("name", "value", errors.ContextBody); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("name", "", errors.ContextBody); err == nil {
		t.Error("expected error for empty required field")
	}
}
