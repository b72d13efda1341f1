package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"081234567890", "6281234567890", "+628123456789", "08-1234-567890", "08 1234 567890"}
	invalid := []string{"0712345678", "123456789", "0812345678901234", "abc0812345678", "0812345678a"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"09:00", "13:30", "00:00", "23:59"}
	invalid := []string{"24:00", "9", "09:60", "09.00", ""}
	for _, s := range valid {
		assert.True(t, IsValidClock(s), "IsValidClock(%q)", s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidClock(s), "IsValidClock(%q)", s)
	}
}

type structFixture struct {
	Name  string  `json:"name" validate:"required"`
	Shift string  `json:"shift" validate:"required,oneof=pagi siang"`
	Start *string `json:"start_work_time,omitempty" validate:"omitempty,clock"`
	Day   string  `json:"day" validate:"omitempty,date"`
	Email string  `json:"email" validate:"omitempty,email"`
}

func TestStruct_Valid(t *testing.T) {
	start := "08:30"
	err := Struct(structFixture{Name: "Budi", Shift: "pagi", Start: &start, Day: "2024-05-06", Email: "budi@example.com"})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	bad := "8.30"
	err := Struct(structFixture{Shift: "malam", Start: &bad, Day: "06-05-2024", Email: "nope"})
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)

	got := errs.ToMap()
	assert.Equal(t, "name is required", got["name"])
	assert.Equal(t, "shift must be one of: pagi, siang", got["shift"])
	assert.Equal(t, "start_work_time must be in HH:MM format", got["start_work_time"])
	assert.Equal(t, "day must be in YYYY-MM-DD format", got["day"])
	assert.Equal(t, "email must be a valid email address", got["email"])
}
