package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamzaLatif02/portfolio/internal/clock"
)

func validForm() Form {
	return Form{Name: "Ada", Email: "ada@example.com", Message: "Let's build something."}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want Errors
	}{
		{name: "valid", form: validForm(), want: Errors{}},
		{name: "all empty", form: Form{}, want: Errors{
			FieldName:    "Name is required",
			FieldEmail:   "Email is required",
			FieldMessage: "Message is required",
		}},
		{name: "blank name", form: Form{Name: "   ", Email: "a@b.co", Message: "0123456789"}, want: Errors{
			FieldName: "Name is required",
		}},
		{name: "bad email", form: Form{Name: "A", Email: "not-an-email", Message: "0123456789"}, want: Errors{
			FieldEmail: "Please enter a valid email",
		}},
		{name: "email without tld", form: Form{Name: "A", Email: "a@b", Message: "0123456789"}, want: Errors{
			FieldEmail: "Please enter a valid email",
		}},
		{name: "short message", form: Form{Name: "A", Email: "a@b.co", Message: "hi"}, want: Errors{
			FieldMessage: "Message must be at least 10 characters",
		}},
		{name: "message padded to length", form: Form{Name: "A", Email: "a@b.co", Message: "   short    "}, want: Errors{
			FieldMessage: "Message must be at least 10 characters",
		}},
		{name: "exactly ten", form: Form{Name: "A", Email: "a@b.co", Message: " 0123456789 "}, want: Errors{}},
		{name: "astral runes count as two units", form: Form{Name: "A", Email: "a@b.co", Message: "😀😀😀😀😀"}, want: Errors{}},
		{name: "four astral runes are too short", form: Form{Name: "A", Email: "a@b.co", Message: "😀😀😀😀"}, want: Errors{
			FieldMessage: "Message must be at least 10 characters",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.form)
			assert.Equal(t, tt.want, res.Errors)
			assert.Equal(t, len(tt.want) == 0, res.OK)
		})
	}
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("email")
	assert.True(t, ok)
	assert.Equal(t, FieldEmail, f)

	_, ok = ParseField("phone")
	assert.False(t, ok)
}

func newTestState(t *testing.T) (*State, *clock.Fake, *int) {
	t.Helper()
	fake := clock.NewFake(time.Time{})
	cleared := 0
	s := NewState(fake, DefaultConfirmationTTL, func() { cleared++ })
	t.Cleanup(s.Close)
	return s, fake, &cleared
}

func TestStateShortMessageFlagsOnlyMessage(t *testing.T) {
	s, _, _ := newTestState(t)
	form := Form{Name: "Ada", Email: "ada@example.com", Message: "hi"}

	res := s.Submit(form)
	assert.False(t, res.OK)

	snap := s.Snapshot()
	assert.Equal(t, Errors{FieldMessage: "Message must be at least 10 characters"}, snap.Errors)
	assert.Empty(t, snap.Error("name"))
	assert.Empty(t, snap.Error("email"))
	assert.Equal(t, form, snap.Form)
	assert.False(t, snap.Submitted)
}

func TestStateSuccessClearsFieldsAndExpires(t *testing.T) {
	s, fake, cleared := newTestState(t)

	res := s.Submit(validForm())
	require.True(t, res.OK)

	snap := s.Snapshot()
	assert.True(t, snap.Submitted)
	assert.Equal(t, Form{}, snap.Form)
	assert.Empty(t, snap.Errors)

	fake.Advance(DefaultConfirmationTTL - time.Millisecond)
	assert.True(t, s.Snapshot().Submitted)

	fake.Advance(time.Millisecond)
	assert.False(t, s.Snapshot().Submitted)
	assert.Equal(t, 1, *cleared)
}

func TestStateResubmitRestartsConfirmation(t *testing.T) {
	s, fake, cleared := newTestState(t)

	s.Submit(validForm())
	fake.Advance(3 * time.Second)
	s.Submit(validForm())
	assert.Equal(t, 1, fake.Pending())

	fake.Advance(3 * time.Second)
	assert.True(t, s.Snapshot().Submitted)
	fake.Advance(2 * time.Second)
	assert.False(t, s.Snapshot().Submitted)
	assert.Equal(t, 1, *cleared)
}

func TestStateEditClearsOnlyThatFieldError(t *testing.T) {
	s, _, _ := newTestState(t)
	s.Submit(Form{})
	require.Len(t, s.Snapshot().Errors, 3)

	s.Edit(FieldEmail, "ada@")
	snap := s.Snapshot()
	assert.Equal(t, "ada@", snap.Form.Email)
	assert.Empty(t, snap.Error("email"))
	assert.Equal(t, "Name is required", snap.Error("name"))
	assert.Equal(t, "Message is required", snap.Error("message"))
}

func TestStateCloseCancelsConfirmationTimer(t *testing.T) {
	s, fake, cleared := newTestState(t)
	s.Submit(validForm())
	s.Close()

	assert.Zero(t, fake.Pending())
	fake.Advance(time.Minute)
	assert.Zero(t, *cleared)
}
