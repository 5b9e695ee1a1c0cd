package tui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginForm(t *testing.T) {
	t.Run("creates form", func(t *testing.T) {
		form := NewLoginForm()
		require.NotNil(t, form)
		assert.False(t, form.Submitted())
		assert.False(t, form.Cancelled())
	})

	t.Run("values reflect entered fields", func(t *testing.T) {
		form := NewLoginForm()
		form.email = "me@example.com"
		form.password = "secret"

		email, password := form.Values()
		assert.Equal(t, "me@example.com", email)
		assert.Equal(t, "secret", password)
	})

	t.Run("tracks submitted state", func(t *testing.T) {
		form := NewLoginForm()
		assert.False(t, form.Submitted())
		form.form.State = huh.StateCompleted
		assert.True(t, form.Submitted())
	})

	t.Run("tracks cancelled state", func(t *testing.T) {
		form := NewLoginForm()
		assert.False(t, form.Cancelled())
		form.form.State = huh.StateAborted
		assert.True(t, form.Cancelled())
	})
}

func TestNewOTPForm(t *testing.T) {
	t.Run("creates form", func(t *testing.T) {
		form := NewOTPForm("me@example.com")
		require.NotNil(t, form)
		assert.False(t, form.Submitted())
		assert.False(t, form.Cancelled())
	})

	t.Run("code reflects entered value", func(t *testing.T) {
		form := NewOTPForm("me@example.com")
		form.code = "123456"
		form.form.State = huh.StateCompleted

		assert.Equal(t, "123456", form.Code())
	})
}
