package printing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTemplate(t *testing.T, name string, active, isDefault bool) PrintTemplate {
	t.Helper()
	tpl, err := NewPrintTemplate(name, TemplateTypeProductLabel, "<div>{{.Product.Name}}</div>")
	require.NoError(t, err)
	tpl.IsActive = active
	tpl.IsDefault = isDefault
	return *tpl
}

func TestSelectTemplate_PrefersDefault(t *testing.T) {
	plain := makeTemplate(t, "tem thường", true, false)
	def := makeTemplate(t, "tem mặc định", true, true)

	got, err := SelectTemplate([]PrintTemplate{plain, def}, nil)
	require.NoError(t, err)
	assert.Equal(t, def.ID, got.ID)
}

func TestSelectTemplate_FirstMatchWhenNoDefault(t *testing.T) {
	first := makeTemplate(t, "tem 1", true, false)
	second := makeTemplate(t, "tem 2", true, false)

	got, err := SelectTemplate([]PrintTemplate{first, second}, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestSelectTemplate_NeverReturnsInactive(t *testing.T) {
	inactive := makeTemplate(t, "tem tắt", false, true)
	active := makeTemplate(t, "tem bật", true, false)

	got, err := SelectTemplate([]PrintTemplate{inactive, active}, nil)
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)
}

func TestSelectTemplate_ByID(t *testing.T) {
	def := makeTemplate(t, "tem mặc định", true, true)
	other := makeTemplate(t, "tem riêng", true, false)

	got, err := SelectTemplate([]PrintTemplate{def, other}, &other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)
}

func TestSelectTemplate_ByIDInactive(t *testing.T) {
	inactive := makeTemplate(t, "tem tắt", false, false)

	_, err := SelectTemplate([]PrintTemplate{inactive}, &inactive.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSelectTemplate_ByIDMissing(t *testing.T) {
	def := makeTemplate(t, "tem mặc định", true, true)
	missing := uuid.New()

	_, err := SelectTemplate([]PrintTemplate{def}, &missing)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSelectTemplate_EmptyCandidates(t *testing.T) {
	_, err := SelectTemplate(nil, nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
