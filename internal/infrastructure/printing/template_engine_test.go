package printing

import (
	"testing"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"whole dong", 150000, "150.000 ₫"},
		{"int64", int64(1234567), "1.234.567 ₫"},
		{"decimal", decimal.NewFromInt(25000), "25.000 ₫"},
		{"numeric string", "150000", "150.000 ₫"},
		{"float rounds to whole dong", 18000.4, "18.000 ₫"},
		{"zero", 0, "0 ₫"},
		{"nil renders empty", nil, ""},
		{"nil decimal pointer renders empty", (*decimal.Decimal)(nil), ""},
		{"non-numeric string passes through", "chưa có giá", "chưa có giá"},
		{"empty string passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCurrency(tt.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"grouping", 1234567, "1.234.567"},
		{"small value", 500, "500"},
		{"numeric string", "25000", "25.000"},
		{"nil renders empty", nil, ""},
		{"non-numeric string passes through", "n/a", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatNumber(tt.input))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 8, 30, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "30/08/2025", formatDate(d))
	assert.Equal(t, "30/08/2025 14:05", formatDateTime(d))
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "", formatDateTime(nil))
}

func TestTemplateEngine_RenderCurrencyScenario(t *testing.T) {
	engine := NewTemplateEngine()

	tpl, err := printing.NewPrintTemplate("Tem A7", printing.TemplateTypeProductLabel,
		`<div>{{formatCurrency .Total}}</div>`)
	require.NoError(t, err)

	html, err := engine.Render(tpl, map[string]interface{}{"Total": 150000})
	require.NoError(t, err)
	assert.Equal(t, "<div>150.000 ₫</div>", html)
}

func TestTemplateEngine_RenderNilTotal(t *testing.T) {
	engine := NewTemplateEngine()

	tpl, err := printing.NewPrintTemplate("Tem A7", printing.TemplateTypeProductLabel,
		`<div>{{formatCurrency .Total}}</div>`)
	require.NoError(t, err)

	html, err := engine.Render(tpl, map[string]interface{}{"Total": nil})
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", html)
}

func TestTemplateEngine_RenderIsIdempotent(t *testing.T) {
	engine := NewTemplateEngine()
	content := `<div>{{.Name}}: {{formatCurrency .Price}}</div>`
	data := map[string]interface{}{"Name": "Gạo ST25", "Price": 27000}

	first, err := engine.RenderString("label", content, data)
	require.NoError(t, err)
	second, err := engine.RenderString("label", content, data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTemplateEngine_ParseFailure(t *testing.T) {
	engine := NewTemplateEngine()

	_, err := engine.RenderString("broken", `{{range .Items}}no end tag`, nil)
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeParseFailed, renderErr.Code)
}

func TestTemplateEngine_ExecuteFailure(t *testing.T) {
	engine := NewTemplateEngine()

	// Calling a method on a non-struct value fails at execute time.
	_, err := engine.RenderString("broken", `{{.Field.Method}}`, map[string]interface{}{"Field": 42})
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)
}

func TestTemplateEngine_EmptyContent(t *testing.T) {
	engine := NewTemplateEngine()
	_, err := engine.RenderString("empty", "   ", nil)
	require.Error(t, err)
}

func TestTemplateEngine_EscapesUserData(t *testing.T) {
	engine := NewTemplateEngine()

	html, err := engine.RenderString("label", `<div>{{.Name}}</div>`,
		map[string]interface{}{"Name": `<script>alert(1)</script>`})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

func TestTemplateEngine_SumField(t *testing.T) {
	engine := NewTemplateEngine()

	data := map[string]interface{}{
		"Items": []map[string]interface{}{
			{"Amount": decimal.NewFromInt(10000)},
			{"Amount": decimal.NewFromInt(15000)},
		},
	}
	html, err := engine.RenderString("sum", `{{formatCurrency (sumField .Items "Amount")}}`, data)
	require.NoError(t, err)
	assert.Equal(t, "25.000 ₫", html)
}

func TestTemplateEngine_WithHelpers(t *testing.T) {
	engine := NewTemplateEngine(WithHelpers(map[string]interface{}{
		"shout": func(s string) string { return s + "!" },
	}))

	html, err := engine.RenderString("x", `{{shout .Name}}`, map[string]interface{}{"Name": "gạo"})
	require.NoError(t, err)
	assert.Equal(t, "gạo!", html)
}
