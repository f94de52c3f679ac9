package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/gaolamthuy/backend/internal/domain/printing"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// viPrinter formats numbers with Vietnamese grouping (dots as thousands
// separators). Safe for concurrent use.
var viPrinter = message.NewPrinter(language.Vietnamese)

// TemplateEngine compiles stored HTML templates against business data.
// The helper map is built once at construction and never mutated, so a
// compiled template is a pure function of (content, data).
type TemplateEngine struct {
	funcMap template.FuncMap
}

// TemplateEngineOption configures the template engine
type TemplateEngineOption func(*TemplateEngine)

// WithHelpers merges extra helpers into the engine's function map at
// construction time.
func WithHelpers(extra template.FuncMap) TemplateEngineOption {
	return func(e *TemplateEngine) {
		maps.Copy(e.funcMap, extra)
	}
}

// NewTemplateEngine creates a new template engine with the Vietnamese
// formatting helpers templates rely on.
func NewTemplateEngine(opts ...TemplateEngineOption) *TemplateEngine {
	e := &TemplateEngine{}

	e.funcMap = template.FuncMap{
		// Money and number formatting
		"formatCurrency": formatCurrency,
		"formatNumber":   formatNumber,

		// Date formatting
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,

		// String utilities
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"title": titleCase,
		"trim":  strings.TrimSpace,

		// Arithmetic
		"add":      add,
		"sub":      sub,
		"mul":      mul,
		"sumField": sumField,

		// Conditional
		"default": defaultFunc,

		// Safe HTML - only for trusted, non-user-generated content
		"safeHTML": safeHTML,
		"safeCSS":  safeCSS,

		"now": time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Render compiles a print template against the provided data and
// returns the resulting HTML. Parse failures abort with
// ErrCodeParseFailed; execute failures with ErrCodeRenderFailed. A
// missing field renders empty via helper defensiveness rather than
// failing the document.
func (e *TemplateEngine) Render(tpl *printing.PrintTemplate, data interface{}) (string, error) {
	if tpl == nil {
		return "", NewRenderError(ErrCodeInvalidInput, "template is nil", nil)
	}
	return e.RenderString(tpl.ID.String(), tpl.Content, data)
}

// RenderString compiles a raw template string against the provided data
func (e *TemplateEngine) RenderString(name, content string, data interface{}) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", NewRenderError(ErrCodeInvalidInput, "template content is empty", nil)
	}

	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(content)
	if err != nil {
		return "", NewRenderError(ErrCodeParseFailed, "failed to parse template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}

	return buf.String(), nil
}

// FuncMap returns a copy of the engine's helper map
func (e *TemplateEngine) FuncMap() template.FuncMap {
	funcMap := make(template.FuncMap, len(e.funcMap))
	maps.Copy(funcMap, e.funcMap)
	return funcMap
}

// formatCurrency formats a value as whole Vietnamese đồng.
// Example: 150000 -> "150.000 ₫". Nil renders empty; a non-numeric
// string passes through unchanged. Template content is user-edited
// data, so one malformed price field must degrade, never panic.
func formatCurrency(v interface{}) string {
	if isNil(v) {
		return ""
	}
	d, ok := toDecimal(v)
	if !ok {
		return passthrough(v)
	}
	return groupVietnamese(d) + " ₫"
}

// formatNumber formats a value with Vietnamese thousands grouping and
// zero decimals, with the same defensiveness as formatCurrency.
func formatNumber(v interface{}) string {
	if isNil(v) {
		return ""
	}
	d, ok := toDecimal(v)
	if !ok {
		return passthrough(v)
	}
	return groupVietnamese(d)
}

// groupVietnamese renders a decimal as a whole number with dot
// thousands separators, e.g. 1234567 -> "1.234.567".
func groupVietnamese(d decimal.Decimal) string {
	return viPrinter.Sprintf("%d", d.Round(0).IntPart())
}

// formatDate formats a time value as dd/MM/yyyy; zero time renders empty
func formatDate(v interface{}) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// formatDateTime formats a time value as dd/MM/yyyy HH:mm
func formatDateTime(v interface{}) string {
	t := toTime(v)
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04")
}

// titleCase converts a string to title case with Vietnamese rules
func titleCase(s string) string {
	return cases.Title(language.Vietnamese).String(s)
}

func add(a, b interface{}) decimal.Decimal {
	da, _ := toDecimal(a)
	db, _ := toDecimal(b)
	return da.Add(db)
}

func sub(a, b interface{}) decimal.Decimal {
	da, _ := toDecimal(a)
	db, _ := toDecimal(b)
	return da.Sub(db)
}

func mul(a, b interface{}) decimal.Decimal {
	da, _ := toDecimal(a)
	db, _ := toDecimal(b)
	return da.Mul(db)
}

// sumField sums a named field over a slice of maps.
// Usage in template: {{ sumField .Items "Amount" }}
func sumField(slice interface{}, field string) decimal.Decimal {
	result := decimal.Zero
	items, ok := slice.([]map[string]interface{})
	if !ok {
		return result
	}
	for _, item := range items {
		if d, ok := toDecimal(item[field]); ok {
			result = result.Add(d)
		}
	}
	return result
}

func defaultFunc(val, def interface{}) interface{} {
	if isNil(val) {
		return def
	}
	if s, ok := val.(string); ok && s == "" {
		return def
	}
	return val
}

// safeHTML marks a string as safe HTML, bypassing automatic escaping.
// Only for trusted, non-user-generated content.
func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

// safeCSS marks a string as safe CSS, bypassing automatic escaping.
// Only for trusted, non-user-generated content.
func safeCSS(s string) template.CSS {
	return template.CSS(s)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case *decimal.Decimal:
		return val == nil
	case *time.Time:
		return val == nil
	case *string:
		return val == nil
	case *float64:
		return val == nil
	case *int64:
		return val == nil
	}
	return false
}

// passthrough returns the original textual form of a value the
// formatters could not parse.
func passthrough(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toDecimal converts numeric types and numeric strings to decimal,
// reporting whether the conversion succeeded.
func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, true
		}
		return *val, true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case float32:
		return decimal.NewFromFloat(float64(val)), true
	case float64:
		return decimal.NewFromFloat(val), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// toTime converts time values and common string forms to time.Time
func toTime(v interface{}) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case *time.Time:
		if val == nil {
			return time.Time{}
		}
		return *val
	case string:
		formats := []string{
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02",
			"02/01/2006",
		}
		for _, f := range formats {
			if t, err := time.Parse(f, val); err == nil {
				return t
			}
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
