// Package printing contains the domain model for print templates:
// the template aggregate, template types, page-size presets, the
// deterministic template selection rule, and page geometry resolution.
package printing
