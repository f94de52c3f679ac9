package printing

import (
	"fmt"
	"strconv"

	"github.com/gaolamthuy/backend/internal/domain/printing"
)

// formatMm renders a millimeter value without trailing zeros so
// explicit fractional overrides (58.5mm) survive intact.
func formatMm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}

// GeneratePageCSS emits the stylesheet for a resolved page geometry.
// The print-media block pins @page size to the exact millimeter
// dimensions with zero margin so the print dialog cannot rescale
// output, forces one .product-info unit per physical label, and keeps
// exact color reproduction for thermal printers. The screen block is a
// cosmetic card preview.
func GeneratePageCSS(geometry printing.PageGeometry) string {
	return fmt.Sprintf(`* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Be Vietnam Pro', 'Segoe UI', Tahoma, sans-serif;
  font-size: 11px;
  line-height: 1.35;
  color: #000;
}

.print-template {
  width: 100%%;
  max-width: %[1]s;
  margin: 0 auto;
}

.product-info {
  width: 100%%;
  padding: 2mm;
  page-break-after: always;
  break-inside: avoid;
  page-break-inside: avoid;
}

.product-info:last-child {
  page-break-after: auto;
}

.info-row {
  display: grid;
  grid-template-columns: auto 1fr;
  gap: 2mm;
  align-items: baseline;
}

.info-row .label {
  font-weight: 700;
  text-align: left;
}

.info-row .value {
  text-align: right;
}

.text-center { text-align: center; }
.text-right { text-align: right; }
.bold { font-weight: 700; }
.divider { border-top: 1px dashed #000; margin: 1.5mm 0; }

table {
  width: 100%%;
  border-collapse: collapse;
}

th, td {
  padding: 1mm 1.5mm;
  text-align: left;
}

td.amount, th.amount {
  text-align: right;
}

@media print {
  @page {
    size: %[1]s %[2]s;
    margin: 0;
  }

  html, body {
    width: %[1]s;
    color: #000;
    background: #fff;
    -webkit-print-color-adjust: exact;
    print-color-adjust: exact;
  }
}

@media screen {
  body {
    background: #f1f3f5;
    padding: 16px;
  }

  .print-template {
    background: #fff;
    border: 1px solid #dee2e6;
    border-radius: 4px;
    box-shadow: 0 2px 8px rgba(0, 0, 0, 0.08);
    padding: 8px;
  }
}
`, formatMm(geometry.WidthMm), formatMm(geometry.HeightMm))
}
