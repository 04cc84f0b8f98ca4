package report

import (
	"strconv"
	"strings"

	"github.com/pagovia/settlements/internal/domain"
)

var csvHeader = []string{
	"# DE TRANSACCION", "FECHA", "DISPOSITIVO", "TARJETA", "TIPO DE TARJETA",
	"SUBTOTAL", "PROPINA", "MONTO TOTAL", "DEVOLUCION",
	"COMISION PROVEEDOR", "TASA PROVEEDOR", "COMISION PLATAFORMA", "PAGO CLIENTE",
}

// RenderCSV serializes a report back to delimited text for download. It is a
// formatting function, not an inverse of the parser: derived fields and
// rounded values are included, and the summary block at the bottom has no
// equivalent in the source export.
func RenderCSV(r *domain.Report) string {
	var b strings.Builder

	writeRecord(&b, csvHeader)

	for _, t := range r.Transactions {
		ts := ""
		if t.HasDate() {
			ts = t.Timestamp.Format("02/01/2006 15:04:05")
		}
		writeRecord(&b, []string{
			t.ExternalID,
			ts,
			t.Device,
			t.MaskedCard,
			string(t.CardClass),
			t.Subtotal.StringFixed(2),
			t.Tip.StringFixed(2),
			t.Total.StringFixed(2),
			t.Refunded.StringFixed(2),
			t.ProviderCommission.StringFixed(2),
			t.ProviderRate.StringFixed(2),
			t.PlatformCommission.StringFixed(2),
			t.ClientPayout.StringFixed(2),
		})
	}

	s := r.Summary
	b.WriteString("\n")
	writeRecord(&b, []string{"TRANSACCIONES", strconv.Itoa(s.TransactionCount)})
	writeRecord(&b, []string{"SUBTOTAL", s.TotalSubtotal.StringFixed(2)})
	writeRecord(&b, []string{"PROPINAS", s.TotalTip.StringFixed(2)})
	writeRecord(&b, []string{"MONTO TOTAL", s.TotalAmount.StringFixed(2)})
	writeRecord(&b, []string{"COMISION PROVEEDOR", s.ProviderCommission.StringFixed(2)})
	writeRecord(&b, []string{"COMISION PLATAFORMA", s.PlatformCommission.StringFixed(2)})
	writeRecord(&b, []string{"PAGO CLIENTE", s.ClientPayout.StringFixed(2)})

	for _, a := range s.Allocations {
		writeRecord(&b, []string{
			"DISTRIBUCION", a.Name, string(a.Role),
			a.Percentage.StringFixed(2), a.Amount.StringFixed(2),
		})
	}

	return b.String()
}

func writeRecord(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteString(",")
		}
		if strings.ContainsAny(c, ",\"") {
			c = "\"" + strings.ReplaceAll(c, "\"", "") + "\""
		}
		b.WriteString(c)
	}
	b.WriteString("\n")
}
