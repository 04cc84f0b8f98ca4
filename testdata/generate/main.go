// Command generate writes a deterministic sample settlement export to
// testdata/export_sample.csv, with the quirks real exports carry: quoted
// amounts with thousands separators, late-night rows that roll into the next
// business day, a refund, a corrupt amount cell, and a footer totals line.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	rng := rand.New(rand.NewSource(7))
	baseDir := findTestdataDir()

	var b strings.Builder
	b.WriteString("# DE TRANSACCION,FECHA,HORA,DISPOSITIVO,TARJETA,TIPO DE TARJETA,SUBTOTAL,PROPINA,MONTO TOTAL,DEVOLUCION,COMISION\n")

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	cardTypes := []string{"DEBITO", "CREDITO", "INTERNACIONAL", "DEBITO", "CREDITO"}
	devices := []string{"TPV-001", "TPV-002", "TPV-BARRA"}

	for i := 1; i <= 120; i++ {
		day := rng.Intn(14)
		hour := rng.Intn(24)
		minute := rng.Intn(60)
		second := rng.Intn(60)
		ts := start.AddDate(0, 0, day)

		subtotal := 50 + rng.Float64()*1950
		tip := 0.0
		if rng.Float64() < 0.4 {
			tip = subtotal * 0.1
		}
		total := subtotal + tip
		commission := total * 0.025

		refund := 0.0
		if rng.Float64() < 0.03 {
			refund = total
		}

		amount := func(v float64) string {
			s := fmt.Sprintf("%.2f", v)
			if v >= 1000 {
				// Real exports quote amounts with thousands separators.
				return fmt.Sprintf("\"$%s,%s\"", s[:len(s)-6], s[len(s)-6:])
			}
			return "$" + s
		}

		subtotalCell := amount(subtotal)
		if i == 57 {
			subtotalCell = "N/A" // corrupt cell, must coerce to zero
		}

		fmt.Fprintf(&b, "TX-%06d,%s,%02d:%02d:%02d,%s,****%04d,%s,%s,%s,%s,%s,%s\n",
			100000+i,
			ts.Format("02/01/2006"),
			hour, minute, second,
			devices[rng.Intn(len(devices))],
			1000+rng.Intn(9000),
			cardTypes[rng.Intn(len(cardTypes))],
			subtotalCell,
			amount(tip),
			amount(total),
			amount(refund),
			amount(commission),
		)
	}

	// Footer lines the normalizer must skip: blank transaction-id cells.
	b.WriteString(",,,,,,,,,,\n")
	b.WriteString(",TOTALES,,,,,,,,,\n")

	path := filepath.Join(baseDir, "export_sample.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Generated sample export -> %s\n", path)
}

func findTestdataDir() string {
	for _, dir := range []string{"testdata", filepath.Join("..", "..", "testdata")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "testdata"
}
