package ingestion

import "strings"

// ColumnResolver locates a wanted column in a header row, returning its
// index or -1. Isolated behind an interface so a stricter exact-match or
// schema-versioned resolver can replace the fuzzy one without touching the
// rest of the pipeline.
type ColumnResolver interface {
	Resolve(header []string, want string) int
}

// FuzzyResolver matches the first header cell whose lowercase text contains
// the wanted name or is contained by it. This survives the header drift the
// processor ships between software versions (added prefixes, minor renames)
// at the cost of being unable to tell apart two headers sharing a substring:
// "total" would hit SUBTOTAL before MONTO TOTAL, which is why the wanted
// names below avoid shared fragments.
type FuzzyResolver struct{}

func (FuzzyResolver) Resolve(header []string, want string) int {
	want = strings.ToLower(want)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if strings.Contains(h, want) || strings.Contains(want, h) {
			return i
		}
	}
	return -1
}

// Columns holds the resolved index of every column the normalizer reads.
// A missing column is -1 and yields zero values downstream.
type Columns struct {
	ID         int
	Date       int
	Time       int
	Device     int
	Card       int
	CardType   int
	Subtotal   int
	Tip        int
	Total      int
	Refunded   int
	Commission int
}

// Wanted column names, matched fuzzily against the export header. These are
// the stable fragments of the processor's Spanish column titles.
const (
	wantID         = "transac"
	wantDate       = "fecha"
	wantTime       = "hora"
	wantDevice     = "disposit"
	wantCard       = "tarjeta"
	wantCardType   = "tipo"
	wantSubtotal   = "subtotal"
	wantTip        = "propina"
	wantTotal      = "monto"
	wantRefunded   = "devoluc"
	wantCommission = "comisi"
)

// ResolveColumns maps the header row to column indices using the given
// resolver.
func ResolveColumns(header []string, r ColumnResolver) Columns {
	return Columns{
		ID:         r.Resolve(header, wantID),
		Date:       r.Resolve(header, wantDate),
		Time:       r.Resolve(header, wantTime),
		Device:     r.Resolve(header, wantDevice),
		Card:       r.Resolve(header, wantCard),
		CardType:   r.Resolve(header, wantCardType),
		Subtotal:   r.Resolve(header, wantSubtotal),
		Tip:        r.Resolve(header, wantTip),
		Total:      r.Resolve(header, wantTotal),
		Refunded:   r.Resolve(header, wantRefunded),
		Commission: r.Resolve(header, wantCommission),
	}
}
