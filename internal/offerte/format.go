package offerte

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Samenvatting renders a plain-text quote summary with Dutch number
// formatting. This is the text a contractor pastes into an e-mail; document
// rendering proper lives outside this service.
func Samenvatting(o *Offerte) string {
	p := message.NewPrinter(language.Dutch)
	var b strings.Builder

	p.Fprintf(&b, "Offerte %s voor %s\n", o.Nummer, o.Klant.Naam)
	p.Fprintf(&b, "Status: %s\n\n", o.Status)

	for _, r := range o.Regels {
		p.Fprintf(&b, "%-40s %8.2f %-5s à € %10.2f = € %10.2f\n",
			r.Omschrijving, r.Aantal, r.Eenheid, r.PrijsPerEenheid, r.Totaal)
	}

	t := o.Totalen
	p.Fprintf(&b, "\nMateriaalkosten:  € %10.2f\n", t.Materiaalkosten)
	p.Fprintf(&b, "Arbeidskosten:    € %10.2f (%.2f uur)\n", t.Arbeidskosten, t.TotaalUren)
	p.Fprintf(&b, "Subtotaal:        € %10.2f\n", t.Subtotaal)
	p.Fprintf(&b, "Marge (%.1f%%):    € %10.2f\n", t.MargePercentage, t.Marge)
	p.Fprintf(&b, "Totaal excl. btw: € %10.2f\n", t.TotaalExBtw)
	p.Fprintf(&b, "Btw (%.1f%%):      € %10.2f\n", t.BtwPercentage, t.Btw)
	p.Fprintf(&b, "Totaal incl. btw: € %10.2f\n", t.TotaalInclBtw)

	return b.String()
}
