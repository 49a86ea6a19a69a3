// Package links builds the outbound links shown after a booking:
// Wave payment, WhatsApp chat and phone call.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

const whatsAppBase = "https://wa.me/"

// WaveURL Wave checkout link for a reservation
func WaveURL(base string, amount int64, currency, reference, description string) string {
	q := url.Values{}
	q.Set("amount", fmt.Sprintf("%d", amount))
	q.Set("currency", currency)
	q.Set("reference", reference)
	q.Set("description", description)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.Encode()
}

// WaveDescription "Reservation Studio - <name>"
func WaveDescription(name string) string {
	return "Reservation Studio - " + name
}

// WhatsAppURL chat link with a pre-filled message
func WhatsAppURL(phone, text string) string {
	u := whatsAppBase + digits(phone)
	if text == "" {
		return u
	}
	return u + "?text=" + url.QueryEscape(text)
}

// PhoneURL tel: link
func PhoneURL(phone string) string {
	return "tel:+" + digits(phone)
}

// ConfirmationMessage French summary sent to the studio over WhatsApp
func ConfirmationMessage(r *domain.Reservation, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bonjour, je viens de réserver au studio.\n")
	fmt.Fprintf(&b, "Référence: %s\n", r.ID)
	fmt.Fprintf(&b, "Nom: %s\n", r.Name)
	fmt.Fprintf(&b, "Service: %s\n", r.ServiceType.Label())
	if r.ServiceType == domain.ServiceHourly {
		fmt.Fprintf(&b, "Date: %s\n", catalog.LongDate(r.Date))
		fmt.Fprintf(&b, "Créneau: %s\n", description)
		fmt.Fprintf(&b, "Durée: %d heure(s)\n", len(r.Slots))
	} else {
		fmt.Fprintf(&b, "Nombre de titres: %s\n", description)
	}
	fmt.Fprintf(&b, "Total: %s FCFA", FormatAmount(r.TotalAmount))
	return b.String()
}

// FormatAmount groups thousands with a space: 150000 -> "150 000"
func FormatAmount(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func digits(phone string) string {
	var b strings.Builder
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
