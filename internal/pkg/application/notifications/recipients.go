package notifications

import (
	"context"
	"net/mail"
	"strings"

	"github.com/samber/lo"

	"github.com/diwise/iot-landslide-monitor/internal/pkg/infrastructure/logging"
	"github.com/diwise/iot-landslide-monitor/pkg/types"
)

// ResolveRecipients returns the email addresses that should receive the
// alert. Users are only looked up when the device belongs to a province. The
// configured default recipient is used when nobody else is found.
func (d *dispatcher) ResolveRecipients(ctx context.Context, alert types.Alert) []string {
	var addresses []string

	if alert.ProvinceID != nil {
		users, err := d.catalog.ListNotificationRecipients(ctx, *alert.ProvinceID)
		if err != nil {
			log := logging.GetFromContext(ctx)
			log.Error().Err(err).Msg("failed to list notification recipients")
		}

		for _, u := range users {
			if addr := emailAddress(u, d.cfg.EmailDomain); addr != "" {
				addresses = append(addresses, addr)
			}
		}
	}

	addresses = lo.Uniq(addresses)

	if len(addresses) == 0 && d.cfg.DefaultRecipient != "" {
		addresses = []string{d.cfg.DefaultRecipient}
	}

	return addresses
}

// emailAddress uses the stored email when it is a plain, well formed address.
// Otherwise an address is built from the part of the username before any @
// and the configured domain.
func emailAddress(u types.User, domain string) string {
	if u.Email != nil {
		email := strings.TrimSpace(*u.Email)
		if wellFormed(email) {
			return strings.ToLower(email)
		}
	}

	local, _, _ := strings.Cut(strings.TrimSpace(u.Username), "@")
	if local == "" || domain == "" {
		return ""
	}

	return strings.ToLower(local + "@" + strings.TrimPrefix(domain, "@"))
}

func wellFormed(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	_, host, _ := strings.Cut(email, "@")
	return strings.Contains(host, ".") && !strings.HasSuffix(host, ".")
}
