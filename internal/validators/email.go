package validators

import (
	"context"
	"net"
	"strings"
)

// Resolver é o subconjunto de *net.Resolver usado na checagem de domínio.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomain extrai o domínio do e-mail; "" quando não há.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsEmailDomainValid aceita o domínio se tiver MX ou, na falta dele, algum IP.
func IsEmailDomainValid(ctx context.Context, r Resolver, email string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	if r == nil {
		r = net.DefaultResolver
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
