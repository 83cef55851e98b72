package catalog

import (
	"strings"

	"tanyajaksa/internal/session"
)

// DemoAccount is a hard-coded credential for the prototype login screen.
type DemoAccount struct {
	Email    string
	Password string
	Name     string
	Role     session.Role
}

var demoAccounts = []DemoAccount{
	{Email: "budi@email.com", Password: "demo123", Name: "Budi Santoso", Role: session.RoleMasyarakat},
	{Email: "siti@email.com", Password: "demo123", Name: "Siti Aminah", Role: session.RoleMasyarakat},
	{Email: "instansi@kotabaru.go.id", Password: "demo123", Name: "Dinas Kesehatan", Role: session.RoleInstansi},
	{Email: "demo@tanyajaksa.id", Password: "password", Name: "User Demo", Role: session.RoleMasyarakat},
}

// DemoAccounts returns the demo credential table shown on the login screen.
func DemoAccounts() []DemoAccount {
	out := make([]DemoAccount, len(demoAccounts))
	copy(out, demoAccounts)
	return out
}

// Authenticate reproduces the prototype's loose credential check: an exact
// demo-account match wins, otherwise anything that looks like an email is
// accepted with a derived display name. The boolean reports acceptance.
func Authenticate(email, password string) (DemoAccount, bool) {
	for _, acc := range demoAccounts {
		if strings.EqualFold(acc.Email, email) && acc.Password == password {
			return acc, true
		}
	}
	if strings.Contains(email, "@") {
		name := email[:strings.Index(email, "@")]
		return DemoAccount{Email: email, Name: name, Role: ""}, true
	}
	return DemoAccount{}, false
}
