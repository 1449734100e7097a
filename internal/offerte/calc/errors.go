package calc

import "fmt"

// ValidationError rejects malformed scope input: negative quantities, unknown
// enum values, or a condition value that resolves at neither tier. The error
// always names the failing scope and field so the UI can point at it.
type ValidationError struct {
	Scope string
	Veld  string
	Reden string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ongeldige invoer voor %s.%s: %s", e.Scope, e.Veld, e.Reden)
}

// ConfigurationError signals a quantity fact referencing a norm-hour or
// product key that is missing from the loaded rate context. The computation
// aborts rather than pricing the line at zero.
type ConfigurationError struct {
	Scope   string
	Soort   string // "normuur" or "product"
	Sleutel string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %q niet geconfigureerd (scope %s)", e.Soort, e.Sleutel, e.Scope)
}

func negatiefVeld(scope, veld string) *ValidationError {
	return &ValidationError{Scope: scope, Veld: veld, Reden: "mag niet negatief zijn"}
}
