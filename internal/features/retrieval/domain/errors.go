package domain

import "fmt"

// InputError reports malformed caller input. It is always raised before any
// network activity, so an invalid request never consumes pacing tokens.
type InputError struct {
	// Field is the input parameter that failed validation.
	Field string
	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigurationError reports a marketplace or region that the running
// configuration cannot serve (unknown marketplace code, region credentials
// never supplied).
type ConfigurationError struct {
	// Subject names the missing or unknown configuration item.
	Subject string
	// Reason describes what is missing.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Subject, e.Reason)
}

// RetrievalError wraps a transport or provider fault raised while paging.
// The whole retrieval is aborted and already-fetched pages are discarded;
// a truncated order set is worse than an explicit failure.
type RetrievalError struct {
	// Marketplace is the marketplace code the retrieval was running for.
	Marketplace string
	// Cause is the underlying fault.
	Cause error
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed for marketplace %s: %v", e.Marketplace, e.Cause)
}

// Unwrap exposes the underlying fault to errors.Is / errors.As.
func (e *RetrievalError) Unwrap() error {
	return e.Cause
}

// AssemblyError reports a data-consistency violation between the orders and
// items of one retrieval (an item referencing an absent order, a duplicate
// order, an uncoercible provider value). It is never silently dropped.
type AssemblyError struct {
	// OrderID is the order the faulty record belongs to, when known.
	OrderID string
	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *AssemblyError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("assembly failed: %s", e.Reason)
	}
	return fmt.Sprintf("assembly failed for order %s: %s", e.OrderID, e.Reason)
}
