package droplet

import "fmt"

// ParameterError reports an input that violates the domain constraints of
// an operation. It is returned before any numerical work begins.
type ParameterError struct {
	Name   string  // parameter name as it appears in the API
	Value  float64 // offending value
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("droplet: invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// IntegrationError reports that the shape integrator could not advance the
// solution to the requested contact angle. The partially computed profile
// is discarded; callers never observe a truncated trace.
type IntegrationError struct {
	Phi    float64 // turning angle (radians) reached when integration failed
	Reason string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("droplet: integration failed at phi=%g: %s", e.Phi, e.Reason)
}

// ConvergenceError reports that an inverse solve exhausted its iteration
// budget, or terminated, without meeting the residual tolerance. It is
// distinct from [IntegrationError]: the outer search failed, not the
// integration of any individual trial shape.
type ConvergenceError struct {
	Residual   float64 // last normalized residual, NaN if never evaluated
	Iterations int
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("droplet: inverse solve did not converge after %d iterations (residual %g): %s",
		e.Iterations, e.Residual, e.Reason)
}
