package services

// ProviderError wraps a failure from an upstream chat or speech provider.
// Handlers surface it in-band rather than as a transport error.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
