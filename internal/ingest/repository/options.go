package repository

type CreateDLQOptions struct {
	BatchID      string
	FileURL      *string
	RawPayload   []byte
	ErrorMessage string
	ErrorType    string
	MaxRetries   int
}

type IncrementRetryOptions struct {
	ID           string
	ErrorMessage string
}
