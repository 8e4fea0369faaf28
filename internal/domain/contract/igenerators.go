package contract

// IUUIDGenerator generates document ids.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator generates random tokens and short codes.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
	GenerateCode(prefix string, n int) (string, error)
}
