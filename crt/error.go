package crt

// InvalidConfig - Custom error to inform that a table or run was configured with invalid parameters,
// such as a non-positive capacity or an unknown collision resolution technique
type InvalidConfig struct {
	msg string
}

// NewInvalidConfig - Returns an InvalidConfig error carrying a more specific message
func NewInvalidConfig(msg string) InvalidConfig {
	return InvalidConfig{msg: msg}
}

// Error - Used to notify that the configuration is invalid
func (E InvalidConfig) Error() string {
	if E.msg == "" {
		return "invalid configuration"
	}
	return E.msg
}

// Is - Makes errors.Is match any InvalidConfig regardless of message
func (E InvalidConfig) Is(target error) bool {
	_, ok := target.(InvalidConfig)
	return ok
}

// InvalidKey - Custom error to inform that a key resolved to an index outside the table
type InvalidKey struct {
	msg string
}

// NewInvalidKey - Returns an InvalidKey error carrying a more specific message
func NewInvalidKey(msg string) InvalidKey {
	return InvalidKey{msg: msg}
}

// Error - Used to notify that a key could not be mapped into the table
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "invalid key"
	}
	return E.msg
}

// Is - Makes errors.Is match any InvalidKey regardless of message
func (E InvalidKey) Is(target error) bool {
	_, ok := target.(InvalidKey)
	return ok
}

// TableFull - Custom error to inform that the table is full and can't take more keys
type TableFull struct {
	msg string
}

// Error - Used to notify that table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}
