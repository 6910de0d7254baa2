package common

// UnknownStr is what String methods return for out-of-range enum values.
const UnknownStr = "unknown"
