package middleware

// ErrorMessageInternal is the message of every 500 body written outside a
// handler's own error mapping.
const ErrorMessageInternal = "Internal server error"
