// Package ackermann evaluates the Ackermann function with a shared memo and
// hard limits on recursion depth, step count and value width, so that
// intractable inputs fail fast instead of exhausting the stack or hanging.
package ackermann
