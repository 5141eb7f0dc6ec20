// Package logger is a standardized event logging framework for the
// interpreter. Events describe what each loop iteration did; they never
// feed back into shell behavior.
package logger
