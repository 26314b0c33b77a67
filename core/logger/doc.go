// Package logger records structured events about interpreter sessions as
// newline delimited JSON and summarizes them into reports.
package logger
