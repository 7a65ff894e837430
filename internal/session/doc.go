// Package session runs the read-eval-print loop: it reads words, normalises
// them (trim, lower-case), asks the engine for suggestions and prints them.
// It owns all per-process interactive state so the rules package stays a
// pure function of its catalog.
package session
