// Package cli parses and validates command-line arguments and carries process
// exit codes back to main. The automaton packages only ever see values that
// passed validation here.
package cli
