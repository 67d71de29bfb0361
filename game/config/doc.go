// Package config manages named game presets stored as JSON files.
//
// A preset pins down how a session is created: an optional random seed
// for reproducible games and whether the terminal renderer uses colors.
// Presets never change the rules or the board size. The Manager caches
// loaded presets and falls back to a built-in unseeded default when the
// directory holds no usable files.
package config
