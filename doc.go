// Package blackbg turns near-black image backgrounds transparent.
//
// A pixel counts as background when its red, green, and blue channels are all
// strictly below a fixed threshold; matching pixels get their alpha channel
// zeroed while every other byte is left untouched. The package works entirely
// in memory on straight-alpha buffers; no network or GPU is required.
package blackbg
