// Package pixel implements the 1-bit color used by monochrome OLED panels.
//
// The Mono color is compatible with Go's native [color.Color] interface, so any
// color can be handed to the drawing functions and is reduced to on or off by
// [MonoModel].
package pixel
