// Package canvas draws grid frames as raster images. The palette in this
// package is shared with the terminal and window frontends.
package canvas
