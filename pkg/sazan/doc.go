// Package sazan implements the image composition core: rectangular
// cropping, montage composition of equally sized cells onto a grid
// canvas, and tiling of images into a ZIP archive of PNG tiles.
//
// All coordinates are 0-based with the origin at the top-left corner,
// x increasing rightward and y downward. Operations are pure: inputs
// are never modified and no state survives between calls.
package sazan
