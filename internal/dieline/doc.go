// Package dieline lays out the flat net of a tuck-flap playing card box.
//
// Generate maps three card dimensions to an ordered outline of straight
// segments and arcs in millimeters, origin at the net's bottom-left corner
// with y growing up the box. The outline is handed to a Surface for
// drawing; nothing is kept between calls.
package dieline
