// Package view draws the to-do screen onto a backend and maps screen
// positions back to the controls they belong to.
//
// Render is a pure function of a Model: it paints every cell, then returns
// a Frame describing where each control landed. The application keeps the
// last Frame for mouse hit testing.
//
//	row 0      title, centered
//	row 1      blank
//	row 2      input field         [ Add ]
//	row 3      blank
//	row 4..    1. task text     [ Ważne ] [ Delete ]
//	last row   help line
package view
